package pipeline

import (
	"strconv"
	"strings"

	"github.com/mekedron/pint-cli/internal/domain"
)

// Category keywords that qualify a drink when its ABV is missing or
// unparseable. Matched as lowered substrings, not patterns.
var defaultCategoryKeywords = []string{
	"lager", "beer", "stout", "craft", "cider", "ale", "world beer",
}

// Name fragments that disqualify a drink outright. Soft drinks and
// mixers occasionally carry an ABV value in the snapshot, so this list
// applies after the ABV gate, not instead of it.
var defaultNameExclusions = []string{
	"cordial", "juice", "water", "coffee", "tea", "pepsi", "cola",
	"lemonade", "j2o", "appletiser", "ginger",
}

// Classifier decides whether a drink belongs to the target category.
type Classifier struct {
	CategoryKeywords []string
	NameExclusions   []string
}

// NewClassifier returns a classifier with the default keyword lists.
func NewClassifier() Classifier {
	return Classifier{
		CategoryKeywords: defaultCategoryKeywords,
		NameExclusions:   defaultNameExclusions,
	}
}

// Match reports whether the drink is an alcoholic target-category product.
//
// A parseable ABV of zero or less rejects immediately. A missing or
// unparseable ABV falls back to the category keyword check. Either way
// the name exclusion list is evaluated last and wins.
func (c Classifier) Match(drink domain.RawDrink) bool {
	abv, parsed := parseABV(drink.ABV)
	if parsed {
		if abv <= 0 {
			return false
		}
	} else if !containsAny(strings.ToLower(drink.Category), c.CategoryKeywords) {
		return false
	}
	return !containsAny(strings.ToLower(drink.Name), c.NameExclusions)
}

func parseABV(raw any) (float64, bool) {
	switch value := raw.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func containsAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
