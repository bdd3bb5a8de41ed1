package pipeline

import (
	"math"
	"sort"

	"github.com/mekedron/pint-cli/internal/domain"
)

type drinkKey struct {
	name  string
	price float64
}

// ReduceVenue filters a raw venue down to its qualifying in-stock priced
// drinks and derives price statistics. The second return value is false
// when nothing qualifies and the venue should be dropped.
func ReduceVenue(venue domain.RawVenue, classifier Classifier) (domain.ReducedVenue, bool) {
	matched := make([]domain.RawDrink, 0, len(venue.Drinks))
	for _, drink := range venue.Drinks {
		if classifier.Match(drink) {
			matched = append(matched, drink)
		}
	}
	if len(matched) == 0 {
		return domain.ReducedVenue{}, false
	}

	selected := make([]domain.RawDrink, 0, len(matched))
	for _, drink := range matched {
		if drink.PintPrice != nil && !drink.OutOfStock {
			selected = append(selected, drink)
		}
	}
	if len(selected) == 0 {
		return domain.ReducedVenue{}, false
	}

	sum := 0.0
	minPrice := *selected[0].PintPrice
	maxPrice := *selected[0].PintPrice
	for _, drink := range selected {
		price := *drink.PintPrice
		sum += price
		if price < minPrice {
			minPrice = price
		}
		if price > maxPrice {
			maxPrice = price
		}
	}

	cheapestName := ""
	for _, drink := range selected {
		if *drink.PintPrice == minPrice {
			cheapestName = drink.Name
			break
		}
	}

	drinks := dedupDrinks(selected)
	sort.SliceStable(drinks, func(i, j int) bool {
		return drinks[i].Price < drinks[j].Price
	})

	return domain.ReducedVenue{
		Name:          venue.Name,
		Ref:           venue.Ref,
		Town:          venue.Town,
		County:        venue.County,
		Postcode:      venue.Postcode,
		Lat:           venue.Lat,
		Lon:           venue.Lon,
		AvgPrice:      round2(sum / float64(len(selected))),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		CheapestDrink: cheapestName,
		DrinkCount:    len(drinks),
		Drinks:        drinks,
	}, true
}

// dedupDrinks keeps the first occurrence of each (name, price) pair in
// input order.
func dedupDrinks(selected []domain.RawDrink) []domain.SimplifiedDrink {
	seen := map[drinkKey]struct{}{}
	drinks := make([]domain.SimplifiedDrink, 0, len(selected))
	for _, drink := range selected {
		key := drinkKey{name: drink.Name, price: *drink.PintPrice}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		drinks = append(drinks, domain.SimplifiedDrink{
			Name:  drink.Name,
			Price: *drink.PintPrice,
			ABV:   drink.ABV,
		})
	}
	return drinks
}

// round2 rounds to two decimals with half-to-even, the rule pinned for
// every rounding site in the pipeline.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
