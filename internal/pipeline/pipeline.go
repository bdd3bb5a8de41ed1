package pipeline

import (
	"fmt"
	"strings"

	"github.com/mekedron/pint-cli/internal/domain"
)

const (
	// DefaultSource labels reports built from the upstream pub API.
	DefaultSource = "Wetherspoons JDW Apps API"

	defaultMinRegionSample = 2
	defaultLeaderboardSize = 20
	defaultVenueDrinkLimit = 10
)

// Options carries the run configuration. Keyword lists and limits are
// explicit inputs rather than package state so independent runs can use
// different settings.
type Options struct {
	Source           string
	CategoryKeywords []string
	NameExclusions   []string
	MinRegionSample  int
	LeaderboardSize  int
	VenueDrinkLimit  int
}

// DefaultOptions returns the reference run configuration.
func DefaultOptions() Options {
	return Options{
		Source:           DefaultSource,
		CategoryKeywords: defaultCategoryKeywords,
		NameExclusions:   defaultNameExclusions,
		MinRegionSample:  defaultMinRegionSample,
		LeaderboardSize:  defaultLeaderboardSize,
		VenueDrinkLimit:  defaultVenueDrinkLimit,
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if strings.TrimSpace(o.Source) == "" {
		o.Source = defaults.Source
	}
	if len(o.CategoryKeywords) == 0 {
		o.CategoryKeywords = defaults.CategoryKeywords
	}
	if len(o.NameExclusions) == 0 {
		o.NameExclusions = defaults.NameExclusions
	}
	if o.MinRegionSample <= 0 {
		o.MinRegionSample = defaults.MinRegionSample
	}
	if o.LeaderboardSize <= 0 {
		o.LeaderboardSize = defaults.LeaderboardSize
	}
	if o.VenueDrinkLimit <= 0 {
		o.VenueDrinkLimit = defaults.VenueDrinkLimit
	}
	return o
}

// Run executes the full pipeline over a loaded snapshot: classification,
// per-venue reduction, regional aggregation, report construction.
//
// Per-drink anomalies (bad ABV, missing price) are absorbed as
// exclusions. Structural anomalies (venues missing required fields,
// empty result sets) abort the run with a stage-identifying error.
func Run(snapshot domain.Snapshot, opts Options) (domain.Report, error) {
	opts = opts.withDefaults()
	classifier := Classifier{
		CategoryKeywords: opts.CategoryKeywords,
		NameExclusions:   opts.NameExclusions,
	}

	reduced := make([]domain.ReducedVenue, 0, len(snapshot.Pubs))
	for i, venue := range snapshot.Pubs {
		if strings.TrimSpace(venue.Name) == "" || strings.TrimSpace(venue.Town) == "" {
			return domain.Report{}, fmt.Errorf("reduce venues: venue %d is missing required name/town fields", i)
		}
		for j, drink := range venue.Drinks {
			if drink.PintPrice != nil && !drink.OutOfStock && strings.TrimSpace(drink.Name) == "" {
				return domain.Report{}, fmt.Errorf("reduce venues: venue %d drink %d is priced but has no name", i, j)
			}
		}
		if result, ok := ReduceVenue(venue, classifier); ok {
			reduced = append(reduced, result)
		}
	}
	if len(reduced) == 0 {
		return domain.Report{}, fmt.Errorf("reduce venues: no venues have in-stock priced drinks in the target category")
	}

	regions := AggregateRegions(reduced, opts.MinRegionSample)
	return BuildReport(reduced, regions, snapshot.Meta.FetchDate, opts)
}
