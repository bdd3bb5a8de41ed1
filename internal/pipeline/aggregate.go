package pipeline

import (
	"sort"

	"github.com/mekedron/pint-cli/internal/domain"
)

// AggregateRegions groups reduced venues by resolved region and rolls up
// their averages. Regions with fewer than minSample venues are dropped;
// a single data point is not a meaningful regional average. Grouping
// order follows first appearance so ties after the sort stay stable.
func AggregateRegions(venues []domain.ReducedVenue, minSample int) []domain.RegionStat {
	order := make([]string, 0)
	groups := map[string][]float64{}
	for _, venue := range venues {
		region := ResolveRegion(venue.County)
		if _, seen := groups[region]; !seen {
			order = append(order, region)
		}
		groups[region] = append(groups[region], venue.AvgPrice)
	}

	stats := make([]domain.RegionStat, 0, len(order))
	for _, name := range order {
		averages := groups[name]
		if len(averages) < minSample {
			continue
		}
		sum := 0.0
		minAvg := averages[0]
		maxAvg := averages[0]
		for _, avg := range averages {
			sum += avg
			if avg < minAvg {
				minAvg = avg
			}
			if avg > maxAvg {
				maxAvg = avg
			}
		}
		stats = append(stats, domain.RegionStat{
			Name:       name,
			AvgPrice:   round2(sum / float64(len(averages))),
			VenueCount: len(averages),
			MinPrice:   round2(minAvg),
			MaxPrice:   round2(maxAvg),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgPrice > stats[j].AvgPrice
	})
	return stats
}
