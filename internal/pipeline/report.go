package pipeline

import (
	"fmt"
	"sort"

	"github.com/mekedron/pint-cli/internal/domain"
)

// BuildReport assembles the final payload: metadata, regional rollups,
// cheapest/priciest leaderboards, and the full venue listing with
// truncated drink lists. It fails rather than emit a report with
// undefined global statistics.
func BuildReport(
	venues []domain.ReducedVenue,
	regions []domain.RegionStat,
	fetchDate string,
	opts Options,
) (domain.Report, error) {
	if len(venues) == 0 {
		return domain.Report{}, fmt.Errorf("build report: no venues to report on")
	}

	sorted := append([]domain.ReducedVenue(nil), venues...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AvgPrice < sorted[j].AvgPrice
	})

	sumAvg := 0.0
	totalBeers := 0
	cheapestPint := sorted[0].MinPrice
	mostExpensivePint := sorted[0].MaxPrice
	for _, venue := range sorted {
		sumAvg += venue.AvgPrice
		totalBeers += venue.DrinkCount
		if venue.MinPrice < cheapestPint {
			cheapestPint = venue.MinPrice
		}
		if venue.MaxPrice > mostExpensivePint {
			mostExpensivePint = venue.MaxPrice
		}
	}

	top := opts.LeaderboardSize
	if top > len(sorted) {
		top = len(sorted)
	}

	cheapest := make([]domain.CheapestEntry, 0, top)
	for _, venue := range sorted[:top] {
		cheapest = append(cheapest, domain.CheapestEntry{
			Name:          venue.Name,
			Town:          venue.Town,
			Postcode:      venue.Postcode,
			AvgPrice:      venue.AvgPrice,
			MinPrice:      venue.MinPrice,
			CheapestDrink: venue.CheapestDrink,
			Lat:           venue.Lat,
			Lon:           venue.Lon,
		})
	}

	priciest := make([]domain.PriciestEntry, 0, top)
	for i := len(sorted) - 1; i >= len(sorted)-top; i-- {
		venue := sorted[i]
		priciest = append(priciest, domain.PriciestEntry{
			Name:     venue.Name,
			Town:     venue.Town,
			Postcode: venue.Postcode,
			AvgPrice: venue.AvgPrice,
			MaxPrice: venue.MaxPrice,
			Lat:      venue.Lat,
			Lon:      venue.Lon,
		})
	}

	pubs := make([]domain.VenueSummary, 0, len(sorted))
	for _, venue := range sorted {
		drinks := venue.Drinks
		if len(drinks) > opts.VenueDrinkLimit {
			drinks = drinks[:opts.VenueDrinkLimit]
		}
		pubs = append(pubs, domain.VenueSummary{
			Name:          venue.Name,
			Town:          venue.Town,
			County:        venue.County,
			Postcode:      venue.Postcode,
			Lat:           venue.Lat,
			Lon:           venue.Lon,
			AvgPrice:      venue.AvgPrice,
			MinPrice:      venue.MinPrice,
			MaxPrice:      venue.MaxPrice,
			CheapestDrink: venue.CheapestDrink,
			DrinkCount:    venue.DrinkCount,
			Drinks:        drinks,
		})
	}

	return domain.Report{
		Meta: domain.ReportMeta{
			Source:            opts.Source,
			FetchDate:         fetchDate,
			TotalPubs:         len(sorted),
			TotalBeers:        totalBeers,
			AvgPint:           round2(sumAvg / float64(len(sorted))),
			CheapestPint:      cheapestPint,
			MostExpensivePint: mostExpensivePint,
		},
		Regional: regions,
		Cheapest: cheapest,
		Priciest: priciest,
		Pubs:     pubs,
	}, nil
}
