package pipeline_test

import (
	"testing"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
)

func reducedVenue(name, county string, avg float64) domain.ReducedVenue {
	return domain.ReducedVenue{
		Name:     name,
		Town:     "Testford",
		County:   county,
		AvgPrice: avg,
	}
}

func TestAggregateRegionsDropsSingletons(t *testing.T) {
	venues := []domain.ReducedVenue{
		reducedVenue("Solo", "Testland", 3.20),
		reducedVenue("Pair A", "Testland2", 3.00),
		reducedVenue("Pair B", "Testland2", 4.00),
	}

	stats := pipeline.AggregateRegions(venues, 2)
	if len(stats) != 1 {
		t.Fatalf("expected 1 region, got %d: %v", len(stats), stats)
	}
	region := stats[0]
	if region.Name != "Testland2" {
		t.Fatalf("expected Testland2, got %q", region.Name)
	}
	if region.AvgPrice != 3.50 || region.VenueCount != 2 || region.MinPrice != 3.00 || region.MaxPrice != 4.00 {
		t.Fatalf("unexpected region stats: %+v", region)
	}
}

func TestAggregateRegionsGroupsByResolvedRegion(t *testing.T) {
	venues := []domain.ReducedVenue{
		reducedVenue("Camden Pub", "Camden", 5.00),
		reducedVenue("Hackney Pub", "Hackney", 6.00),
		reducedVenue("Leeds Pub", "Leeds", 3.00),
		reducedVenue("York Pub", "York", 3.50),
	}

	stats := pipeline.AggregateRegions(venues, 2)
	if len(stats) != 2 {
		t.Fatalf("expected 2 regions, got %d: %v", len(stats), stats)
	}
	if stats[0].Name != "London" || stats[0].AvgPrice != 5.50 {
		t.Fatalf("expected London at 5.50 first, got %+v", stats[0])
	}
	if stats[1].Name != "Yorkshire" || stats[1].AvgPrice != 3.25 {
		t.Fatalf("expected Yorkshire at 3.25 second, got %+v", stats[1])
	}
}

func TestAggregateRegionsSortsDescendingByAverage(t *testing.T) {
	venues := []domain.ReducedVenue{
		reducedVenue("A1", "Cheapshire", 2.00),
		reducedVenue("A2", "Cheapshire", 2.20),
		reducedVenue("B1", "Dearshire", 5.00),
		reducedVenue("B2", "Dearshire", 5.40),
	}

	stats := pipeline.AggregateRegions(venues, 2)
	if len(stats) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(stats))
	}
	if stats[0].Name != "Dearshire" || stats[1].Name != "Cheapshire" {
		t.Fatalf("expected descending order by average, got %v then %v", stats[0].Name, stats[1].Name)
	}
}
