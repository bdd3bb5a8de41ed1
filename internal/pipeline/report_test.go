package pipeline_test

import (
	"fmt"
	"testing"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
)

func venueWithStats(name string, avg, min, max float64, drinks int) domain.ReducedVenue {
	list := make([]domain.SimplifiedDrink, 0, drinks)
	for i := 0; i < drinks; i++ {
		list = append(list, domain.SimplifiedDrink{
			Name:  fmt.Sprintf("%s drink %d", name, i),
			Price: min + float64(i)*0.10,
			ABV:   4.0,
		})
	}
	return domain.ReducedVenue{
		Name:          name,
		Town:          "Testford",
		County:        "Testshire",
		AvgPrice:      avg,
		MinPrice:      min,
		MaxPrice:      max,
		CheapestDrink: fmt.Sprintf("%s drink 0", name),
		DrinkCount:    drinks,
		Drinks:        list,
	}
}

func TestBuildReportFailsOnEmptyVenues(t *testing.T) {
	_, err := pipeline.BuildReport(nil, nil, "2026-08-01", pipeline.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for empty venue slice")
	}
}

func TestBuildReportGlobalStatistics(t *testing.T) {
	venues := []domain.ReducedVenue{
		venueWithStats("Mid", 4.00, 3.50, 4.50, 3),
		venueWithStats("Cheap", 2.00, 1.50, 2.50, 2),
		venueWithStats("Dear", 6.00, 5.50, 6.50, 4),
	}

	report, err := pipeline.BuildReport(venues, nil, "2026-08-01", pipeline.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta := report.Meta
	if meta.TotalPubs != 3 {
		t.Fatalf("expected 3 pubs, got %d", meta.TotalPubs)
	}
	if meta.TotalBeers != 9 {
		t.Fatalf("expected 9 beers, got %d", meta.TotalBeers)
	}
	if meta.AvgPint != 4.00 {
		t.Fatalf("expected national average 4.00, got %v", meta.AvgPint)
	}
	if meta.CheapestPint != 1.50 || meta.MostExpensivePint != 6.50 {
		t.Fatalf("expected global range 1.50-6.50, got %v-%v", meta.CheapestPint, meta.MostExpensivePint)
	}
	if meta.FetchDate != "2026-08-01" {
		t.Fatalf("expected fetch date to pass through, got %q", meta.FetchDate)
	}
	if meta.Source != pipeline.DefaultSource {
		t.Fatalf("expected default source, got %q", meta.Source)
	}
}

func TestBuildReportOrdersVenuesAndLeaderboards(t *testing.T) {
	venues := []domain.ReducedVenue{
		venueWithStats("Mid", 4.00, 3.50, 4.50, 1),
		venueWithStats("Cheap", 2.00, 1.50, 2.50, 1),
		venueWithStats("Dear", 6.00, 5.50, 6.50, 1),
	}

	report, err := pipeline.BuildReport(venues, nil, "", pipeline.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"Cheap", "Mid", "Dear"}
	for i, want := range wantOrder {
		if report.Pubs[i].Name != want {
			t.Fatalf("expected pub %d to be %q, got %q", i, want, report.Pubs[i].Name)
		}
	}

	if report.Cheapest[0].Name != "Cheap" {
		t.Fatalf("expected cheapest leaderboard to start with Cheap, got %q", report.Cheapest[0].Name)
	}
	if report.Priciest[0].Name != "Dear" {
		t.Fatalf("expected priciest leaderboard to start with Dear, got %q", report.Priciest[0].Name)
	}

	// Cheapest leaderboard and full listing agree on the head of the order.
	for i := range report.Cheapest {
		if report.Cheapest[i].Name != report.Pubs[i].Name {
			t.Fatalf("expected leaderboard entry %d to match pub listing, got %q vs %q", i, report.Cheapest[i].Name, report.Pubs[i].Name)
		}
	}
}

func TestBuildReportCapsLeaderboards(t *testing.T) {
	venues := make([]domain.ReducedVenue, 0, 25)
	for i := 0; i < 25; i++ {
		avg := 2.00 + float64(i)*0.10
		venues = append(venues, venueWithStats(fmt.Sprintf("Pub %02d", i), avg, avg-0.50, avg+0.50, 1))
	}

	report, err := pipeline.BuildReport(venues, nil, "", pipeline.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Cheapest) != 20 || len(report.Priciest) != 20 {
		t.Fatalf("expected 20-entry leaderboards, got %d and %d", len(report.Cheapest), len(report.Priciest))
	}
	if len(report.Pubs) != 25 {
		t.Fatalf("expected full listing to keep all venues, got %d", len(report.Pubs))
	}
	if report.Priciest[0].AvgPrice < report.Priciest[19].AvgPrice {
		t.Fatal("expected priciest leaderboard in descending order")
	}
}

func TestBuildReportTruncatesVenueDrinks(t *testing.T) {
	venues := []domain.ReducedVenue{
		venueWithStats("Long List", 3.00, 2.00, 4.00, 12),
		venueWithStats("Short List", 3.50, 3.00, 4.00, 2),
	}

	report, err := pipeline.BuildReport(venues, nil, "", pipeline.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Pubs[0].Drinks) != 10 {
		t.Fatalf("expected drink list truncated to 10, got %d", len(report.Pubs[0].Drinks))
	}
	if report.Pubs[0].DrinkCount != 12 {
		t.Fatalf("expected drink count to keep the full total, got %d", report.Pubs[0].DrinkCount)
	}
	if len(report.Pubs[1].Drinks) != 2 {
		t.Fatalf("expected short list untouched, got %d", len(report.Pubs[1].Drinks))
	}
}
