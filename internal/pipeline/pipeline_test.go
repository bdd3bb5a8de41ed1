package pipeline_test

import (
	"strings"
	"testing"

	"github.com/mekedron/pint-cli/internal/domain"
	"github.com/mekedron/pint-cli/internal/pipeline"
)

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Meta: domain.SnapshotMeta{FetchDate: "2026-08-15"},
		Pubs: []domain.RawVenue{
			{
				Name: "The Camden Tap", Town: "Camden", County: "Camden", Postcode: "NW1 1AA",
				Drinks: []domain.RawDrink{
					{Name: "House Lager", Category: "lager", ABV: 4.0, PintPrice: floatPtr(5.20)},
					{Name: "Pepsi", Category: "soft", ABV: "", PintPrice: floatPtr(2.00)},
				},
			},
			{
				Name: "The Hackney Cask", Town: "Hackney", County: "Hackney", Postcode: "E8 1AA",
				Drinks: []domain.RawDrink{
					{Name: "Cask Ale", Category: "ale", ABV: 4.2, PintPrice: floatPtr(4.80)},
				},
			},
			{
				Name: "The Leeds Corner", Town: "Leeds", County: "Leeds", Postcode: "LS1 1AA",
				Drinks: []domain.RawDrink{
					{Name: "Yorkshire Bitter", Category: "ale", ABV: 3.8, PintPrice: floatPtr(2.60)},
					{Name: "Yorkshire Bitter", Category: "ale", ABV: 3.8, PintPrice: floatPtr(2.60)},
				},
			},
			{
				Name: "The York Minster", Town: "York", County: "York", Postcode: "YO1 1AA",
				Drinks: []domain.RawDrink{
					{Name: "Minster Ale", Category: "ale", ABV: 4.1, PintPrice: floatPtr(3.40)},
				},
			},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	report, err := pipeline.Run(sampleSnapshot(), pipeline.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Meta.TotalPubs != 4 {
		t.Fatalf("expected 4 pubs, got %d", report.Meta.TotalPubs)
	}
	if report.Meta.TotalBeers != 4 {
		t.Fatalf("expected 4 beers after dedup, got %d", report.Meta.TotalBeers)
	}
	if report.Meta.FetchDate != "2026-08-15" {
		t.Fatalf("expected fetch date passthrough, got %q", report.Meta.FetchDate)
	}
	if report.Meta.CheapestPint != 2.60 {
		t.Fatalf("expected cheapest pint 2.60, got %v", report.Meta.CheapestPint)
	}

	if len(report.Regional) != 2 {
		t.Fatalf("expected London and Yorkshire rollups, got %v", report.Regional)
	}
	if report.Regional[0].Name != "London" || report.Regional[0].AvgPrice != 5.00 {
		t.Fatalf("expected London at 5.00 first, got %+v", report.Regional[0])
	}
	if report.Regional[1].Name != "Yorkshire" || report.Regional[1].AvgPrice != 3.00 {
		t.Fatalf("expected Yorkshire at 3.00, got %+v", report.Regional[1])
	}

	if report.Pubs[0].Name != "The Leeds Corner" {
		t.Fatalf("expected cheapest pub first, got %q", report.Pubs[0].Name)
	}
}

func TestRunRejectsVenueMissingRequiredFields(t *testing.T) {
	snap := sampleSnapshot()
	snap.Pubs[1].Town = ""

	_, err := pipeline.Run(snap, pipeline.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for venue missing town")
	}
	if !strings.Contains(err.Error(), "venue 1") {
		t.Fatalf("expected error to identify the venue, got %q", err.Error())
	}
}

func TestRunRejectsPricedDrinkWithoutName(t *testing.T) {
	snap := sampleSnapshot()
	snap.Pubs[0].Drinks = append(snap.Pubs[0].Drinks, domain.RawDrink{
		Category: "ale", ABV: 4.0, PintPrice: floatPtr(3.00),
	})

	_, err := pipeline.Run(snap, pipeline.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for priced drink without a name")
	}
	if !strings.Contains(err.Error(), "venue 0 drink") {
		t.Fatalf("expected error to identify the drink, got %q", err.Error())
	}
}

func TestRunFailsWhenNothingSurvivesReduction(t *testing.T) {
	snap := domain.Snapshot{
		Pubs: []domain.RawVenue{
			{
				Name: "The Soft Option", Town: "Testford",
				Drinks: []domain.RawDrink{
					{Name: "Cola", Category: "soft", ABV: ""},
					{Name: "Still Water", Category: "soft", ABV: 0.0},
				},
			},
		},
	}

	_, err := pipeline.Run(snap, pipeline.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for empty reduction")
	}
	if !strings.Contains(err.Error(), "reduce venues") {
		t.Fatalf("expected error to name the failing stage, got %q", err.Error())
	}
}

func TestRunHonoursMinRegionSampleOption(t *testing.T) {
	snap := sampleSnapshot()
	snap.Pubs = append(snap.Pubs, domain.RawVenue{
		Name: "The Harbourside", Town: "Bristol", County: "Bristol", Postcode: "BS1 1AA",
		Drinks: []domain.RawDrink{
			{Name: "West Cider", Category: "cider", ABV: 4.8, PintPrice: floatPtr(4.10)},
		},
	})

	report, err := pipeline.Run(snap, pipeline.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Regional) != 2 {
		t.Fatalf("expected singleton South West to be dropped, got %v", report.Regional)
	}

	opts := pipeline.DefaultOptions()
	opts.MinRegionSample = 1
	report, err = pipeline.Run(snap, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Regional) != 3 {
		t.Fatalf("expected 3 regions with sample floor 1, got %d", len(report.Regional))
	}
}
