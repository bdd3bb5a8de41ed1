package domain_test

import (
	"testing"

	"github.com/mekedron/pint-cli/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	if got := domain.FormatPrice(3.5); got != "£3.50" {
		t.Fatalf("expected £3.50, got %q", got)
	}
}

func TestFormatABV(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{value: nil, want: "-"},
		{value: "", want: "-"},
		{value: "4.5", want: "4.5%"},
		{value: 4.0, want: "4.0%"},
	}
	for _, tc := range cases {
		if got := domain.FormatABV(tc.value); got != tc.want {
			t.Fatalf("FormatABV(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatLocation(t *testing.T) {
	venue := domain.VenueSummary{Town: "Leeds", Postcode: "LS1 1AA"}
	if got := venue.FormatLocation(); got != "Leeds (LS1 1AA)" {
		t.Fatalf("unexpected location: %q", got)
	}
	venue.Postcode = ""
	if got := venue.FormatLocation(); got != "Leeds" {
		t.Fatalf("expected town only, got %q", got)
	}
}

func TestFormatPriceRange(t *testing.T) {
	region := domain.RegionStat{MinPrice: 3.0, MaxPrice: 4.5}
	if got := region.FormatPriceRange(); got != "£3.00 - £4.50" {
		t.Fatalf("unexpected range: %q", got)
	}
}
