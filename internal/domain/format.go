package domain

import (
	"fmt"
	"strings"
)

// FormatPrice renders a pint price for tables.
func FormatPrice(v float64) string {
	return fmt.Sprintf("£%.2f", v)
}

// FormatABV renders the passthrough ABV value.
func FormatABV(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		if strings.TrimSpace(t) == "" {
			return "-"
		}
		return t + "%"
	case float64:
		return fmt.Sprintf("%.1f%%", t)
	default:
		return fmt.Sprint(t)
	}
}

// FormatLocation renders town and postcode for tables.
func (v VenueSummary) FormatLocation() string {
	if strings.TrimSpace(v.Postcode) == "" {
		return v.Town
	}
	return fmt.Sprintf("%s (%s)", v.Town, v.Postcode)
}

// FormatPriceRange renders the venue min/max spread.
func (v VenueSummary) FormatPriceRange() string {
	return fmt.Sprintf("%s - %s", FormatPrice(v.MinPrice), FormatPrice(v.MaxPrice))
}

// FormatPriceRange renders the regional min/max spread.
func (r RegionStat) FormatPriceRange() string {
	return fmt.Sprintf("%s - %s", FormatPrice(r.MinPrice), FormatPrice(r.MaxPrice))
}
