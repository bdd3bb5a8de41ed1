package domain

// RawDrink stores a single product row from the raw snapshot.
// ABV arrives either as a number or a blank string, so it stays untyped
// until the classifier parses it.
type RawDrink struct {
	Name       string   `json:"name"`
	Category   string   `json:"cat"`
	ABV        any      `json:"abv"`
	PintPrice  *float64 `json:"pint"`
	OutOfStock bool     `json:"oos"`
}

// RawVenue stores a pub record from the raw snapshot.
type RawVenue struct {
	Name     string     `json:"name"`
	Ref      string     `json:"ref"`
	Town     string     `json:"town"`
	County   string     `json:"county"`
	Postcode string     `json:"postcode"`
	Lat      *float64   `json:"lat"`
	Lon      *float64   `json:"lon"`
	Drinks   []RawDrink `json:"drinks"`
}

// SnapshotMeta stores snapshot provenance fields.
type SnapshotMeta struct {
	FetchDate string `json:"fetchDate"`
}

// Snapshot is the raw input payload: a pub list plus fetch metadata.
type Snapshot struct {
	Meta SnapshotMeta `json:"meta"`
	Pubs []RawVenue   `json:"pubs"`
}

// SimplifiedDrink is the projected drink row kept in reports.
// ABV passes through exactly as it appeared in the snapshot.
type SimplifiedDrink struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	ABV   any     `json:"abv"`
}

// ReducedVenue is a pub after classification and price statistics.
// It exists only when at least one in-stock priced drink matched.
type ReducedVenue struct {
	Name          string            `json:"name"`
	Ref           string            `json:"ref"`
	Town          string            `json:"town"`
	County        string            `json:"county"`
	Postcode      string            `json:"postcode"`
	Lat           *float64          `json:"lat"`
	Lon           *float64          `json:"lon"`
	AvgPrice      float64           `json:"avg"`
	MinPrice      float64           `json:"min"`
	MaxPrice      float64           `json:"max"`
	CheapestDrink string            `json:"cheapest"`
	DrinkCount    int               `json:"beers"`
	Drinks        []SimplifiedDrink `json:"drinks"`
}

// RegionStat is a regional rollup over reduced venues.
type RegionStat struct {
	Name       string  `json:"name"`
	AvgPrice   float64 `json:"avg"`
	VenueCount int     `json:"pubs"`
	MinPrice   float64 `json:"min"`
	MaxPrice   float64 `json:"max"`
}

// CheapestEntry is a leaderboard projection for the lowest venue averages.
type CheapestEntry struct {
	Name          string   `json:"name"`
	Town          string   `json:"town"`
	Postcode      string   `json:"postcode"`
	AvgPrice      float64  `json:"avg"`
	MinPrice      float64  `json:"min"`
	CheapestDrink string   `json:"cheapest"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
}

// PriciestEntry is a leaderboard projection for the highest venue averages.
type PriciestEntry struct {
	Name     string   `json:"name"`
	Town     string   `json:"town"`
	Postcode string   `json:"postcode"`
	AvgPrice float64  `json:"avg"`
	MaxPrice float64  `json:"max"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

// VenueSummary is the full-listing projection with a truncated drink list.
type VenueSummary struct {
	Name          string            `json:"name"`
	Town          string            `json:"town"`
	County        string            `json:"county"`
	Postcode      string            `json:"postcode"`
	Lat           *float64          `json:"lat"`
	Lon           *float64          `json:"lon"`
	AvgPrice      float64           `json:"avg"`
	MinPrice      float64           `json:"min"`
	MaxPrice      float64           `json:"max"`
	CheapestDrink string            `json:"cheapest"`
	DrinkCount    int               `json:"beers"`
	Drinks        []SimplifiedDrink `json:"drinks"`
}

// ReportMeta stores report-wide statistics. Key names are part of the
// output contract and must not change.
type ReportMeta struct {
	Source            string  `json:"source"`
	FetchDate         string  `json:"fetchDate"`
	TotalPubs         int     `json:"totalPubs"`
	TotalBeers        int     `json:"totalBeers"`
	AvgPint           float64 `json:"avgPint"`
	CheapestPint      float64 `json:"cheapestPint"`
	MostExpensivePint float64 `json:"mostExpensivePint"`
}

// Report is the final analysis-ready payload.
type Report struct {
	Meta     ReportMeta      `json:"meta"`
	Regional []RegionStat    `json:"regional"`
	Cheapest []CheapestEntry `json:"cheapest"`
	Priciest []PriciestEntry `json:"priciest"`
	Pubs     []VenueSummary  `json:"pubs"`
}
