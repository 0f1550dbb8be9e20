package models

// CutoffPoint is one admission year of a college/branch/category series.
// Cutoff is the worst rank that still received a seat offer that year.
type CutoffPoint struct {
	Year   string `json:"year"`
	Cutoff int    `json:"cutoff"`
	Seats  int    `json:"seats"`
}

// CutoffOption is one entry of the selector lists on the trends view.
type CutoffOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// YearChange pairs a cutoff point with its movement against the previous
// year. Percent is nil for the first year of a series and when the previous
// cutoff is zero; there is nothing meaningful to compare against.
type YearChange struct {
	Year    string   `json:"year"`
	Cutoff  int      `json:"cutoff"`
	Change  int      `json:"change"`
	Percent *float64 `json:"percent,omitempty"`
	Trend   string   `json:"trend"`
}

// Trend values used in YearChange.
const (
	TrendHarder = "harder"
	TrendEasier = "easier"
	TrendSame   = "same"
)

// CutoffAnalysis summarises a cutoff series for display: the most recent
// cutoff, the best and worst years, the seat count and per-year movement.
type CutoffAnalysis struct {
	Latest  int          `json:"latest"`
	Lowest  int          `json:"lowest"`
	Highest int          `json:"highest"`
	Seats   int          `json:"seats"`
	Changes []YearChange `json:"changes"`
}
