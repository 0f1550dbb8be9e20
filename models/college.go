package models

// College ownership types.
const (
	TypeGovernment = "Government"
	TypePrivate    = "Private"
)

// College is a single directory entry. The catalog is static reference data
// seeded at migration time; records never change while the server runs.
//
// CutoffRange, Fees, Placements and AvgPackage are display strings, not
// structured numbers. They are rendered as-is.
type College struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Rating      float64  `json:"rating"`
	CutoffRange string   `json:"cutoffRange"`
	Branches    []string `json:"branches"`
	Fees        string   `json:"fees"`
	Placements  string   `json:"placements"`
	AvgPackage  string   `json:"avgPackage"`
}
