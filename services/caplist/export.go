package caplist

import (
	"strconv"
	"strings"

	"cetcounselor/models"
)

// Export file metadata used by the download endpoint.
const (
	ExportFileName    = "my_cap_list.csv"
	ExportContentType = "text/csv"
)

// CSVHeader is the column layout of the exported file.
const CSVHeader = "Name,Location,Type,Rating,Cutoff Range,Fees,Placements,Avg Package"

// ExportCSV renders the shortlist as the downloadable CSV document: the
// header row followed by one row per entry. Fields are joined verbatim with
// no quoting or escaping, which matches the files users already exported — a
// field containing a comma would shift that row's columns. An empty list
// produces the header row only.
func ExportCSV(list []models.College) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	for _, c := range list {
		row := []string{
			c.Name,
			c.Location,
			c.Type,
			formatRating(c.Rating),
			c.CutoffRange,
			c.Fees,
			c.Placements,
			c.AvgPackage,
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// formatRating renders ratings the way the UI shows them: "4.8", and "4"
// rather than "4.0" for whole numbers.
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
