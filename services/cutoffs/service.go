package cutoffs

import (
	"log"
	"math"

	"cetcounselor/models"
)

// Branch and category selector lists for the trends view. Most combinations
// have no recorded series; a lookup for those shows the no-data state.
var (
	Branches = []models.CutoffOption{
		{ID: "computer", Name: "Computer Engineering"},
		{ID: "mechanical", Name: "Mechanical Engineering"},
		{ID: "electronics", Name: "Electronics Engineering"},
	}
	Categories = []models.CutoffOption{
		{ID: "open", Name: "OPEN"},
		{ID: "obc", Name: "OBC"},
		{ID: "sc", Name: "SC"},
		{ID: "st", Name: "ST"},
	}
)

type seriesStore interface {
	Series(collegeKey, branchKey, categoryKey string) ([]models.CutoffPoint, error)
	Colleges() ([]models.CutoffOption, error)
}

// Service answers historical cutoff queries.
type Service struct {
	store seriesStore
}

// NewService creates a cutoff service.
func NewService(store seriesStore) *Service {
	return &Service{store: store}
}

// Lookup returns the series for a college/branch/category combination,
// oldest year first. Missing data of any kind comes back as an empty slice —
// "no data" is a normal, displayable state, never an error.
func (s *Service) Lookup(collegeKey, branchKey, categoryKey string) []models.CutoffPoint {
	series, err := s.store.Series(collegeKey, branchKey, categoryKey)
	if err != nil {
		log.Printf("[cutoffs] series lookup %s/%s/%s failed: %v", collegeKey, branchKey, categoryKey, err)
		return []models.CutoffPoint{}
	}
	return series
}

// CollegeOptions returns the trends-view college selector list.
func (s *Service) CollegeOptions() []models.CutoffOption {
	options, err := s.store.Colleges()
	if err != nil {
		log.Printf("[cutoffs] college options: %v", err)
		return []models.CutoffOption{}
	}
	return options
}

// Analyze summarises a series. The second return is false for an empty
// series, where none of the aggregates exist.
func Analyze(series []models.CutoffPoint) (models.CutoffAnalysis, bool) {
	if len(series) == 0 {
		return models.CutoffAnalysis{}, false
	}

	analysis := models.CutoffAnalysis{
		Latest:  series[len(series)-1].Cutoff,
		Lowest:  series[0].Cutoff,
		Highest: series[0].Cutoff,
		Seats:   series[0].Seats,
		Changes: make([]models.YearChange, 0, len(series)),
	}

	for i, point := range series {
		if point.Cutoff < analysis.Lowest {
			analysis.Lowest = point.Cutoff
		}
		if point.Cutoff > analysis.Highest {
			analysis.Highest = point.Cutoff
		}

		change := models.YearChange{Year: point.Year, Cutoff: point.Cutoff}
		if i > 0 {
			prev := series[i-1].Cutoff
			change.Change = point.Cutoff - prev
			// A zero historical cutoff would divide by zero; leave the
			// percentage out rather than reporting infinity.
			if prev != 0 {
				pct := math.Round(float64(change.Change)/float64(prev)*1000) / 10
				change.Percent = &pct
			}
		}
		switch {
		case change.Change > 0:
			change.Trend = models.TrendHarder
		case change.Change < 0:
			change.Trend = models.TrendEasier
		default:
			change.Trend = models.TrendSame
		}
		analysis.Changes = append(analysis.Changes, change)
	}

	return analysis, true
}
