package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"cetcounselor/models"
	cutoffsvc "cetcounselor/services/cutoffs"
)

type cutoffService interface {
	Lookup(collegeKey, branchKey, categoryKey string) []models.CutoffPoint
	CollegeOptions() []models.CutoffOption
}

var _ cutoffService = (*cutoffsvc.Service)(nil)

type activityService interface {
	Record(action, college string)
}

// CutoffsHandler exposes the historical cutoff endpoints.
type CutoffsHandler struct {
	Cutoffs  cutoffService
	Activity activityService
}

// NewCutoffsHandler creates a cutoffs handler. activity may be nil.
func NewCutoffsHandler(cutoffs cutoffService, activity activityService) *CutoffsHandler {
	return &CutoffsHandler{Cutoffs: cutoffs, Activity: activity}
}

// Options returns the selector lists for the trends view.
// GET /api/cutoffs/options
func (h *CutoffsHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"colleges":   h.Cutoffs.CollegeOptions(),
		"branches":   cutoffsvc.Branches,
		"categories": cutoffsvc.Categories,
	})
}

// Series returns the cutoff series and its aggregates for one combination.
// A combination with no recorded data is a normal response with noData set,
// not an error.
// GET /api/cutoffs/{college}/{branch}/{category}
func (h *CutoffsHandler) Series(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collegeKey := vars["college"]
	branchKey := vars["branch"]
	categoryKey := vars["category"]

	series := h.Cutoffs.Lookup(collegeKey, branchKey, categoryKey)

	response := map[string]interface{}{
		"college":  collegeKey,
		"branch":   branchKey,
		"category": categoryKey,
		"series":   series,
		"noData":   len(series) == 0,
	}
	if analysis, ok := cutoffsvc.Analyze(series); ok {
		response["analysis"] = analysis
	}

	if h.Activity != nil && len(series) > 0 {
		h.Activity.Record(models.ActivityViewedCutoffs, collegeKey)
	}

	writeJSON(w, response)
}
