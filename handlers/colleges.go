package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cetcounselor/models"
	catalogsvc "cetcounselor/services/catalog"
	"cetcounselor/utils/filter"
)

type catalogService interface {
	List() []models.College
	Get(id int) (models.College, bool)
}

var _ catalogService = (*catalogsvc.Service)(nil)

// CollegesHandler exposes the college finder endpoints.
type CollegesHandler struct {
	Catalog catalogService
}

// NewCollegesHandler creates a colleges handler.
func NewCollegesHandler(catalog catalogService) *CollegesHandler {
	return &CollegesHandler{Catalog: catalog}
}

// List returns the catalog narrowed by the finder's search text and
// selections.
// GET /api/colleges?q=&stream=&region=&category=&rankRange=
func (h *CollegesHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := filter.Options{
		Query:     query.Get("q"),
		Stream:    query.Get("stream"),
		Region:    query.Get("region"),
		Category:  query.Get("category"),
		RankRange: query.Get("rankRange"),
	}

	matched := filter.Colleges(h.Catalog.List(), opts)
	writeJSON(w, map[string]interface{}{
		"colleges": matched,
		"count":    len(matched),
	})
}

// Get returns a single catalog entry along with the route to its cutoff view.
// GET /api/colleges/{id}
func (h *CollegesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		jsonError(w, "Invalid college id", http.StatusBadRequest)
		return
	}

	college, ok := h.Catalog.Get(id)
	if !ok {
		jsonError(w, "College not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]interface{}{
		"college":     college,
		"cutoffsPath": catalogsvc.CutoffTrendsPath(college.ID),
	})
}
