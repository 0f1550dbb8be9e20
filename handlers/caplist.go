package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cetcounselor/models"
	caplistsvc "cetcounselor/services/caplist"
)

type capListService interface {
	List() ([]models.College, error)
	Add(college models.College) (models.UserProfile, error)
	Remove(collegeID int) (models.UserProfile, error)
}

var _ capListService = (*caplistsvc.Service)(nil)

// CapListHandler exposes the shortlist endpoints.
type CapListHandler struct {
	CapList capListService
	Catalog catalogService
	Sharer  *caplistsvc.Sharer
}

// NewCapListHandler creates a CAP list handler.
func NewCapListHandler(capList capListService, catalog catalogService, sharer *caplistsvc.Sharer) *CapListHandler {
	return &CapListHandler{CapList: capList, Catalog: catalog, Sharer: sharer}
}

func (h *CapListHandler) capListError(w http.ResponseWriter, err error) {
	if errors.Is(err, caplistsvc.ErrNoProfile) {
		jsonError(w, "Please login to manage your CAP list", http.StatusUnauthorized)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

// List returns the shortlist with its summary cards.
// GET /api/caplist
func (h *CapListHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.CapList.List()
	if err != nil {
		h.capListError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"capList": list,
		"summary": caplistsvc.Summarize(list),
	})
}

// Add shortlists a catalog entry by id. Re-adding an already listed college
// succeeds without changing anything.
// POST /api/caplist
func (h *CapListHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CollegeID int `json:"collegeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	college, ok := h.Catalog.Get(req.CollegeID)
	if !ok {
		jsonError(w, "College not found", http.StatusNotFound)
		return
	}

	p, err := h.CapList.Add(college)
	if err != nil {
		h.capListError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": college.Name + " has been added to your CAP list.",
		"capList": p.CapList,
	})
}

// Remove drops a college from the shortlist.
// DELETE /api/caplist/{id}
func (h *CapListHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		jsonError(w, "Invalid college id", http.StatusBadRequest)
		return
	}

	p, err := h.CapList.Remove(id)
	if err != nil {
		h.capListError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "College has been removed from your CAP list.",
		"capList": p.CapList,
	})
}

// Export downloads the shortlist as a CSV file.
// GET /api/caplist/export
func (h *CapListHandler) Export(w http.ResponseWriter, r *http.Request) {
	list, err := h.CapList.List()
	if err != nil {
		h.capListError(w, err)
		return
	}

	w.Header().Set("Content-Type", caplistsvc.ExportContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+caplistsvc.ExportFileName+`"`)
	_, _ = w.Write([]byte(caplistsvc.ExportCSV(list)))
}

// Share pushes the shortlist through the configured share channels and
// reports which one was used.
// POST /api/caplist/share
func (h *CapListHandler) Share(w http.ResponseWriter, r *http.Request) {
	list, err := h.CapList.List()
	if err != nil {
		h.capListError(w, err)
		return
	}

	message, err := h.Sharer.Share(r.Context(), list)
	if err != nil {
		jsonError(w, "Failed to share CAP list: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{
		"message": message,
		"text":    caplistsvc.ShareText(list),
	})
}
