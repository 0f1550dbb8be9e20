package handlers

import (
	"net/http"

	"cetcounselor/models"
	guidesvc "cetcounselor/services/guide"
)

type guideService interface {
	Content() models.Guide
}

var _ guideService = (*guidesvc.Service)(nil)

// GuideHandler serves the static counseling-guide content.
type GuideHandler struct {
	Guide guideService
}

// NewGuideHandler creates a guide handler.
func NewGuideHandler(guide guideService) *GuideHandler {
	return &GuideHandler{Guide: guide}
}

// Content returns the full guide.
// GET /api/guide
func (h *GuideHandler) Content(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Guide.Content())
}
