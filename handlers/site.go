package handlers

import "net/http"

// SiteHandler serves the public landing-page content.
type SiteHandler struct{}

// NewSiteHandler creates a site handler.
func NewSiteHandler() *SiteHandler {
	return &SiteHandler{}
}

type feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

var features = []feature{
	{Title: "Cutoff Analysis", Description: "Analyze past 5 years cutoff trends with interactive charts"},
	{Title: "Smart Predictions", Description: "Get personalized college suggestions based on your rank"},
	{Title: "CAP Round Guide", Description: "Step-by-step guidance for all CAP rounds"},
	{Title: "Category-wise Data", Description: "Filters for OPEN, OBC, SC, ST and other categories"},
}

var stats = []stat{
	{Number: "400+", Label: "Engineering Colleges"},
	{Number: "150+", Label: "Pharmacy Colleges"},
	{Number: "5 Years", Label: "Historical Data"},
	{Number: "10K+", Label: "Students Helped"},
}

// Content returns the landing features and headline stats.
// GET /api/site
func (h *SiteHandler) Content(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"features": features,
		"stats":    stats,
	})
}
