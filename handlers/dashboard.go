package handlers

import (
	"net/http"

	"cetcounselor/models"
)

type activityFeed interface {
	Recent(limit int) []models.ActivityEvent
}

// DashboardHandler aggregates everything the signed-in landing view needs.
type DashboardHandler struct {
	Profiles profileService
	Activity activityFeed
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(profiles profileService, activity activityFeed) *DashboardHandler {
	return &DashboardHandler{Profiles: profiles, Activity: activity}
}

type quickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

var quickActions = []quickAction{
	{Title: "Find Colleges", Description: "Discover colleges based on your rank", Path: "/college-finder"},
	{Title: "View Cutoffs", Description: "Analyze historical cutoff trends", Path: "/cutoff-trends"},
	{Title: "My CAP List", Description: "Manage your saved colleges", Path: "/cap-list"},
	{Title: "CAP Guide", Description: "Learn about counseling process", Path: "/cap-guide"},
}

type progressItem struct {
	Label    string `json:"label"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

var roundProgress = []progressItem{
	{Label: "Document Verification", Status: "Complete", Progress: 100},
	{Label: "College Research", Status: "In Progress", Progress: 65},
	{Label: "Choice Filling", Status: "Pending", Progress: 0},
}

type importantDate struct {
	Round string `json:"round"`
	Label string `json:"label"`
	Dates string `json:"dates"`
}

var importantDates = []importantDate{
	{Round: "CAP Round 1", Label: "Choice Filling", Dates: "Jul 15-20"},
	{Round: "CAP Round 2", Label: "Choice Filling", Dates: "Jul 25-30"},
	{Round: "Final Round", Label: "Last Chance", Dates: "Aug 5-10"},
}

// View returns the dashboard payload for the current profile.
// GET /api/dashboard
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Profiles.Current()
	if !ok {
		jsonError(w, "Please login to view your dashboard", http.StatusUnauthorized)
		return
	}

	recent := []models.ActivityEvent{}
	if h.Activity != nil {
		recent = h.Activity.Recent(5)
	}

	writeJSON(w, map[string]interface{}{
		"profile":        toProfileResponse(p),
		"quickActions":   quickActions,
		"recentActivity": recent,
		"roundProgress":  roundProgress,
		"importantDates": importantDates,
	})
}
