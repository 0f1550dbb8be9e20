package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"cetcounselor/models"
	profilesvc "cetcounselor/services/profile"
)

type profileService interface {
	Signup(in profilesvc.SignupInput) (models.UserProfile, error)
	Login(email, password string) (models.UserProfile, error)
	Logout()
	Current() (models.UserProfile, bool)
}

var _ profileService = (*profilesvc.Service)(nil)

// AuthHandler exposes the signup/login/logout endpoints and the profile view.
type AuthHandler struct {
	Profiles profileService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(profiles profileService) *AuthHandler {
	return &AuthHandler{Profiles: profiles}
}

// profileResponse never includes the stored password.
type profileResponse struct {
	ID         string           `json:"id,omitempty"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	ExamType   string           `json:"examType"`
	Stream     string           `json:"stream"`
	JoinedDate string           `json:"joinedDate"`
	CapList    []models.College `json:"capList"`
}

func toProfileResponse(p models.UserProfile) profileResponse {
	capList := p.CapList
	if capList == nil {
		capList = []models.College{}
	}
	return profileResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		ExamType:   p.ExamType,
		Stream:     p.Stream,
		JoinedDate: p.JoinedDate.Format("2006-01-02T15:04:05.000Z07:00"),
		CapList:    capList,
	}
}

// Signup creates the installation profile.
// POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in profilesvc.SignupInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.Profiles.Signup(in)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]interface{}{
		"message": "Account created! Welcome to CET Counselor.",
		"profile": toProfileResponse(p),
	})
}

// Login checks the submitted credentials against the stored profile.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.Profiles.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, profilesvc.ErrInvalidCredentials) {
			jsonError(w, "Invalid credentials. Please try again or sign up.", http.StatusUnauthorized)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Welcome back!",
		"profile": toProfileResponse(p),
	})
}

// Logout deletes the stored profile, CAP list included.
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Profiles.Logout()
	writeJSON(w, map[string]string{"message": "Logged out successfully. See you soon!"})
}

// Profile returns the current profile.
// GET /api/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Profiles.Current()
	if !ok {
		jsonError(w, "No profile found", http.StatusNotFound)
		return
	}
	writeJSON(w, toProfileResponse(p))
}
