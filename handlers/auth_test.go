package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cetcounselor/models"
	profilesvc "cetcounselor/services/profile"
)

type fakeProfiles struct {
	profile   *models.UserProfile
	signupErr error
	loginErr  error
	logouts   int
}

func (f *fakeProfiles) Signup(in profilesvc.SignupInput) (models.UserProfile, error) {
	if f.signupErr != nil {
		return models.UserProfile{}, f.signupErr
	}
	p := models.UserProfile{
		ID:         "p-1",
		Name:       in.Name,
		Email:      in.Email,
		Password:   in.Password,
		ExamType:   models.ExamTypes[0],
		Stream:     models.Streams[0],
		JoinedDate: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		CapList:    []models.College{},
	}
	f.profile = &p
	return p, nil
}

func (f *fakeProfiles) Login(email, password string) (models.UserProfile, error) {
	if f.loginErr != nil {
		return models.UserProfile{}, f.loginErr
	}
	return *f.profile, nil
}

func (f *fakeProfiles) Logout() {
	f.logouts++
	f.profile = nil
}

func (f *fakeProfiles) Current() (models.UserProfile, bool) {
	if f.profile == nil {
		return models.UserProfile{}, false
	}
	return *f.profile, true
}

func TestSignupReturnsProfileWithoutPassword(t *testing.T) {
	handler := NewAuthHandler(&fakeProfiles{})

	body, _ := json.Marshal(map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Signup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("response must not echo the password: %s", rec.Body.String())
	}

	var resp struct {
		Message string          `json:"message"`
		Profile profileResponse `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Profile.Email != "asha@example.com" {
		t.Fatalf("unexpected profile %+v", resp.Profile)
	}
	if resp.Profile.JoinedDate != "2024-06-01T10:00:00.000Z" {
		t.Fatalf("unexpected joinedDate %q", resp.Profile.JoinedDate)
	}
}

func TestSignupRejectsUnknownFields(t *testing.T) {
	handler := NewAuthHandler(&fakeProfiles{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"name":"Asha","email":"a@b.c","password":"x","admin":true}`))
	rec := httptest.NewRecorder()

	handler.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSignupMissingFields(t *testing.T) {
	handler := NewAuthHandler(&fakeProfiles{signupErr: profilesvc.ErrMissingFields})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&fakeProfiles{loginErr: profilesvc.ErrInvalidCredentials})

	body, _ := json.Marshal(map[string]string{"email": "a@b.c", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	svc := &fakeProfiles{}
	handler := NewAuthHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.logouts != 1 {
		t.Fatalf("expected one logout call, got %d", svc.logouts)
	}
}

func TestProfileWithoutLogin(t *testing.T) {
	handler := NewAuthHandler(&fakeProfiles{})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()

	handler.Profile(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestProfileNormalizesNilCapList(t *testing.T) {
	svc := &fakeProfiles{profile: &models.UserProfile{
		ID:    "p-1",
		Name:  "Asha",
		Email: "asha@example.com",
	}}
	handler := NewAuthHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()

	handler.Profile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"capList":[]`) {
		t.Fatalf("nil CAP list must serialize as an empty array: %s", rec.Body.String())
	}
}
