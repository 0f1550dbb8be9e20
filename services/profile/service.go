package profile

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"cetcounselor/models"
)

var (
	// ErrMissingFields is returned when a signup form is incomplete.
	ErrMissingFields = errors.New("all fields are required")
	// ErrInvalidCredentials is returned on a login mismatch. The message is
	// shown to the user as-is; there is no lockout and no rate limiting
	// because this gate is illustrative, not real authentication.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SignupInput carries the signup form fields.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ExamType string `json:"examType"`
	Stream   string `json:"stream"`
}

// Service implements signup, login and logout over the Store.
type Service struct {
	store *Store
	now   func() time.Time
}

// NewService creates a profile service.
func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Signup creates the installation's profile, replacing any existing record.
// JoinedDate is set once here and never updated afterwards.
func (s *Service) Signup(in SignupInput) (models.UserProfile, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return models.UserProfile{}, ErrMissingFields
	}

	examType := in.ExamType
	if examType == "" {
		examType = models.ExamTypes[0]
	}
	stream := in.Stream
	if stream == "" {
		stream = models.Streams[0]
	}

	p := models.UserProfile{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Password:   in.Password,
		ExamType:   examType,
		Stream:     stream,
		JoinedDate: s.now().UTC(),
		CapList:    []models.College{},
	}
	s.store.Save(p)
	log.Printf("[profile] created profile for %s", email)
	return p, nil
}

// Login compares the submitted credentials against the stored record. An
// absent profile and a mismatch look the same to the caller.
func (s *Service) Login(email, password string) (models.UserProfile, error) {
	p, ok := s.store.Load()
	if !ok || p.Email != email || p.Password != password {
		return models.UserProfile{}, ErrInvalidCredentials
	}
	return p, nil
}

// Logout deletes the stored record. The CAP list is part of it and goes too.
func (s *Service) Logout() {
	if err := s.store.Delete(); err != nil {
		log.Printf("[profile] logout: %v", err)
	}
}

// Current returns the stored profile when one exists.
func (s *Service) Current() (models.UserProfile, bool) {
	return s.store.Load()
}
