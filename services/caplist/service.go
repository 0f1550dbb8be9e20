package caplist

import (
	"errors"

	"cetcounselor/models"
)

// ErrNoProfile is returned when the shortlist is used before signup/login.
var ErrNoProfile = errors.New("no profile found, please sign up or log in")

type profileStore interface {
	Load() (models.UserProfile, bool)
	Save(models.UserProfile)
}

type activityRecorder interface {
	Record(action, college string)
}

// Service manages the CAP shortlist stored inside the user profile. Every
// mutation loads the profile, rewrites the list and saves the whole record
// back, matching the store's replace-on-save contract.
type Service struct {
	store    profileStore
	activity activityRecorder
}

// NewService creates a shortlist service. activity may be nil.
func NewService(store profileStore, activity activityRecorder) *Service {
	return &Service{store: store, activity: activity}
}

// List returns the current shortlist.
func (s *Service) List() ([]models.College, error) {
	p, ok := s.store.Load()
	if !ok {
		return nil, ErrNoProfile
	}
	return p.CapList, nil
}

// Add appends the college snapshot to the shortlist. Adding a college that is
// already listed is a no-op, so repeated requests cannot create duplicates.
func (s *Service) Add(college models.College) (models.UserProfile, error) {
	p, ok := s.store.Load()
	if !ok {
		return models.UserProfile{}, ErrNoProfile
	}
	if p.InCapList(college.ID) {
		return p, nil
	}

	p.CapList = append(p.CapList, college)
	s.store.Save(p)
	s.record(models.ActivityAddedToCapList, college.Name)
	return p, nil
}

// Remove drops every entry with the given id. More than one match only
// happens when older data already contained duplicates; they all go.
func (s *Service) Remove(collegeID int) (models.UserProfile, error) {
	p, ok := s.store.Load()
	if !ok {
		return models.UserProfile{}, ErrNoProfile
	}

	kept := make([]models.College, 0, len(p.CapList))
	removed := ""
	for _, c := range p.CapList {
		if c.ID == collegeID {
			removed = c.Name
			continue
		}
		kept = append(kept, c)
	}
	p.CapList = kept
	s.store.Save(p)
	if removed != "" {
		s.record(models.ActivityRemovedFromCapList, removed)
	}
	return p, nil
}

func (s *Service) record(action, college string) {
	if s.activity != nil {
		s.activity.Record(action, college)
	}
}

// Summary aggregates the shortlist for the overview cards.
type Summary struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"averageRating"`
	Government    int     `json:"government"`
	Private       int     `json:"private"`
}

// Summarize computes the shortlist overview. An empty list yields a zero
// summary; the average is guarded so there is no division by zero.
func Summarize(list []models.College) Summary {
	sum := Summary{Total: len(list)}
	if len(list) == 0 {
		return sum
	}

	var ratings float64
	for _, c := range list {
		ratings += c.Rating
		switch c.Type {
		case models.TypeGovernment:
			sum.Government++
		case models.TypePrivate:
			sum.Private++
		}
	}
	sum.AverageRating = ratings / float64(len(list))
	return sum
}
