package catalog

import (
	"fmt"
	"log"
	"net/url"
	"strconv"

	"cetcounselor/models"
)

type catalogStore interface {
	AllColleges() ([]models.College, error)
}

// Service serves the college directory. The catalog is small and static, so
// it is loaded once at startup and answered from memory afterwards.
type Service struct {
	colleges []models.College
	byID     map[int]models.College
}

// NewService loads the catalog from the store.
func NewService(store catalogStore) (*Service, error) {
	colleges, err := store.AllColleges()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	byID := make(map[int]models.College, len(colleges))
	for _, c := range colleges {
		byID[c.ID] = c
	}

	log.Printf("[catalog] loaded %d colleges", len(colleges))
	return &Service{colleges: colleges, byID: byID}, nil
}

// List returns the full catalog in id order.
func (s *Service) List() []models.College {
	out := make([]models.College, len(s.colleges))
	copy(out, s.colleges)
	return out
}

// Get returns the college with the given id.
func (s *Service) Get(id int) (models.College, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// CutoffTrendsPath returns the frontend route that shows historical cutoffs
// for the given college.
func CutoffTrendsPath(collegeID int) string {
	query := url.Values{"college": []string{strconv.Itoa(collegeID)}}
	return "/cutoff-trends?" + query.Encode()
}
