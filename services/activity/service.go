package activity

import (
	"log"
	"time"

	"github.com/google/uuid"

	"cetcounselor/models"
)

type eventStore interface {
	Insert(models.ActivityEvent) error
	Recent(limit int) ([]models.ActivityEvent, error)
}

// Service records dashboard feed events. The feed is informational; a failed
// write costs one entry and is only logged.
type Service struct {
	store eventStore
	now   func() time.Time
}

// NewService creates an activity service.
func NewService(store eventStore) *Service {
	return &Service{store: store, now: time.Now}
}

// Record stores one event.
func (s *Service) Record(action, college string) {
	ev := models.ActivityEvent{
		ID:        uuid.NewString(),
		Action:    action,
		College:   college,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Insert(ev); err != nil {
		log.Printf("[activity] record event: %v", err)
	}
}

// Recent returns up to limit events, newest first.
func (s *Service) Recent(limit int) []models.ActivityEvent {
	events, err := s.store.Recent(limit)
	if err != nil {
		log.Printf("[activity] list recent: %v", err)
		return []models.ActivityEvent{}
	}
	return events
}
