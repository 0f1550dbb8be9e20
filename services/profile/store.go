package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"cetcounselor/models"
)

// StorageKey is the fixed key the profile record is stored under.
const StorageKey = "mhtcet_user"

// Store persists the single user profile as one JSON document that is
// replaced wholesale on every save. There is one record per installation, no
// merging and no versioning; unknown fields in older files are ignored and
// missing fields fall back to zero values.
//
// Two processes writing the store concurrently can lose an update. That is a
// known limitation of the single-blob layout, not something the store guards
// against.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store rooted at dataDir on the given filesystem.
func NewStore(fs afero.Fs, dataDir string) *Store {
	return &Store{fs: fs, path: filepath.Join(dataDir, StorageKey+".json")}
}

// Load returns the stored profile. Every failure mode (no file, unreadable
// storage, corrupt JSON) is reported as absent so callers fall back to the
// signed-out state; load never surfaces an error.
func (s *Store) Load() (models.UserProfile, bool) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[profile] storage unavailable, treating profile as absent: %v", err)
		}
		return models.UserProfile{}, false
	}

	var p models.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("[profile] stored profile is corrupt, treating as absent: %v", err)
		return models.UserProfile{}, false
	}

	if p.CapList == nil {
		p.CapList = []models.College{}
	}
	return p, true
}

// Save replaces the stored profile. A write failure costs at most the latest
// change, so it is logged rather than propagated.
func (s *Store) Save(p models.UserProfile) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		log.Printf("[profile] encode profile: %v", err)
		return
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Printf("[profile] create data directory: %v", err)
		return
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		log.Printf("[profile] write profile: %v", err)
	}
}

// Delete removes the stored record entirely, CAP list included.
func (s *Store) Delete() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove profile: %w", err)
	}
	return nil
}
