package profile_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	"cetcounselor/models"
	"cetcounselor/services/profile"
)

func testProfile() models.UserProfile {
	return models.UserProfile{
		ID:         "p-1",
		Name:       "Asha",
		Email:      "asha@example.com",
		Password:   "secret",
		ExamType:   "MHT-CET",
		Stream:     "Engineering",
		JoinedDate: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
		CapList: []models.College{
			{ID: 1, Name: "VJTI", Location: "Mumbai", Type: models.TypeGovernment, Rating: 4.8, Branches: []string{"Computer Engineering"}},
		},
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := profile.NewStore(fs, "data")

	want := testProfile()
	store.Save(want)

	got, ok := store.Load()
	if !ok {
		t.Fatalf("expected profile to be present after save")
	}
	if got.Email != want.Email || got.Password != want.Password || got.Name != want.Name {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
	if !got.JoinedDate.Equal(want.JoinedDate) {
		t.Fatalf("joined date mismatch: got %v want %v", got.JoinedDate, want.JoinedDate)
	}
	if len(got.CapList) != 1 || got.CapList[0].ID != 1 {
		t.Fatalf("cap list mismatch: %+v", got.CapList)
	}
}

func TestLoadMissingFileIsAbsent(t *testing.T) {
	store := profile.NewStore(afero.NewMemMapFs(), "data")
	if _, ok := store.Load(); ok {
		t.Fatalf("expected no profile on a fresh store")
	}
}

func TestLoadCorruptFileIsAbsent(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("data", profile.StorageKey+".json")
	if err := afero.WriteFile(fs, path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := profile.NewStore(fs, "data")
	if _, ok := store.Load(); ok {
		t.Fatalf("corrupt profile must load as absent, not fail")
	}
}

func TestLoadToleratesUnknownAndMissingFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("data", profile.StorageKey+".json")
	// An older record: no capList, plus a field this version does not know.
	doc := `{"name":"Asha","email":"asha@example.com","password":"pw","legacyField":42}`
	if err := afero.WriteFile(fs, path, []byte(doc), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	store := profile.NewStore(fs, "data")
	got, ok := store.Load()
	if !ok {
		t.Fatalf("expected profile to load")
	}
	if got.CapList == nil || len(got.CapList) != 0 {
		t.Fatalf("missing capList must default to empty, got %#v", got.CapList)
	}
	if got.ExamType != "" {
		t.Fatalf("missing field must stay zero, got %q", got.ExamType)
	}
}

func TestSaveReplacesWholeValue(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := profile.NewStore(fs, "data")

	first := testProfile()
	store.Save(first)

	second := first
	second.Name = "Asha K"
	second.CapList = []models.College{}
	store.Save(second)

	got, ok := store.Load()
	if !ok {
		t.Fatalf("expected profile to be present")
	}
	if got.Name != "Asha K" || len(got.CapList) != 0 {
		t.Fatalf("save must replace, not merge: %+v", got)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := profile.NewStore(fs, "data")
	store.Save(testProfile())

	if err := store.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Fatalf("expected profile to be gone after delete")
	}

	// Deleting again is fine.
	if err := store.Delete(); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestLoadWithUnavailableStorageIsAbsent(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store := profile.NewStore(fs, "data")
	if _, ok := store.Load(); ok {
		t.Fatalf("unavailable storage must read as absent")
	}
	// Save on read-only storage must not panic or error out of the call.
	store.Save(testProfile())
}
