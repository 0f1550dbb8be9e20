package catalog_test

import (
	"errors"
	"testing"

	"cetcounselor/models"
	"cetcounselor/services/catalog"
)

type stubStore struct {
	colleges []models.College
	err      error
}

func (s *stubStore) AllColleges() ([]models.College, error) {
	return s.colleges, s.err
}

func TestServiceListsInStoreOrder(t *testing.T) {
	store := &stubStore{colleges: []models.College{
		{ID: 1, Name: "VJTI"},
		{ID: 2, Name: "COEP"},
	}}

	svc, err := catalog.NewService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	list := svc.List()
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("unexpected catalog order: %+v", list)
	}
}

func TestServiceGet(t *testing.T) {
	svc, err := catalog.NewService(&stubStore{colleges: []models.College{{ID: 3, Name: "PICT"}}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	c, ok := svc.Get(3)
	if !ok || c.Name != "PICT" {
		t.Fatalf("expected PICT, got %+v ok=%v", c, ok)
	}
	if _, ok := svc.Get(99); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestServicePropagatesStoreError(t *testing.T) {
	if _, err := catalog.NewService(&stubStore{err: errors.New("boom")}); err == nil {
		t.Fatalf("expected error from failing store")
	}
}

func TestCutoffTrendsPath(t *testing.T) {
	if got := catalog.CutoffTrendsPath(3); got != "/cutoff-trends?college=3" {
		t.Fatalf("unexpected path %q", got)
	}
}
