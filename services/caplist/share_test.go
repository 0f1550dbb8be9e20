package caplist_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"cetcounselor/models"
	"cetcounselor/services/caplist"
)

type fakeSink struct {
	name    string
	err     error
	calls   int
	gotText string
}

func (s *fakeSink) Name() string { return s.name }

func (s *fakeSink) Deliver(ctx context.Context, title, text string) error {
	s.calls++
	s.gotText = text
	return s.err
}

func shareList() []models.College {
	return []models.College{
		{ID: 1, Name: "VJTI", Location: "Mumbai", Rating: 4.8},
		{ID: 2, Name: "COEP", Location: "Pune", Rating: 4.7},
	}
}

func TestShareText(t *testing.T) {
	got := caplist.ShareText(shareList())

	want := "My CAP List for Maharashtra CET:\n\n" +
		"VJTI (Mumbai) - Rating: 4.8/5\n" +
		"COEP (Pune) - Rating: 4.7/5" +
		"\n\nCreated using CET Counselor"
	if got != want {
		t.Fatalf("unexpected share text:\n%q\nwant:\n%q", got, want)
	}
}

func TestShareUsesPrimarySink(t *testing.T) {
	primary := &fakeSink{name: "share"}
	fallback := &fakeSink{name: "clipboard"}
	sharer := &caplist.Sharer{Primary: primary, Fallback: fallback}

	msg, err := sharer.Share(context.Background(), shareList())
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if primary.calls != 1 || fallback.calls != 0 {
		t.Fatalf("expected primary only, got primary=%d fallback=%d", primary.calls, fallback.calls)
	}
	if !strings.Contains(msg, "shared") {
		t.Fatalf("unexpected confirmation %q", msg)
	}
}

func TestShareFallsBackToClipboard(t *testing.T) {
	// The user backing out of the share dialog surfaces as an error too.
	primary := &fakeSink{name: "share", err: context.Canceled}
	fallback := &fakeSink{name: "clipboard"}
	sharer := &caplist.Sharer{Primary: primary, Fallback: fallback}

	msg, err := sharer.Share(context.Background(), shareList())
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if fallback.calls != 1 {
		t.Fatalf("expected fallback delivery, got %d calls", fallback.calls)
	}
	if !strings.Contains(msg, "clipboard") {
		t.Fatalf("confirmation should name the clipboard path, got %q", msg)
	}
}

func TestShareWithoutPrimaryGoesStraightToFallback(t *testing.T) {
	fallback := &fakeSink{name: "clipboard"}
	sharer := &caplist.Sharer{Fallback: fallback}

	if _, err := sharer.Share(context.Background(), shareList()); err != nil {
		t.Fatalf("share: %v", err)
	}
	if fallback.calls != 1 {
		t.Fatalf("expected fallback delivery")
	}
}

func TestShareFailsWhenEveryChannelFails(t *testing.T) {
	boom := errors.New("boom")
	sharer := &caplist.Sharer{
		Primary:  &fakeSink{name: "share", err: boom},
		Fallback: &fakeSink{name: "clipboard", err: boom},
	}

	if _, err := sharer.Share(context.Background(), shareList()); !errors.Is(err, boom) {
		t.Fatalf("expected delivery error, got %v", err)
	}
}

func TestFileSinkWritesPayload(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink := caplist.NewFileSink(fs, "data")

	if err := sink.Deliver(context.Background(), caplist.ShareTitle, "payload"); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	data, err := afero.ReadFile(fs, "data/cap_list_share.txt")
	if err != nil {
		t.Fatalf("read sink output: %v", err)
	}
	if string(data) != "payload\n" {
		t.Fatalf("unexpected sink output %q", data)
	}
}
