package caplist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cetcounselor/models"
)

// ShareTitle is the payload title presented to share targets.
const ShareTitle = "My CAP List"

// ShareSink delivers a share payload through one outbound channel. Deliver
// may block on a platform dialog; it returns an error both on failure and
// when the user backs out.
type ShareSink interface {
	Name() string
	Deliver(ctx context.Context, title, text string) error
}

// Sharer pushes the shortlist through the primary sink and degrades to the
// fallback (typically the clipboard) when the primary is unavailable, fails
// or is cancelled.
type Sharer struct {
	Primary  ShareSink
	Fallback ShareSink
}

// ShareText builds the plain-text share payload: a title line, one line per
// entry and an attribution suffix.
func ShareText(list []models.College) string {
	lines := make([]string, 0, len(list))
	for _, c := range list {
		lines = append(lines, fmt.Sprintf("%s (%s) - Rating: %s/5", c.Name, c.Location, formatRating(c.Rating)))
	}

	var b strings.Builder
	b.WriteString("My CAP List for Maharashtra CET:\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nCreated using CET Counselor")
	return b.String()
}

// Share delivers the shortlist and returns a user-facing confirmation naming
// the channel that ended up being used.
func (sh *Sharer) Share(ctx context.Context, list []models.College) (string, error) {
	text := ShareText(list)

	if sh.Primary != nil {
		if err := sh.Primary.Deliver(ctx, ShareTitle, text); err == nil {
			return "Your CAP list has been shared.", nil
		} else {
			log.Printf("[caplist] share via %s failed, falling back: %v", sh.Primary.Name(), err)
		}
	}

	if sh.Fallback == nil {
		return "", errors.New("no share channel available")
	}
	if err := sh.Fallback.Deliver(ctx, ShareTitle, text); err != nil {
		return "", fmt.Errorf("share cap list via %s: %w", sh.Fallback.Name(), err)
	}
	return "Your CAP list has been copied to clipboard.", nil
}
