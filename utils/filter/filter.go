package filter

import (
	"strings"

	"github.com/mozillazg/go-unidecode"

	"cetcounselor/models"
)

// MatchAll is the selector value meaning "no restriction". An empty selection
// is treated the same way.
const MatchAll = "all"

// Options contains the search text and the discrete selections from the
// college finder.
//
// Category and RankRange are collected by the finder UI but do not narrow the
// catalog; today they only drive the separate cutoff view. Applying them here
// is pending a product decision, so they are carried through untouched.
type Options struct {
	Query     string
	Stream    string
	Region    string
	Category  string
	RankRange string
}

// normalize folds case and transliterates non-ASCII text so that a plain
// keyboard query matches accented college names.
func normalize(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}

func isAll(selection string) bool {
	return selection == "" || strings.EqualFold(selection, MatchAll)
}

// Colleges returns the entries of list matching opts. A record is kept only
// when the query matches its name or location, the region selection matches
// its location, and the stream selection matches one of its branches. The
// result preserves the input order; there is no scoring or re-ranking.
func Colleges(list []models.College, opts Options) []models.College {
	query := normalize(strings.TrimSpace(opts.Query))
	stream := normalize(opts.Stream)

	matched := make([]models.College, 0, len(list))
	for _, college := range list {
		if query != "" &&
			!strings.Contains(normalize(college.Name), query) &&
			!strings.Contains(normalize(college.Location), query) {
			continue
		}

		if !isAll(opts.Region) && college.Location != opts.Region {
			continue
		}

		if !isAll(opts.Stream) && !branchesContain(college.Branches, stream) {
			continue
		}

		matched = append(matched, college)
	}
	return matched
}

func branchesContain(branches []string, stream string) bool {
	for _, branch := range branches {
		if strings.Contains(normalize(branch), stream) {
			return true
		}
	}
	return false
}
