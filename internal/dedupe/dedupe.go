// Package dedupe collapses listings that describe the same opportunity
// across sources. Identity is the normalized (title, company) pair; the
// highest-scoring record in a group survives, ties going to the one seen
// first so a run is reproducible.
package dedupe

import (
	"regexp"
	"strings"

	"internhunt/internal/domain"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases, strips punctuation and collapses whitespace so
// "Data-Science Intern " and "data science intern" share a key.
func Normalize(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = nonWordRe.ReplaceAllString(t, "")
	return whitespaceRe.ReplaceAllString(t, " ")
}

// Key builds the dedup identity for a listing. Listings with an empty
// title and company fall back to the URL so unrelated blanks don't merge.
func Key(l domain.Listing) string {
	title := Normalize(l.Title)
	company := Normalize(l.Company)
	if title == "" && company == "" {
		return "url::" + strings.TrimSpace(l.URL)
	}
	return title + "::" + company
}

// Dedupe keeps exactly one listing per key. Survivors keep their original
// relative order, so running Dedupe on its own output is a no-op.
func Dedupe(listings []domain.ScoredListing) []domain.ScoredListing {
	if len(listings) == 0 {
		return nil
	}

	best := make(map[string]domain.ScoredListing, len(listings))
	for _, sl := range listings {
		k := Key(sl.Listing)
		if cur, ok := best[k]; !ok || sl.Score > cur.Score {
			best[k] = sl
		}
	}

	out := make([]domain.ScoredListing, 0, len(best))
	emitted := make(map[string]bool, len(best))
	for _, sl := range listings {
		k := Key(sl.Listing)
		if emitted[k] {
			continue
		}
		emitted[k] = true
		out = append(out, best[k])
	}

	return out
}
