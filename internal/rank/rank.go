// Package rank orders deduplicated listings for presentation: best match
// first, bounded to the user's requested maximum.
package rank

import (
	"sort"

	"internhunt/internal/domain"
	"internhunt/internal/scoring"
)

// Rank stable-sorts by score descending, breaking ties by parsed stipend
// descending and finally by input position, then truncates to maxResults.
// Index 0 is the single best match; callers may rely on that.
func Rank(listings []domain.ScoredListing, maxResults int) []domain.ScoredListing {
	out := make([]domain.ScoredListing, len(listings))
	copy(out, listings)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		si, _ := scoring.ParseStipend(out[i].Listing.StipendText)
		sj, _ := scoring.ParseStipend(out[j].Listing.StipendText)
		if si != sj {
			return si > sj
		}
		// stable sort keeps input order for full ties
		return false
	})

	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
