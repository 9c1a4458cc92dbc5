// Package scoring turns raw listings into scored ones, or rejects them.
// Scoring is a pure function of (listing, preferences, fixed tables): no
// clock, no network, no state between calls.
package scoring

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/concurrency"
	"internhunt/internal/domain"
)

const (
	keywordWeight  = 10.0
	skillWeight    = 3.0
	remoteWeight   = 5.0
	locationWeight = 5.0

	stipendCap     = 3.0
	stipendDivisor = 10000.0
)

type Engine struct {
	prefs    domain.Preferences
	minScore float64

	// wanted holds each source keyword's expansion set; one set matching
	// means that keyword scored, no matter how many of its forms appear.
	wanted [][]string

	// reject is the flattened expansion of every reject keyword.
	reject []string

	log *zap.Logger
}

func NewEngine(prefs domain.Preferences, minScore float64, log *zap.Logger) *Engine {
	e := &Engine{
		prefs:    prefs,
		minScore: minScore,
		log:      log,
	}

	for _, kw := range prefs.WantedKeywords {
		if set := expand(kw); len(set) > 0 {
			e.wanted = append(e.wanted, set)
		}
	}
	for _, kw := range prefs.RejectKeywords {
		e.reject = append(e.reject, expand(kw)...)
	}

	log.Debug("scoring engine ready",
		zap.Int("wanted_keywords", len(e.wanted)),
		zap.Int("reject_terms", len(e.reject)))

	return e
}

// Score evaluates one listing. ok=false means rejected: a reject-keyword
// hit, a too-old posting, zero wanted-keyword matches, or a total under
// the minimum threshold. No score can rescue a rejected listing.
func (e *Engine) Score(l domain.Listing) (domain.ScoredListing, bool) {
	searchable := l.Title + " " + l.Description

	for _, term := range e.reject {
		if ContainsWord(searchable, term) {
			e.log.Debug("listing rejected by keyword",
				zap.String("title", l.Title),
				zap.String("keyword", term))
			return domain.ScoredListing{}, false
		}
	}

	if e.prefs.MaxPostAgeDays > 0 {
		if days, ok := ParsePostedAge(l.PostedText); ok && days > e.prefs.MaxPostAgeDays {
			e.log.Debug("listing rejected by age",
				zap.String("title", l.Title),
				zap.Int("age_days", days))
			return domain.ScoredListing{}, false
		}
	}

	var b domain.ScoreBreakdown

	for _, set := range e.wanted {
		for _, term := range set {
			if ContainsWord(searchable, term) {
				b.Keyword += keywordWeight
				break
			}
		}
	}

	// topical relevance is non-negotiable: when the user named keywords,
	// a listing matching none of them is out regardless of other points
	if len(e.wanted) > 0 && b.Keyword == 0 {
		return domain.ScoredListing{}, false
	}

	for _, skill := range e.prefs.ResumeSkills {
		if ContainsWord(searchable, skill) {
			b.Skill += skillWeight
		}
	}

	b.Stipend = e.stipendBonus(l.StipendText)

	if e.prefs.Remote == domain.RemoteYes && matchesRemote(l.Location+" "+l.Description) {
		b.Remote = remoteWeight
	}

	loc := strings.ToLower(l.Location)
	for _, preferred := range e.prefs.PreferredLocations {
		if preferred != "" && strings.Contains(loc, strings.ToLower(preferred)) {
			b.Location = locationWeight
			break
		}
	}

	total := b.Total()
	if total < e.minScore {
		return domain.ScoredListing{}, false
	}

	return domain.ScoredListing{Listing: l, Score: total, Breakdown: b}, true
}

// ScoreAll scores listings preserving input order; rejected ones are
// dropped. Ordering by score is the ranker's job, and keeping first-seen
// order here is what makes dedup tie-breaks deterministic.
func (e *Engine) ScoreAll(listings []domain.Listing) []domain.ScoredListing {
	out := make([]domain.ScoredListing, 0, len(listings))
	rejected := 0
	for _, l := range listings {
		if scored, ok := e.Score(l); ok {
			out = append(out, scored)
		} else {
			rejected++
		}
	}

	e.log.Info("scoring complete",
		zap.Int("scored", len(out)),
		zap.Int("rejected", rejected))

	return out
}

// ScoreAllParallel is ScoreAll over a worker pool. Scoring a listing is
// pure, so only the collection step needs care: results come back indexed
// by input position and are filtered in that order.
func (e *Engine) ScoreAllParallel(ctx context.Context, listings []domain.Listing, workers int) []domain.ScoredListing {
	type verdict struct {
		scored domain.ScoredListing
		keep   bool
	}

	verdicts, _ := concurrency.Map(ctx, listings, concurrency.Options{MaxWorkers: workers},
		func(_ context.Context, _ int, l domain.Listing) (verdict, error) {
			scored, ok := e.Score(l)
			return verdict{scored: scored, keep: ok}, nil
		})

	out := make([]domain.ScoredListing, 0, len(verdicts))
	for _, v := range verdicts {
		if v.keep {
			out = append(out, v.scored)
		}
	}

	e.log.Info("scoring complete",
		zap.Int("scored", len(out)),
		zap.Int("rejected", len(listings)-len(out)))

	return out
}

// stipendBonus is a bounded tie-breaker, never a filter: amounts at or
// under the user's minimum earn nothing, everything above scales up to a
// small cap.
func (e *Engine) stipendBonus(text string) float64 {
	amount, ok := ParseStipend(text)
	if !ok || amount <= e.prefs.MinStipend {
		return 0
	}
	bonus := float64(amount-e.prefs.MinStipend) / stipendDivisor
	if bonus > stipendCap {
		return stipendCap
	}
	return bonus
}
