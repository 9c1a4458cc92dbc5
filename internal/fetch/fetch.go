// Package fetch runs every configured source concurrently and aggregates
// whatever they produce. One source failing (or panicking) never touches
// another source's work; the worst case for a run is an empty aggregate
// with every report marked failed.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/ratelimit"
	"internhunt/internal/retry"
	"internhunt/internal/sources"
)

type Engine struct {
	Sources []sources.Source
	Limiter *ratelimit.Limiter
	Retry   retry.Config

	// Budget bounds the whole run. Zero means the caller's context rules.
	Budget time.Duration

	Log *zap.Logger
}

// Result is the aggregate of one run. Listings arrive in source-completion
// order; Reports follow the configured source order.
type Result struct {
	RunID    string
	Listings []domain.Listing
	Reports  []domain.FetchReport
}

type sourceResult struct {
	report   domain.FetchReport
	listings []domain.Listing
}

// FetchAll drives all sources in parallel and merges completed results on
// this goroutine, so no listing collection is ever shared across tasks.
func (e *Engine) FetchAll(ctx context.Context, prefs domain.Preferences) Result {
	runID := uuid.NewString()

	if e.Budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Budget)
		defer cancel()
	}

	e.Log.Info("starting fetch run",
		zap.String("run_id", runID),
		zap.Int("sources", len(e.Sources)))

	results := make(chan sourceResult, len(e.Sources))
	for _, src := range e.Sources {
		go func(src sources.Source) {
			results <- e.fetchSource(ctx, src, prefs)
		}(src)
	}

	byName := make(map[string]domain.FetchReport, len(e.Sources))
	var listings []domain.Listing
	for range e.Sources {
		r := <-results
		listings = append(listings, r.listings...)
		byName[r.report.Source] = r.report

		if r.report.Success {
			e.Log.Info("source completed",
				zap.String("run_id", runID),
				zap.String("source", r.report.Source),
				zap.Int("listings", r.report.Listings),
				zap.Int("pages_ok", r.report.PagesSucceeded))
		} else {
			e.Log.Warn("source failed",
				zap.String("run_id", runID),
				zap.String("source", r.report.Source),
				zap.String("error", r.report.Err))
		}
	}

	reports := make([]domain.FetchReport, 0, len(e.Sources))
	for _, src := range e.Sources {
		reports = append(reports, byName[src.Name()])
	}

	e.Log.Info("fetch run complete",
		zap.String("run_id", runID),
		zap.Int("total_listings", len(listings)))

	return Result{RunID: runID, Listings: listings, Reports: reports}
}

// fetchSource walks one source's pages in order. A failed page (after
// retries) does not stop later pages; an empty page means the catalog ran
// out and ends the walk.
func (e *Engine) fetchSource(ctx context.Context, src sources.Source, prefs domain.Preferences) (out sourceResult) {
	rep := domain.FetchReport{Source: src.Name()}
	var collected []domain.Listing

	defer func() {
		if r := recover(); r != nil {
			rep.Success = false
			rep.Err = fmt.Sprintf("panic: %v", r)
			rep.Listings = len(collected)
			out = sourceResult{report: rep, listings: collected}
		}
	}()

	var lastErr error
	for page := 1; page <= src.Pages(); page++ {
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		rep.PagesAttempted++
		listings, err := retry.Do(ctx, e.Retry, func(ctx context.Context) ([]domain.Listing, error) {
			// every attempt, retries included, passes the origin gate
			if err := e.Limiter.Acquire(ctx, src.Origin()); err != nil {
				return nil, err
			}
			return src.FetchPage(ctx, page, prefs)
		})
		if err != nil {
			lastErr = err
			e.Log.Warn("page fetch failed",
				zap.String("source", src.Name()),
				zap.Int("page", page),
				zap.Error(err))
			continue
		}

		rep.PagesSucceeded++
		if len(listings) == 0 {
			break
		}
		collected = append(collected, listings...)
	}

	rep.Listings = len(collected)
	rep.Success = rep.PagesSucceeded > 0
	if lastErr != nil {
		rep.Err = lastErr.Error()
	}

	return sourceResult{report: rep, listings: collected}
}
