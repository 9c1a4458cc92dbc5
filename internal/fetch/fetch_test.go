package fetch

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/errors"
	"internhunt/internal/ratelimit"
	"internhunt/internal/retry"
)

// fakeSource scripts FetchPage behavior per page number.
type fakeSource struct {
	name  string
	pages int
	fetch func(page int, call int) ([]domain.Listing, error)

	calls int
}

func (f *fakeSource) Name() string   { return f.name }
func (f *fakeSource) Origin() string { return f.name + ".example" }
func (f *fakeSource) Pages() int     { return f.pages }

func (f *fakeSource) FetchPage(_ context.Context, page int, _ domain.Preferences) ([]domain.Listing, error) {
	f.calls++
	return f.fetch(page, f.calls)
}

func listingsNamed(names ...string) []domain.Listing {
	out := make([]domain.Listing, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Listing{Title: n})
	}
	return out
}

func newEngine(srcs ...*fakeSource) *Engine {
	e := &Engine{
		Limiter: ratelimit.New(time.Millisecond),
		Retry:   retry.Config{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
		Log:     zap.NewNop(),
	}
	for _, s := range srcs {
		e.Sources = append(e.Sources, s)
	}
	return e
}

func TestFetchAllAggregatesAllSources(t *testing.T) {
	a := &fakeSource{name: "alpha", pages: 1, fetch: func(int, int) ([]domain.Listing, error) {
		return listingsNamed("a1", "a2"), nil
	}}
	b := &fakeSource{name: "beta", pages: 1, fetch: func(int, int) ([]domain.Listing, error) {
		return listingsNamed("b1"), nil
	}}

	res := newEngine(a, b).FetchAll(context.Background(), domain.Preferences{})

	if res.RunID == "" {
		t.Error("expected a run ID")
	}
	if len(res.Listings) != 3 {
		t.Errorf("expected 3 listings, got %d", len(res.Listings))
	}
	if len(res.Reports) != 2 || res.Reports[0].Source != "alpha" || res.Reports[1].Source != "beta" {
		t.Errorf("reports must follow configured source order, got %+v", res.Reports)
	}
}

func TestFetchAllIsolatesFailingSource(t *testing.T) {
	bad := &fakeSource{name: "bad", pages: 2, fetch: func(int, int) ([]domain.Listing, error) {
		return nil, errors.Permanent("blocked", nil)
	}}
	good := &fakeSource{name: "good", pages: 1, fetch: func(int, int) ([]domain.Listing, error) {
		return listingsNamed("g1"), nil
	}}

	res := newEngine(bad, good).FetchAll(context.Background(), domain.Preferences{})

	if len(res.Listings) != 1 || res.Listings[0].Title != "g1" {
		t.Errorf("healthy source's listings must survive, got %+v", res.Listings)
	}

	badRep := res.Reports[0]
	if badRep.Success {
		t.Error("expected the failing source to report failure")
	}
	if badRep.Err == "" || !strings.Contains(badRep.Err, "blocked") {
		t.Errorf("expected the last error in the report, got %q", badRep.Err)
	}
	if badRep.PagesAttempted != 2 || badRep.PagesSucceeded != 0 {
		t.Errorf("every page should be attempted despite failures: %+v", badRep)
	}

	if !res.Reports[1].Success {
		t.Error("healthy source must report success")
	}
}

func TestFetchAllRecoversFromPanic(t *testing.T) {
	panicky := &fakeSource{name: "panicky", pages: 1, fetch: func(int, int) ([]domain.Listing, error) {
		panic("nil selector")
	}}
	good := &fakeSource{name: "good", pages: 1, fetch: func(int, int) ([]domain.Listing, error) {
		return listingsNamed("g1"), nil
	}}

	res := newEngine(panicky, good).FetchAll(context.Background(), domain.Preferences{})

	if len(res.Listings) != 1 {
		t.Errorf("panic in one source must not lose another's listings, got %d", len(res.Listings))
	}
	rep := res.Reports[0]
	if rep.Success || !strings.Contains(rep.Err, "panic") {
		t.Errorf("expected a failed report mentioning the panic, got %+v", rep)
	}
}

func TestFetchSourceRetriesTransientPage(t *testing.T) {
	flaky := &fakeSource{name: "flaky", pages: 1, fetch: func(_ int, call int) ([]domain.Listing, error) {
		if call == 1 {
			return nil, errors.Transient("reset", nil)
		}
		return listingsNamed("f1"), nil
	}}

	res := newEngine(flaky).FetchAll(context.Background(), domain.Preferences{})

	if len(res.Listings) != 1 {
		t.Fatalf("expected the retried page to succeed, got %d listings", len(res.Listings))
	}
	if flaky.calls != 2 {
		t.Errorf("expected 2 attempts, got %d", flaky.calls)
	}
	if !res.Reports[0].Success {
		t.Errorf("report should show success after retry: %+v", res.Reports[0])
	}
}

func TestFetchSourceStopsOnEmptyPage(t *testing.T) {
	src := &fakeSource{name: "short", pages: 5, fetch: func(page int, _ int) ([]domain.Listing, error) {
		if page == 1 {
			return listingsNamed("s1"), nil
		}
		return nil, nil
	}}

	res := newEngine(src).FetchAll(context.Background(), domain.Preferences{})

	rep := res.Reports[0]
	if rep.PagesAttempted != 2 {
		t.Errorf("an empty page ends the walk, expected 2 attempts, got %d", rep.PagesAttempted)
	}
	if !rep.Success || rep.Listings != 1 {
		t.Errorf("unexpected report: %+v", rep)
	}
}

func TestFetchSourcePageFailureDoesNotStopLaterPages(t *testing.T) {
	src := &fakeSource{name: "patchy", pages: 3, fetch: func(page int, _ int) ([]domain.Listing, error) {
		if page == 2 {
			return nil, errors.Permanent("broken page", nil)
		}
		return listingsNamed("p"), nil
	}}

	res := newEngine(src).FetchAll(context.Background(), domain.Preferences{})

	rep := res.Reports[0]
	if rep.PagesAttempted != 3 || rep.PagesSucceeded != 2 {
		t.Errorf("expected pages 1 and 3 to succeed around the failure: %+v", rep)
	}
	if !rep.Success {
		t.Error("a source with any good page reports success")
	}
	if rep.Err == "" {
		t.Error("the page failure still lands in the report")
	}
}

func TestFetchAllHonorsBudget(t *testing.T) {
	slow := &fakeSource{name: "slow", pages: 3}
	slow.fetch = func(int, int) ([]domain.Listing, error) {
		time.Sleep(50 * time.Millisecond)
		return listingsNamed("x"), nil
	}

	e := newEngine(slow)
	e.Budget = 20 * time.Millisecond

	start := time.Now()
	res := e.FetchAll(context.Background(), domain.Preferences{})
	if time.Since(start) > time.Second {
		t.Error("budget did not bound the run")
	}
	if res.Reports[0].PagesAttempted >= 3 {
		// page 1 starts before the deadline; later pages must not
		t.Errorf("expected the budget to cut pagination short: %+v", res.Reports[0])
	}
}
