package domain

// FetchReport summarizes one source's outcome for a run. The orchestrator
// produces one per configured source; the CLI prints them and nothing in
// the core interprets them further.
type FetchReport struct {
	Source         string
	PagesAttempted int
	PagesSucceeded int
	Listings       int
	Success        bool
	Err            string
}
