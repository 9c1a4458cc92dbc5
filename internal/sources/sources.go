// Package sources defines the contract every internship source implements.
// Concrete sources live in subpackages; the orchestrator in internal/fetch
// only ever sees this interface, so adding a source never touches it.
package sources

import (
	"context"

	"internhunt/internal/domain"
)

type Source interface {
	// Name is the stable identifier stamped on every produced listing.
	Name() string

	// Origin is the rate-limit key; sources sharing a domain share it.
	Origin() string

	// Pages is how many page indices (1-based) this source attempts per run.
	Pages() int

	// FetchPage retrieves one page worth of raw listings. One call is one
	// logical attempt; retrying is the caller's concern. Errors carry the
	// internal/errors taxonomy so the retry layer can classify them.
	FetchPage(ctx context.Context, page int, prefs domain.Preferences) ([]domain.Listing, error)
}
