package plantfill

import "context"

// Fetcher retrieves the static HTML of a source page.
// Any error means the source is unavailable for this run.
type Fetcher interface {
	// Fetch returns the HTML at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// KeyGenerator derives short, run-unique record keys from botanical names.
type KeyGenerator interface {
	// Generate returns an unused key for the name and marks it used.
	Generate(botanicalName string) string

	// Reserve marks an existing key as used so Generate never returns it.
	Reserve(key string)
}
