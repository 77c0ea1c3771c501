package tagesschau

import "context"

// Fetcher retrieves raw HTML from URLs. Retrieval failures (network
// errors, non-2xx responses) are reported to, not handled by, the parsing
// core; retry and backoff policy belongs to implementations or callers.
type Fetcher interface {
	// Fetch retrieves the page at url. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for fetch loops.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
