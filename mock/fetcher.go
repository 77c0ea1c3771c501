// Package mock provides function-field mock implementations of the
// domain interfaces for testing.
package mock

import (
	"context"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
)

var _ tagesschau.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of tagesschau.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ tagesschau.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of tagesschau.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
