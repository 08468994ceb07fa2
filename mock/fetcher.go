package mock

import (
	"context"

	"github.com/kimmoihanus/geoaudit"
)

var _ geoaudit.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of geoaudit.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ geoaudit.URLDiscoverer = (*URLDiscoverer)(nil)

// URLDiscoverer is a mock implementation of geoaudit.URLDiscoverer.
type URLDiscoverer struct {
	DiscoverFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (d *URLDiscoverer) Discover(ctx context.Context, baseURL string) ([]string, error) {
	return d.DiscoverFn(ctx, baseURL)
}

var _ geoaudit.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of geoaudit.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
