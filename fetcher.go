package geoaudit

import "context"

// Fetcher retrieves the raw HTML of a page. The audit core consumes
// HTML that has already been fetched; implementations hide direct-vs-
// proxy selection and transport details.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// URLDiscoverer discovers auditable page URLs for a site, typically
// from its sitemap.
type URLDiscoverer interface {
	Discover(ctx context.Context, baseURL string) ([]string, error)
}

// DomainLimiter paces outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed, or the
	// context is canceled.
	Wait(ctx context.Context, domain string) error
}
