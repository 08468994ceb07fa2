// Package http provides the HTTP transport for geoaudit: page fetching
// with an optional unblocker-proxy fallback, sitemap-based URL
// discovery, per-client rate limiting, and the public audit API server.
package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kimmoihanus/geoaudit"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// defaultUserAgent identifies the audit bot to fetched sites.
const defaultUserAgent = "Mozilla/5.0 (compatible; GEOAuditBot/1.0)"

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Ensure Fetcher implements geoaudit.Fetcher at compile time.
var _ geoaudit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML over plain HTTP. When a proxy is
// configured, a failed direct fetch is retried once through it; sites
// that block bot traffic often respond through an unblocker proxy.
type Fetcher struct {
	client      *http.Client
	proxyClient *http.Client
	timeout     time.Duration
	userAgent   string
	proxyURL    *url.URL
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with fetches.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithProxy enables the fallback fetch path through the given proxy.
// The proxy URL carries its credentials. Certificate verification is
// skipped on the proxy hop: unblocker proxies intercept TLS by design.
func WithProxy(proxyURL *url.URL) FetcherOption {
	return func(f *Fetcher) {
		f.proxyURL = proxyURL
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{Timeout: f.timeout}
	if f.proxyURL != nil {
		f.proxyClient = &http.Client{
			Timeout: f.timeout,
			Transport: &http.Transport{
				Proxy:           http.ProxyURL(f.proxyURL),
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, falling back to
// the proxy when configured.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	html, err := f.fetchWith(ctx, f.client, pageURL)
	if err == nil {
		return html, nil
	}
	if f.proxyClient == nil {
		return "", err
	}

	html, proxyErr := f.fetchWith(ctx, f.proxyClient, pageURL)
	if proxyErr != nil {
		return "", geoaudit.Errorf(geoaudit.EUNAVAILABLE, "failed to fetch page: direct: %v, proxy: %v", err, proxyErr)
	}
	return html, nil
}

func (f *Fetcher) fetchWith(ctx context.Context, client *http.Client, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
