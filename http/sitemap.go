package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/kimmoihanus/geoaudit"
)

// maxSitemapDepth bounds recursion through nested sitemap indexes.
const maxSitemapDepth = 5

// Ensure SitemapDiscoverer implements geoaudit.URLDiscoverer.
var _ geoaudit.URLDiscoverer = (*SitemapDiscoverer)(nil)

// SitemapDiscoverer discovers auditable page URLs from a site's
// robots.txt and sitemap.xml, following nested sitemap indexes.
type SitemapDiscoverer struct {
	client *http.Client
}

// NewSitemapDiscoverer creates a new SitemapDiscoverer with the given
// HTTP client. If client is nil, http.DefaultClient is used.
func NewSitemapDiscoverer(client *http.Client) *SitemapDiscoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapDiscoverer{client: client}
}

// Discover finds page URLs for the site at baseURL. When baseURL has a
// non-root path (e.g. https://example.com/docs/), only URLs under that
// prefix are returned. Returns an empty slice, not nil, when no sitemap
// is found.
func (s *SitemapDiscoverer) Discover(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, geoaudit.Errorf(geoaudit.EINVALID, "invalid base URL: %v", err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	root := *base
	root.Path = ""
	root.RawQuery = ""
	root.Fragment = ""

	sitemaps := s.sitemapsFromRobots(ctx, root.String())
	if len(sitemaps) == 0 {
		sitemaps = []string{
			root.String() + "/sitemap.xml",
			root.String() + "/sitemap_index.xml",
		}
	}

	seen := make(map[string]bool)
	urls := []string{}
	for _, sitemapURL := range sitemaps {
		for _, pageURL := range s.readSitemap(ctx, sitemapURL, 0) {
			u, err := url.Parse(pageURL)
			if err != nil || u.Host != base.Host {
				continue
			}
			if pathPrefix != "" && !strings.HasPrefix(u.Path, pathPrefix) {
				continue
			}
			if seen[pageURL] {
				continue
			}
			seen[pageURL] = true
			urls = append(urls, pageURL)
		}
	}

	return urls, nil
}

// sitemapsFromRobots returns the sitemap URLs declared in robots.txt.
func (s *SitemapDiscoverer) sitemapsFromRobots(ctx context.Context, siteRoot string) []string {
	body, err := s.get(ctx, siteRoot+"/robots.txt")
	if err != nil {
		return nil
	}

	var sitemaps []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < len("sitemap:") || !strings.EqualFold(line[:len("sitemap:")], "sitemap:") {
			continue
		}
		if sitemapURL := strings.TrimSpace(line[len("sitemap:"):]); sitemapURL != "" {
			sitemaps = append(sitemaps, sitemapURL)
		}
	}
	return sitemaps
}

// readSitemap returns the page URLs in a sitemap, recursing through
// sitemap indexes up to maxSitemapDepth.
func (s *SitemapDiscoverer) readSitemap(ctx context.Context, sitemapURL string, depth int) []string {
	if depth >= maxSitemapDepth {
		return nil
	}

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}

	var urls []string
	switch root.Tag {
	case "sitemapindex":
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			urls = append(urls, s.readSitemap(ctx, strings.TrimSpace(loc.Text()), depth+1)...)
		}
	case "urlset":
		for _, u := range root.SelectElements("url") {
			loc := u.SelectElement("loc")
			if loc == nil {
				continue
			}
			if pageURL := strings.TrimSpace(loc.Text()); pageURL != "" {
				urls = append(urls, pageURL)
			}
		}
	}
	return urls
}

func (s *SitemapDiscoverer) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", geoaudit.Errorf(geoaudit.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
