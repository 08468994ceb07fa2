package main

import (
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/bloom"
	geohttp "github.com/kimmoihanus/geoaudit/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	urls, err := deps.Discoverer.Discover(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", geoaudit.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs discovered. Is there a sitemap?")
		return nil
	}

	// Sitemap indexes can repeat URLs across child sitemaps.
	seen := bloom.NewSeenURLs(uint(len(urls)), 0.01)
	var deduped []string
	for _, u := range urls {
		if seen.MarkSeen(u) {
			continue
		}
		deduped = append(deduped, u)
	}
	if c.Limit > 0 && len(deduped) > c.Limit {
		deduped = deduped[:c.Limit]
	}

	fmt.Fprintf(deps.Stdout, "Auditing %d pages from %s\n", len(deduped), c.URL)

	limiter := deps.Limiter
	if limiter == nil {
		limiter = geohttp.NewDomainRateLimiter(c.RPS)
	}

	type siteResult struct {
		url    string
		result *geoaudit.GeneralAudit
	}

	var mu sync.Mutex
	var results []siteResult
	failed := 0

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for _, pageURL := range deduped {
		g.Go(func() error {
			if err := limiter.Wait(ctx, domainOf(pageURL)); err != nil {
				return err
			}

			html, err := deps.Fetcher.Fetch(ctx, pageURL)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", pageURL, geoaudit.ErrorMessage(err))
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}

			result := deps.Auditor.General(ctx, pageURL, html)

			if c.Save {
				record := &geoaudit.AuditRecord{
					URL:          pageURL,
					OverallScore: result.OverallScore,
					Grade:        result.Grade,
					Result:       result,
				}
				if err := deps.Audits.CreateAuditRecord(ctx, record); err != nil {
					fmt.Fprintf(deps.Stderr, "  save %s: %s\n", pageURL, geoaudit.ErrorMessage(err))
				}
			}

			mu.Lock()
			results = append(results, siteResult{url: pageURL, result: result})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Worst pages first so problems surface at the top.
	sort.Slice(results, func(i, j int) bool {
		if results[i].result.OverallScore != results[j].result.OverallScore {
			return results[i].result.OverallScore < results[j].result.OverallScore
		}
		return results[i].url < results[j].url
	})

	total := 0
	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%3d  %s  %s\n", r.result.OverallScore, r.result.Grade, r.url)
		total += r.result.OverallScore
	}

	if len(results) > 0 {
		fmt.Fprintf(deps.Stdout, "\nAudited %d pages, average score %d", len(results), total/len(results))
		if failed > 0 {
			fmt.Fprintf(deps.Stdout, " (%d failed)", failed)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
