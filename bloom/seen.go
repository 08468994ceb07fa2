// Package bloom provides probabilistic URL deduplication for site
// batch audits, where sitemaps and nested sitemap indexes frequently
// repeat URLs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenURLs tracks which URLs have already been queued for auditing.
// False positives are possible (a never-seen URL may be skipped); false
// negatives are not, so no URL is ever audited twice.
type SeenURLs struct {
	filter *bloom.BloomFilter
}

// NewSeenURLs creates a tracker sized for n expected URLs with the
// given false positive rate.
func NewSeenURLs(n uint, fpRate float64) *SeenURLs {
	return &SeenURLs{filter: bloom.NewWithEstimates(n, fpRate)}
}

// MarkSeen records the URL and reports whether it was already present.
func (s *SeenURLs) MarkSeen(url string) bool {
	return s.filter.TestOrAddString(url)
}

// Count returns the approximate number of distinct URLs recorded.
func (s *SeenURLs) Count() uint {
	return uint(s.filter.ApproximatedSize())
}
