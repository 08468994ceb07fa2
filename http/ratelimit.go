package http

import (
	"context"
	"math"
	"sync"

	"github.com/kimmoihanus/geoaudit"
	"golang.org/x/time/rate"
)

// Per-minute request limits for the public API, by endpoint and tier.
const (
	AnonAuditPerMinute  = 5
	AuthAuditPerMinute  = 30
	AnonSchemaPerMinute = 3
	AuthSchemaPerMinute = 20
)

// ClientLimiter rate-limits API clients using per-key token buckets.
// Keys combine client IP, endpoint, and auth tier so an authenticated
// caller's quota is independent of anonymous traffic from the same IP.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewClientLimiter creates a new ClientLimiter.
func NewClientLimiter() *ClientLimiter {
	return &ClientLimiter{limiters: make(map[string]*rate.Limiter)}
}

// Allow reports whether a request under the key may proceed given its
// per-minute limit. When denied, retryAfter is the whole number of
// seconds until the next request would be allowed.
func (l *ClientLimiter) Allow(key string, perMinute int) (allowed bool, retryAfter int) {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(perMinute)/60, perMinute)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	r := limiter.Reserve()
	delay := r.Delay()
	if delay == 0 {
		return true, 0
	}
	r.Cancel()
	return false, int(math.Ceil(delay.Seconds()))
}

// Ensure DomainRateLimiter implements geoaudit.DomainLimiter.
var _ geoaudit.DomainLimiter = (*DomainRateLimiter)(nil)

// DomainRateLimiter paces outbound fetches per domain using token
// buckets, so a site batch audit doesn't hammer the target host while
// still allowing concurrent audits of different hosts.
type DomainRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainRateLimiter creates a limiter allowing rps requests per
// second per domain, with no bursting.
func NewDomainRateLimiter(rps float64) *DomainRateLimiter {
	return &DomainRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain, or
// the context is canceled.
func (d *DomainRateLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
