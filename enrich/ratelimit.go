package enrich

import (
	"context"
	"strings"
	"sync"

	"github.com/raingarden/plantfill"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond paces requests to each source host.
const DefaultRequestsPerSecond = 1.0

var _ plantfill.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per host with a token bucket of burst 1, so
// parallel enrichment never bursts against a single site while different
// sites proceed independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host. A non-positive rps disables pacing.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to domain is allowed.
// Host names are compared case-insensitively.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	domain = strings.ToLower(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
