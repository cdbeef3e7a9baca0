package mock

import (
	"context"

	"github.com/raingarden/plantfill"
)

var _ plantfill.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of plantfill.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ plantfill.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of plantfill.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ plantfill.KeyGenerator = (*KeyGenerator)(nil)

// KeyGenerator is a mock implementation of plantfill.KeyGenerator.
type KeyGenerator struct {
	GenerateFn func(botanicalName string) string
	ReserveFn  func(key string)
}

func (g *KeyGenerator) Generate(botanicalName string) string {
	return g.GenerateFn(botanicalName)
}

func (g *KeyGenerator) Reserve(key string) {
	g.ReserveFn(key)
}
