// Package http provides an HTTP-based implementation of plantfill.Fetcher
// for the static pages published by plant information sites.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/raingarden/plantfill"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Browser User-Agent strings. Some nursery sites reject unknown clients, so
// requests present as a desktop browser; a 401 or 403 is retried once with
// the alternate.
const (
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	AlternateUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15"
)

// Ensure Fetcher implements plantfill.Fetcher at compile time.
var _ plantfill.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	userAgent  string
	alternate  string
	limiter    plantfill.DomainLimiter
	maxBodyLen int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgents sets the primary User-Agent and the alternate used for the
// single retry after a 401 or 403. Empty values keep the defaults.
func WithUserAgents(primary, alternate string) Option {
	return func(f *Fetcher) {
		if primary != "" {
			f.userAgent = primary
		}
		if alternate != "" {
			f.alternate = alternate
		}
	}
}

// WithLimiter paces every request, retries included, per host.
func WithLimiter(l plantfill.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithMaxBodySize caps how many bytes of a response body are read.
// Defaults to 8 MiB.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyLen = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:    DefaultFetchTimeout,
		userAgent:  DefaultUserAgent,
		alternate:  AlternateUserAgent,
		maxBodyLen: 8 << 20,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// A 401 or 403 response is retried once with the alternate User-Agent; any
// other non-200 status is an error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", plantfill.Errorf(plantfill.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	status, body, err := f.get(ctx, u, f.userAgent)
	if err != nil {
		return "", err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		status, body, err = f.get(ctx, u, f.alternate)
		if err != nil {
			return "", err
		}
	}

	if status != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", status, rawURL)
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, u *url.URL, userAgent string) (int, string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return 0, "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return resp.StatusCode, "", nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyLen))
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
