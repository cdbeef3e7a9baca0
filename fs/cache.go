package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/raingarden/plantfill"
)

// Cache stores fetched pages on disk, one file per URL. File names are the
// lower-hex xxhash64 of the URL, so the cache needs no index.
type Cache struct {
	dir string
}

// NewCache creates a Cache rooted at dir. The directory is created on the
// first write.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Key returns the cache key for a URL.
func Key(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}

// Path returns the file a URL is cached under.
func (c *Cache) Path(url string) string {
	return filepath.Join(c.dir, Key(url)+".html")
}

// Get returns the cached body for url. The boolean is false on a miss.
func (c *Cache) Get(url string) (string, bool, error) {
	data, err := os.ReadFile(c.Path(url))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Put stores body for url, replacing any previous entry atomically.
func (c *Cache) Put(url, body string) error {
	return WriteFileAtomic(c.Path(url), []byte(body), 0644)
}

// Evict removes the entry for url. Evicting a missing entry is not an error.
func (c *Cache) Evict(url string) error {
	err := os.Remove(c.Path(url))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Ensure CachedFetcher implements plantfill.Fetcher at compile time.
var _ plantfill.Fetcher = (*CachedFetcher)(nil)

// CachedFetcher serves pages from a Cache and falls back to the wrapped
// fetcher on a miss. Only successful fetches are cached.
type CachedFetcher struct {
	cache  *Cache
	next   plantfill.Fetcher
	logger *slog.Logger
}

// CachedFetcherOption configures a CachedFetcher.
type CachedFetcherOption func(*CachedFetcher)

// WithLogger sets the logger used to report unreadable or unwritable cache
// entries. Such failures never fail the fetch.
func WithLogger(l *slog.Logger) CachedFetcherOption {
	return func(f *CachedFetcher) {
		f.logger = l
	}
}

// NewCachedFetcher wraps next with cache.
func NewCachedFetcher(cache *Cache, next plantfill.Fetcher, opts ...CachedFetcherOption) *CachedFetcher {
	f := &CachedFetcher{
		cache:  cache,
		next:   next,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the cached page for url, fetching and caching it on a miss.
func (f *CachedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, ok, err := f.cache.Get(url)
	if err != nil {
		f.logger.Warn("cache read failed", "url", url, "error", err)
	}
	if ok {
		return body, nil
	}

	body, err = f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := f.cache.Put(url, body); err != nil {
		f.logger.Warn("cache write failed", "url", url, "error", err)
	}
	return body, nil
}

// Close closes the wrapped fetcher.
func (f *CachedFetcher) Close() error {
	return f.next.Close()
}
