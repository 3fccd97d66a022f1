package kosdex

import (
	"context"
	"time"
)

// CachedPage is a raw HTML document held in the page cache.
type CachedPage struct {
	URL       string
	HTML      string
	FetchedAt time.Time

	// ContentHash fingerprints the HTML. It is computed by the cache on
	// save; callers never set it.
	ContentHash string
}

// CacheStats summarizes the contents of a page cache.
type CacheStats struct {
	Pages  int
	Bytes  int64
	Oldest time.Time
	Newest time.Time
}

// PageCache stores fetched pages keyed by URL so that repeated builds
// do not re-download unchanged documentation.
type PageCache interface {
	// Get returns the cached page for the URL.
	// Returns ENOTFOUND if the URL has never been cached.
	Get(ctx context.Context, url string) (*CachedPage, error)

	// Put inserts or replaces the cached page for page.URL.
	Put(ctx context.Context, page *CachedPage) error

	// Purge removes cached pages fetched more than olderThan ago and
	// returns the number removed. A zero olderThan removes everything.
	Purge(ctx context.Context, olderThan time.Duration) (int, error)

	// Stats reports cache size and age.
	Stats(ctx context.Context) (*CacheStats, error)
}
