package mock

import (
	"context"
	"time"

	"github.com/kspcapcom/kosdex"
)

var _ kosdex.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of kosdex.PageCache.
type PageCache struct {
	GetFn   func(ctx context.Context, url string) (*kosdex.CachedPage, error)
	PutFn   func(ctx context.Context, page *kosdex.CachedPage) error
	PurgeFn func(ctx context.Context, olderThan time.Duration) (int, error)
	StatsFn func(ctx context.Context) (*kosdex.CacheStats, error)
}

func (c *PageCache) Get(ctx context.Context, url string) (*kosdex.CachedPage, error) {
	return c.GetFn(ctx, url)
}

func (c *PageCache) Put(ctx context.Context, page *kosdex.CachedPage) error {
	return c.PutFn(ctx, page)
}

func (c *PageCache) Purge(ctx context.Context, olderThan time.Duration) (int, error) {
	return c.PurgeFn(ctx, olderThan)
}

func (c *PageCache) Stats(ctx context.Context) (*kosdex.CacheStats, error) {
	return c.StatsFn(ctx)
}
