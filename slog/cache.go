package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kspcapcom/kosdex"
)

// Ensure LoggingCache implements kosdex.PageCache.
var _ kosdex.PageCache = (*LoggingCache)(nil)

// LoggingCache wraps a PageCache with debug logging.
type LoggingCache struct {
	next   kosdex.PageCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next kosdex.PageCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs a hit or miss.
func (c *LoggingCache) Get(ctx context.Context, url string) (page *kosdex.CachedPage, err error) {
	defer func(begin time.Time) {
		op := "hit"
		if err != nil {
			op = "miss"
		}
		c.logger.Info("cache",
			"op", op,
			"url", url,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Get(ctx, url)
}

// Put delegates to the wrapped cache and logs the write.
func (c *LoggingCache) Put(ctx context.Context, page *kosdex.CachedPage) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache",
			"op", "put",
			"url", page.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Put(ctx, page)
}

// Purge delegates to the wrapped cache and logs the removal count.
func (c *LoggingCache) Purge(ctx context.Context, olderThan time.Duration) (removed int, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache",
			"op", "purge",
			"older_than", olderThan,
			"removed", removed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Purge(ctx, olderThan)
}

// Stats delegates to the wrapped cache.
func (c *LoggingCache) Stats(ctx context.Context) (*kosdex.CacheStats, error) {
	return c.next.Stats(ctx)
}
