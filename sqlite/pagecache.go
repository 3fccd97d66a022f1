package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/kspcapcom/kosdex"
)

var _ kosdex.PageCache = (*PageCache)(nil)

// PageCache implements kosdex.PageCache using SQLite. Pages are keyed
// by URL; repeated builds hit the cache instead of re-downloading
// documentation that has not aged out.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Get returns the cached page for the URL.
// Returns ENOTFOUND if the URL has never been cached.
func (c *PageCache) Get(ctx context.Context, url string) (*kosdex.CachedPage, error) {
	var page kosdex.CachedPage
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT url, html, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.URL, &page.HTML, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, kosdex.Errorf(kosdex.ENOTFOUND, "page not cached: %s", url)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// Put inserts or replaces the cached page for page.URL. The content
// hash is computed here; FetchedAt defaults to now when unset.
func (c *PageCache) Put(ctx context.Context, page *kosdex.CachedPage) error {
	if page.URL == "" {
		return kosdex.Errorf(kosdex.EINVALID, "page URL required")
	}

	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}
	page.ContentHash = hashContent(page.HTML)

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), page.URL, page.HTML, page.ContentHash,
		page.FetchedAt.UTC().Format(time.RFC3339))

	return err
}

// Purge removes cached pages fetched more than olderThan ago and
// returns the number removed. A zero olderThan removes everything.
func (c *PageCache) Purge(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339)

	result, err := c.db.ExecContext(ctx, "DELETE FROM pages WHERE fetched_at <= ?", cutoff)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}

// Stats reports cache size and age.
func (c *PageCache) Stats(ctx context.Context) (*kosdex.CacheStats, error) {
	var stats kosdex.CacheStats
	var oldest, newest sql.NullString

	err := c.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(LENGTH(html)), 0), MIN(fetched_at), MAX(fetched_at)
		FROM pages
	`).Scan(&stats.Pages, &stats.Bytes, &oldest, &newest)
	if err != nil {
		return nil, err
	}

	if oldest.Valid {
		stats.Oldest, err = parseRFC3339(oldest.String, "oldest fetched_at")
		if err != nil {
			return nil, err
		}
	}
	if newest.Valid {
		stats.Newest, err = parseRFC3339(newest.String, "newest fetched_at")
		if err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
