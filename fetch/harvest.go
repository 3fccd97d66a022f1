package fetch

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kspcapcom/kosdex"
)

// Harvester defaults.
const (
	// DefaultMaxAge is how long a cached page is served without
	// re-fetching. The kOS docs change on game releases, not daily.
	DefaultMaxAge = 24 * time.Hour

	// DefaultConcurrency is the number of pages fetched in parallel.
	DefaultConcurrency = 4
)

var _ kosdex.Harvester = (*Harvester)(nil)

// Harvester retrieves documentation pages in bulk. Pages younger than
// MaxAge are served from the cache; everything else is fetched with
// per-domain rate limiting and retry, then cached.
type Harvester struct {
	Fetcher kosdex.Fetcher
	Cache   kosdex.PageCache
	Limiter kosdex.DomainLimiter

	// MaxAge is the cache freshness window. Zero means DefaultMaxAge.
	MaxAge time.Duration

	// NoCache bypasses cache reads; fetched pages are still stored.
	NoCache bool

	// Concurrency is the number of parallel fetches. Zero means
	// DefaultConcurrency.
	Concurrency int

	// RetryDelays overrides the fetch retry backoff. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration
}

// HarvestAll retrieves every page in the list. Pages that fail after
// retries are reported through the progress callback and omitted from
// the result; only context cancellation fails the whole harvest.
// Result order matches the input order.
func (h *Harvester) HarvestAll(ctx context.Context, pages []kosdex.DocPage, progress kosdex.HarvestProgressFunc) ([]*kosdex.Page, error) {
	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*kosdex.Page, len(pages))

	var mu sync.Mutex
	completed := 0
	report := func(url string, fromCache bool, err error) {
		mu.Lock()
		completed++
		n := completed
		mu.Unlock()
		if progress != nil {
			progress(kosdex.HarvestProgress{
				URL:       url,
				Completed: n,
				Total:     len(pages),
				FromCache: fromCache,
				Error:     err,
			})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, dp := range pages {
		g.Go(func() error {
			page, err := h.harvestOne(ctx, dp)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				report(dp.URL, false, err)
				return nil
			}
			results[i] = page
			report(dp.URL, page.FromCache, nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	harvested := make([]*kosdex.Page, 0, len(results))
	for _, p := range results {
		if p != nil {
			harvested = append(harvested, p)
		}
	}
	return harvested, nil
}

// harvestOne serves a single page from cache or network.
func (h *Harvester) harvestOne(ctx context.Context, dp kosdex.DocPage) (*kosdex.Page, error) {
	maxAge := h.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	if !h.NoCache && h.Cache != nil {
		cached, err := h.Cache.Get(ctx, dp.URL)
		if err == nil && time.Since(cached.FetchedAt) <= maxAge {
			return &kosdex.Page{
				URL:       dp.URL,
				Kind:      dp.Kind,
				HTML:      cached.HTML,
				FetchedAt: cached.FetchedAt,
				FromCache: true,
			}, nil
		}
	}

	if h.Limiter != nil {
		parsed, err := url.Parse(dp.URL)
		if err != nil {
			return nil, kosdex.Errorf(kosdex.EINVALID, "invalid page URL %s: %v", dp.URL, err)
		}
		if err := h.Limiter.Wait(ctx, parsed.Host); err != nil {
			return nil, err
		}
	}

	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, dp.URL, h.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, err
	}

	fetchedAt := time.Now().UTC()
	if h.Cache != nil {
		// A failed cache write is not fatal; the page was fetched.
		_ = h.Cache.Put(ctx, &kosdex.CachedPage{
			URL:       dp.URL,
			HTML:      html,
			FetchedAt: fetchedAt,
		})
	}

	return &kosdex.Page{
		URL:       dp.URL,
		Kind:      dp.Kind,
		HTML:      html,
		FetchedAt: fetchedAt,
	}, nil
}
