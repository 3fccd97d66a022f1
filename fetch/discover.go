package fetch

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/kspcapcom/kosdex"
)

// Frontier configuration for the crawl fallback.
const (
	// frontierExpectedURLs sizes the Bloom filter; the kOS manual is a
	// few hundred pages.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate
	// for deduplication.
	frontierFalsePositiveRate = 0.01
	// DefaultMaxCrawlPages limits the crawl fallback to prevent
	// runaway walks.
	DefaultMaxCrawlPages = 1000
)

var _ kosdex.Discoverer = (*Discoverer)(nil)

// Discoverer finds the documentation pages to harvest. It tries three
// strategies in order: the site's table of contents, the sitemap, and
// finally a scoped crawl following prioritized links.
type Discoverer struct {
	Fetcher kosdex.Fetcher
	TOC     kosdex.TOCParser
	Sitemap kosdex.SitemapService
	Links   kosdex.LinkSelector
	Limiter kosdex.DomainLimiter

	// RetryDelays overrides the fetch retry backoff. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration

	// MaxCrawlPages caps the crawl fallback. Zero means
	// DefaultMaxCrawlPages.
	MaxCrawlPages int
}

// DiscoverPages returns the documentation pages reachable from
// baseURL, classified by kind and deduplicated.
func (d *Discoverer) DiscoverPages(ctx context.Context, baseURL string) ([]kosdex.DocPage, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, kosdex.Errorf(kosdex.EINVALID, "invalid base URL: %v", err)
	}

	if pages, err := d.fromTOC(ctx, base); err == nil && len(pages) > 0 {
		return pages, nil
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if d.Sitemap != nil {
		urls, err := d.Sitemap.DiscoverURLs(ctx, baseURL, kosdex.DocURLFilter())
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if len(urls) > 0 {
			pages := make([]kosdex.DocPage, 0, len(urls))
			for _, u := range urls {
				pages = append(pages, kosdex.DocPage{
					URL:  u,
					Kind: kosdex.KindForURL(u),
				})
			}
			return pages, nil
		}
	}

	return d.crawl(ctx, base)
}

// fromTOC fetches the table-of-contents page and extracts the page
// list from it.
func (d *Discoverer) fromTOC(ctx context.Context, base *url.URL) ([]kosdex.DocPage, error) {
	if d.TOC == nil {
		return nil, kosdex.Errorf(kosdex.EINTERNAL, "no TOC parser configured")
	}

	tocRef, err := url.Parse(kosdex.TOCPath)
	if err != nil {
		return nil, err
	}
	tocURL := base.ResolveReference(tocRef).String()

	html, err := d.fetch(ctx, tocURL)
	if err != nil {
		return nil, err
	}

	return d.TOC.ExtractPages(html, tocURL)
}

// crawl walks the site from baseURL following prioritized links,
// collecting every documentation page it visits. The walk is
// sequential: the per-domain rate limit dominates throughput, so
// worker concurrency would buy nothing here.
func (d *Discoverer) crawl(ctx context.Context, base *url.URL) ([]kosdex.DocPage, error) {
	maxPages := d.MaxCrawlPages
	if maxPages <= 0 {
		maxPages = DefaultMaxCrawlPages
	}

	pathPrefix := base.Path
	filter := kosdex.DocURLFilter()

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(kosdex.DiscoveredLink{
		URL:      base.String(),
		Priority: kosdex.PriorityTOC,
	})

	var pages []kosdex.DocPage
	visited := 0

	for visited < maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		link, ok := frontier.Pop()
		if !ok {
			break
		}
		visited++

		html, err := d.fetch(ctx, link.URL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		if d.Links != nil {
			links, err := d.Links.ExtractLinks(html, link.URL)
			if err == nil {
				for _, discovered := range links {
					if !inScope(discovered.URL, base, pathPrefix) {
						continue
					}
					frontier.Push(discovered)
				}
			}
		}

		if filter.Match(link.URL) {
			pages = append(pages, kosdex.DocPage{
				URL:   link.URL,
				Title: link.Text,
				Kind:  kosdex.KindForURL(link.URL),
			})
		}
	}

	return pages, nil
}

// fetch rate-limits and retrieves a single URL with retry.
func (d *Discoverer) fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", kosdex.Errorf(kosdex.EINVALID, "invalid URL %s: %v", rawURL, err)
	}

	if d.Limiter != nil {
		if err := d.Limiter.Wait(ctx, parsed.Host); err != nil {
			return "", err
		}
	}

	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, rawURL, d.Fetcher.Fetch, nil, delays)
}

// inScope reports whether a discovered URL stays on the source host
// and under its path prefix.
func inScope(rawURL string, base *url.URL, pathPrefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Host != base.Host {
		return false
	}
	return strings.HasPrefix(parsed.Path, pathPrefix)
}
