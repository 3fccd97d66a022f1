package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kspcapcom/kosdex"
)

var _ kosdex.LinkSelector = (*SphinxSelector)(nil)

// SphinxSelector extracts prioritized links from Sphinx-rendered
// pages. The crawl fallback uses it to walk the site when neither the
// TOC nor the sitemap yields pages.
//
// It supports both the ReadTheDocs theme and the classic Sphinx theme:
// .wy-nav-side and .wy-menu-vertical for ReadTheDocs, .sphinxsidebar
// for classic, .toctree-wrapper and #localtoc for TOC elements.
type SphinxSelector struct{}

// NewSphinxSelector creates a new SphinxSelector.
func NewSphinxSelector() *SphinxSelector {
	return &SphinxSelector{}
}

// Name returns the selector's identifier.
func (s *SphinxSelector) Name() string {
	return "sphinx"
}

// linkSource pairs a CSS selector with the priority and label of the
// links it yields.
type linkSource struct {
	selector string
	priority kosdex.LinkPriority
	source   string
}

var sphinxLinkSources = []linkSource{
	{".toctree-wrapper a[href]", kosdex.PriorityTOC, "toc"},
	{"#localtoc a[href]", kosdex.PriorityTOC, "toc"},
	{".wy-nav-side a[href]", kosdex.PriorityNav, "nav"},
	{".wy-menu-vertical a[href]", kosdex.PriorityNav, "nav"},
	{".sphinxsidebar a[href]", kosdex.PriorityNav, "nav"},
	{".document a[href]", kosdex.PriorityContent, "content"},
	{".body a[href]", kosdex.PriorityContent, "content"},
	{"article a[href]", kosdex.PriorityContent, "content"},
	{"footer a[href]", kosdex.PriorityFooter, "footer"},
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// Off-host links are dropped.
func (s *SphinxSelector) ExtractLinks(html string, baseURL string) ([]kosdex.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, kosdex.Errorf(kosdex.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, kosdex.Errorf(kosdex.EINVALID, "parse HTML: %v", err)
	}

	seen := make(map[string]int)
	var links []kosdex.DiscoveredLink

	for _, src := range sphinxLinkSources {
		doc.Find(src.selector).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || href == "" || isNonHTTPLink(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" || !isSameHost(base, resolved) {
				return
			}

			link := kosdex.DiscoveredLink{
				URL:      resolved,
				Priority: src.priority,
				Text:     strings.TrimSpace(sel.Text()),
				Source:   src.source,
			}

			if i, ok := seen[resolved]; ok {
				if src.priority > links[i].Priority {
					links[i] = link
				}
			} else {
				seen[resolved] = len(links)
				links = append(links, link)
			}
		})
	}

	return links, nil
}

// resolveURL resolves a relative href against a base URL with the
// fragment stripped. Self-referential links resolve to the empty
// string so anchor-only hrefs are skipped.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if resolved.String() == baseNoFragment.String() {
		return ""
	}
	return resolved.String()
}

// isSameHost checks for an exact host match; subdomains count as
// different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
