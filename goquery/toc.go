package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kspcapcom/kosdex"
)

var _ kosdex.TOCParser = (*TOC)(nil)

// TOC extracts the documentation page list from the site's
// table-of-contents page. Extraction is pure; fetching the TOC page is
// the discoverer's job.
type TOC struct{}

// NewTOC creates a new TOC parser.
func NewTOC() *TOC {
	return &TOC{}
}

// ExtractPages collects every same-host .html link from the TOC,
// resolves it against tocURL, strips fragments, deduplicates, and
// classifies each page by its URL path. Sphinx utility pages (search,
// the generated index, raw sources) are skipped.
func (t *TOC) ExtractPages(tocHTML, tocURL string) ([]kosdex.DocPage, error) {
	base, err := url.Parse(tocURL)
	if err != nil {
		return nil, kosdex.Errorf(kosdex.EINVALID, "invalid TOC URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tocHTML))
	if err != nil {
		return nil, kosdex.Errorf(kosdex.EINVALID, "parse TOC: %v", err)
	}

	filter := kosdex.DocURLFilter()
	seen := make(map[string]bool)
	var pages []kosdex.DocPage

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") {
			return
		}
		if !strings.HasSuffix(href, ".html") && !strings.Contains(href, ".html#") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host {
			return
		}
		resolved.Fragment = ""

		pageURL := resolved.String()
		if seen[pageURL] || !filter.Match(pageURL) {
			return
		}
		seen[pageURL] = true

		pages = append(pages, kosdex.DocPage{
			URL:   pageURL,
			Title: cleanText(a.Text()),
			Kind:  kosdex.KindForURL(pageURL),
		})
	})

	return pages, nil
}
