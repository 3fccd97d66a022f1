package kosdex

import (
	"context"
	"strings"
)

// PageKind identifies which family of documentation a page belongs to.
// The kind determines which parsers run against the page.
type PageKind string

// Page kinds.
const (
	PageKindStructures PageKind = "structures"
	PageKindMath       PageKind = "math"
	PageKindLanguage   PageKind = "language"
	PageKindCommands   PageKind = "commands"
	PageKindBindings   PageKind = "bindings"
	PageKindGeneral    PageKind = "general"
)

// DocPage is a documentation page selected for harvesting.
type DocPage struct {
	URL   string
	Title string
	Kind  PageKind
}

// TOCParser extracts documentation pages from a fetched
// table-of-contents page.
type TOCParser interface {
	// ExtractPages returns the pages linked from the TOC, classified
	// by kind. Links are resolved against tocURL; off-site and
	// non-documentation links are skipped.
	ExtractPages(tocHTML, tocURL string) ([]DocPage, error)
}

// Discoverer finds the set of documentation pages to harvest.
type Discoverer interface {
	// DiscoverPages returns the documentation pages reachable from
	// baseURL, classified by kind. Implementations may read the site's
	// table of contents, its sitemap, or crawl.
	DiscoverPages(ctx context.Context, baseURL string) ([]DocPage, error)
}

// kindPatterns maps URL path fragments to page kinds, checked in order.
// Structure pages live under topic subdirectories; matching a bare
// structures/ prefix would also catch index pages that document nothing.
var kindPatterns = []struct {
	kind     PageKind
	patterns []string
}{
	{PageKindStructures, []string{
		"structures/vessels/",
		"structures/celestial_bodies/",
		"structures/collections/",
		"structures/misc/",
		"structures/orbits/",
		"structures/communication/",
		"structures/volumes_and_files/",
		"structures/gui/",
	}},
	{PageKindMath, []string{"math/"}},
	{PageKindLanguage, []string{"language/"}},
	{PageKindCommands, []string{"commands/"}},
	{PageKindBindings, []string{"bindings/"}},
}

// KindForURL classifies a documentation URL by its path.
// URLs that match no known pattern are classified as general pages.
func KindForURL(url string) PageKind {
	for _, kp := range kindPatterns {
		for _, pattern := range kp.patterns {
			if strings.Contains(url, pattern) {
				return kp.kind
			}
		}
	}
	return PageKindGeneral
}
