package kosdex

// LinkPriority represents crawl priority (higher = more important).
type LinkPriority int

// Link priority levels for crawl ordering. Table-of-contents links are
// followed before body links so that the crawl reaches every section
// of the documentation before descending into individual pages.
const (
	PriorityIgnore   LinkPriority = 0
	PriorityFallback LinkPriority = 10
	PriorityFooter   LinkPriority = 20
	PriorityContent  LinkPriority = 50
	PriorityNav      LinkPriority = 100
	PriorityTOC      LinkPriority = 110
)

// DiscoveredLink represents a URL with priority metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Source   string // "toc", "nav", "content", "footer"
}

// LinkSelector extracts prioritized links from HTML.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns discovered links with
	// priority. The baseURL is used to resolve relative URLs.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)

	// Name returns the selector's identifier (e.g., "sphinx").
	Name() string
}
