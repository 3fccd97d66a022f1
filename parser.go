package kosdex

// PageParser extracts documentation entries from a fetched page.
type PageParser interface {
	// ParsePage extracts every entry the parser understands from the
	// page. Pages with no recognizable entries yield an empty slice,
	// not an error.
	ParsePage(page *Page) ([]*Entry, error)

	// Name identifies the parser in logs and diagnostics.
	Name() string
}

// ParserRegistry routes pages to the parsers that understand them.
type ParserRegistry interface {
	// Register adds a parser for a page kind. Multiple parsers may be
	// registered for the same kind; they run in registration order.
	Register(kind PageKind, parser PageParser)

	// RegisterWhere adds a parser that runs for any page matching the
	// predicate, in addition to the parsers registered for its kind.
	RegisterWhere(match func(DocPage) bool, parser PageParser)

	// ForPage returns the parsers to run against the page, in order.
	// Pages with no registered parser return an empty slice.
	ForPage(page DocPage) []PageParser

	// Kinds returns all page kinds with at least one registered parser.
	Kinds() []PageKind
}
