package goquery

import (
	"strings"

	"github.com/kspcapcom/kosdex"
)

var _ kosdex.ParserRegistry = (*Registry)(nil)

// Registry routes documentation pages to the parsers that understand
// them, by page kind plus optional predicate matchers.
type Registry struct {
	byKind   map[kosdex.PageKind][]kosdex.PageParser
	matchers []matcher
	kinds    []kosdex.PageKind
}

type matcher struct {
	match  func(kosdex.DocPage) bool
	parser kosdex.PageParser
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[kosdex.PageKind][]kosdex.PageParser),
	}
}

// DefaultRegistry returns a Registry wired the way a full build runs:
// structure pages get the structure parser, math pages the function
// parser (plus the constant parser on direction pages), language pages
// the keyword parser, commands pages the command parser, and bindings
// pages both the keyword and constant parsers. General pages have no
// parser.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(kosdex.PageKindStructures, NewStructureParser())
	r.Register(kosdex.PageKindMath, NewFunctionParser())
	r.Register(kosdex.PageKindLanguage, NewKeywordParser())
	r.Register(kosdex.PageKindCommands, NewCommandParser())
	r.Register(kosdex.PageKindBindings, NewKeywordParser())
	r.Register(kosdex.PageKindBindings, NewConstantParser())

	constants := NewConstantParser()
	r.RegisterWhere(func(p kosdex.DocPage) bool {
		return p.Kind == kosdex.PageKindMath && strings.Contains(strings.ToLower(p.URL), "direction")
	}, constants)

	return r
}

// Register adds a parser for a page kind. Multiple parsers may be
// registered for the same kind; they run in registration order.
func (r *Registry) Register(kind kosdex.PageKind, parser kosdex.PageParser) {
	if _, ok := r.byKind[kind]; !ok {
		r.kinds = append(r.kinds, kind)
	}
	r.byKind[kind] = append(r.byKind[kind], parser)
}

// RegisterWhere adds a parser that runs for any page matching the
// predicate, after the parsers registered for its kind.
func (r *Registry) RegisterWhere(match func(kosdex.DocPage) bool, parser kosdex.PageParser) {
	r.matchers = append(r.matchers, matcher{match: match, parser: parser})
}

// ForPage returns the parsers to run against the page, in order.
func (r *Registry) ForPage(page kosdex.DocPage) []kosdex.PageParser {
	parsers := append([]kosdex.PageParser(nil), r.byKind[page.Kind]...)
	for _, m := range r.matchers {
		if m.match(page) {
			parsers = append(parsers, m.parser)
		}
	}
	return parsers
}

// Kinds returns all page kinds with at least one registered parser, in
// registration order.
func (r *Registry) Kinds() []kosdex.PageKind {
	return append([]kosdex.PageKind(nil), r.kinds...)
}
