package mock

import "github.com/kspcapcom/kosdex"

var _ kosdex.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of kosdex.PageParser.
type PageParser struct {
	ParsePageFn func(page *kosdex.Page) ([]*kosdex.Entry, error)
	NameFn      func() string
}

func (p *PageParser) ParsePage(page *kosdex.Page) ([]*kosdex.Entry, error) {
	return p.ParsePageFn(page)
}

func (p *PageParser) Name() string {
	if p.NameFn == nil {
		return "mock"
	}
	return p.NameFn()
}

var _ kosdex.ParserRegistry = (*ParserRegistry)(nil)

// ParserRegistry is a mock implementation of kosdex.ParserRegistry.
type ParserRegistry struct {
	RegisterFn      func(kind kosdex.PageKind, parser kosdex.PageParser)
	RegisterWhereFn func(match func(kosdex.DocPage) bool, parser kosdex.PageParser)
	ForPageFn       func(page kosdex.DocPage) []kosdex.PageParser
	KindsFn         func() []kosdex.PageKind
}

func (r *ParserRegistry) Register(kind kosdex.PageKind, parser kosdex.PageParser) {
	r.RegisterFn(kind, parser)
}

func (r *ParserRegistry) RegisterWhere(match func(kosdex.DocPage) bool, parser kosdex.PageParser) {
	r.RegisterWhereFn(match, parser)
}

func (r *ParserRegistry) ForPage(page kosdex.DocPage) []kosdex.PageParser {
	return r.ForPageFn(page)
}

func (r *ParserRegistry) Kinds() []kosdex.PageKind {
	return r.KindsFn()
}
