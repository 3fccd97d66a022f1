package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kspcapcom/kosdex"
)

var _ kosdex.PageParser = (*KeywordParser)(nil)

// KeywordParser extracts language keyword entries from the language
// pages. It only emits entries for a fixed keyword set; the language
// pages are prose-heavy, so anything heading-shaped that is not a
// known keyword is noise.
type KeywordParser struct{}

// NewKeywordParser creates a new KeywordParser.
func NewKeywordParser() *KeywordParser {
	return &KeywordParser{}
}

// Name identifies the parser in logs and diagnostics.
func (p *KeywordParser) Name() string { return "keyword" }

// knownKeywords is the kOS keyword vocabulary, in documentation order.
var knownKeywords = []string{
	"LOCK", "UNLOCK", "SET", "DECLARE", "LOCAL", "GLOBAL", "PARAMETER",
	"IF", "ELSE", "UNTIL", "FOR", "FROM", "WHEN", "ON", "PRESERVE",
	"RETURN", "BREAK", "FUNCTION", "CHOOSE", "SWITCH", "TO",
	"LAZYGLOBAL", "RUNPATH", "RUN", "RUNONCEPATH", "COMPILE",
	"WAIT", "AT", "AND", "OR", "NOT", "TRUE", "FALSE",
}

// keywordSignatures supplies signatures when the page heading is just
// the bare keyword.
var keywordSignatures = map[string]string{
	"LOCK":      "LOCK identifier TO expression.",
	"UNLOCK":    "UNLOCK identifier.",
	"SET":       "SET identifier TO expression.",
	"IF":        "IF condition { statements }",
	"UNTIL":     "UNTIL condition { statements }",
	"FOR":       "FOR identifier IN collection { statements }",
	"WHEN":      "WHEN condition THEN { statements }",
	"ON":        "ON trigger { statements }",
	"FUNCTION":  "FUNCTION name { statements }",
	"WAIT":      "WAIT seconds. | WAIT UNTIL condition.",
	"RETURN":    "RETURN expression.",
	"BREAK":     "BREAK.",
	"PRESERVE":  "PRESERVE.",
	"LOCAL":     "LOCAL identifier IS expression.",
	"GLOBAL":    "GLOBAL identifier IS expression.",
	"PARAMETER": "PARAMETER identifier.",
	"DECLARE":   "DECLARE identifier.",
}

// keywordReturnTypes covers the value-producing keywords.
var keywordReturnTypes = map[string]string{
	"TRUE":  "Boolean",
	"FALSE": "Boolean",
}

// ParsePage extracts keyword entries from the page.
func (p *KeywordParser) ParsePage(page *kosdex.Page) ([]*kosdex.Entry, error) {
	doc, err := parseDoc(page)
	if err != nil {
		return nil, err
	}

	var entries []*kosdex.Entry
	seen := make(map[string]bool)

	doc.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		keyword := matchKeyword(headingText(heading))
		if keyword == "" || seen[keyword] {
			return
		}

		entries = append(entries, p.keywordEntry(heading, page.URL, keyword))
		seen[keyword] = true
	})

	return entries, nil
}

// matchKeyword reports the keyword a heading documents: the heading is
// the keyword itself or starts with it ("LOCK statement").
func matchKeyword(text string) string {
	upper := strings.ToUpper(text)
	for _, keyword := range knownKeywords {
		if upper == keyword || strings.HasPrefix(upper, keyword+" ") {
			return keyword
		}
	}
	return ""
}

func (p *KeywordParser) keywordEntry(heading *goquery.Selection, url, keyword string) *kosdex.Entry {
	description, snippet := sectionContent(heading)
	deprecated, note := deprecation(heading)

	sourceRef := url
	if anchor := headingAnchor(heading); anchor != "" {
		sourceRef = kosdex.WithFragment(url, anchor)
	}

	return &kosdex.Entry{
		ID:              keyword,
		Name:            keyword,
		Type:            kosdex.EntryTypeKeyword,
		ReturnType:      keywordReturnTypes[keyword],
		Signature:       keywordSignature(heading, keyword),
		Description:     truncate(description, descriptionLimit),
		Snippet:         truncate(snippet, snippetLimit),
		SourceRef:       sourceRef,
		Tags:            keywordTags(keyword),
		Deprecated:      deprecated,
		DeprecationNote: note,
	}
}

// keywordSignature prefers a syntax-shaped heading ("LOCK identifier
// TO expression"), then the first sentence of a syntax-shaped opening
// paragraph, then the fixed defaults.
func keywordSignature(heading *goquery.Selection, keyword string) string {
	text := headingText(heading)
	if len(text) > len(keyword)+1 {
		return text
	}

	if next := heading.Next(); next.Is("p") {
		pText := cleanText(next.Text())
		if strings.HasPrefix(strings.ToUpper(pText), keyword) {
			sentence := strings.SplitN(pText, ".", 2)[0] + "."
			if len(sentence) < 100 {
				return sentence
			}
		}
	}

	return keywordSignatures[keyword]
}

var (
	controlKeywords  = map[string]bool{"IF": true, "ELSE": true, "UNTIL": true, "FOR": true, "FROM": true, "WHEN": true, "ON": true, "WAIT": true, "BREAK": true, "RETURN": true, "CHOOSE": true, "SWITCH": true}
	variableKeywords = map[string]bool{"SET": true, "LOCK": true, "UNLOCK": true, "DECLARE": true, "LOCAL": true, "GLOBAL": true, "PARAMETER": true}
	funcKeywords     = map[string]bool{"FUNCTION": true, "RETURN": true, "PARAMETER": true}
	triggerKeywords  = map[string]bool{"WHEN": true, "ON": true, "PRESERVE": true}
	programKeywords  = map[string]bool{"RUN": true, "RUNPATH": true, "RUNONCEPATH": true, "COMPILE": true}
)

func keywordTags(keyword string) []string {
	tags := []string{"language"}

	if controlKeywords[keyword] {
		tags = append(tags, "control")
	}
	if variableKeywords[keyword] {
		tags = append(tags, "variables")
	}
	if keyword == "LOCK" || keyword == "UNLOCK" {
		tags = append(tags, "binding")
	}
	if funcKeywords[keyword] {
		tags = append(tags, "function")
	}
	if triggerKeywords[keyword] {
		tags = append(tags, "trigger")
	}
	if programKeywords[keyword] {
		tags = append(tags, "program", "io")
	}

	return tags
}
