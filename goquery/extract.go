// Package goquery implements HTML extraction for the kOS documentation
// site: the table-of-contents scan, the five page parsers, and the
// link selector used by the crawl fallback. The site is rendered by
// Sphinx, so the selectors target Sphinx markup throughout.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kspcapcom/kosdex"
)

var (
	whitespaceRE  = regexp.MustCompile(`\s+`)
	permalinkRE   = regexp.MustCompile(`[¶#]`)
	deprecatedRE  = regexp.MustCompile(`(?i)Deprecated since version ([^:]+)(?::\s*(.+))?`)
	accessWordRE  = regexp.MustCompile(`(?i)\b(get|set)\b`)
	sectionBreaks = "h1, h2, h3, h4, h5, h6, hr"
)

// cleanText collapses runs of whitespace into single spaces.
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// headingText returns a heading's text with Sphinx permalink markers
// stripped.
func headingText(sel *goquery.Selection) string {
	return cleanText(permalinkRE.ReplaceAllString(sel.Text(), ""))
}

// pageTitle extracts the page's main title: the first h1, falling back
// to the <title> element with the site suffix removed.
func pageTitle(doc *goquery.Document) string {
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		return headingText(h1)
	}

	title := doc.Find("title").First().Text()
	if title == "" {
		return ""
	}
	// "Vessel — kOS documentation" keeps only the page part.
	title = strings.SplitN(title, "—", 2)[0]
	title = strings.SplitN(title, " - ", 2)[0]
	return cleanText(title)
}

// headingAnchor returns the anchor ID for a heading: its own id
// attribute, the enclosing section's id, or the target of its
// permalink.
func headingAnchor(heading *goquery.Selection) string {
	if id, ok := heading.Attr("id"); ok && id != "" {
		return id
	}
	if id, ok := heading.Parent().Attr("id"); ok && id != "" && heading.Parent().Is("section, div.section") {
		return id
	}
	if href, ok := heading.Find("a.headerlink").Attr("href"); ok && strings.HasPrefix(href, "#") {
		return href[1:]
	}
	return ""
}

// sectionContent collects the description paragraphs and the first
// code snippet between a heading and the next heading.
func sectionContent(heading *goquery.Selection) (description, snippet string) {
	var parts []string

	for sib := heading.Next(); sib.Length() > 0; sib = sib.Next() {
		if sib.Is(sectionBreaks) {
			break
		}
		if sib.Is("p") {
			parts = append(parts, cleanText(sib.Text()))
		}
		if snippet == "" {
			snippet = codeBlock(sib)
		}
	}

	return strings.Join(parts, " "), snippet
}

// codeBlock extracts code from a pre element or a Sphinx highlight div.
// Returns the empty string when sel is neither.
func codeBlock(sel *goquery.Selection) string {
	if sel.Is("pre") {
		return strings.TrimSpace(sel.Text())
	}
	if sel.Is("div.highlight, div[class*=highlight]") {
		if pre := sel.Find("pre").First(); pre.Length() > 0 {
			return strings.TrimSpace(pre.Text())
		}
	}
	return ""
}

// firstSnippet returns the first highlighted code block on the page,
// truncated to the snippet length limit.
func firstSnippet(doc *goquery.Document) string {
	pre := doc.Find("div.highlight pre").First()
	if pre.Length() == 0 {
		return ""
	}
	return truncate(strings.TrimSpace(pre.Text()), snippetLimit)
}

// snippetLimit caps stored code snippets; kOS tutorial pages carry
// scripts that run to hundreds of lines.
const snippetLimit = 500

// descriptionLimit caps descriptions taken from free-flowing sections.
const descriptionLimit = 500

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// parseAccess maps access-column text to an access mode. The bool
// reports whether the text marks the suffix as callable.
func parseAccess(text string) (kosdex.AccessMode, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return "", false
	}

	if strings.Contains(lower, "method") {
		return kosdex.AccessMethod, true
	}

	hasGet := strings.Contains(lower, "get")
	hasSet := strings.Contains(lower, "set")
	switch {
	case hasGet && hasSet:
		return kosdex.AccessGetSet, false
	case hasGet:
		return kosdex.AccessGet, false
	case hasSet:
		return kosdex.AccessSet, false
	}
	return "", false
}

// deprecation inspects an element and its section for deprecation
// markers: the literal "(Deprecated)", a "Deprecated since version"
// admonition, or a div with a deprecated class.
func deprecation(sel *goquery.Selection) (bool, string) {
	text := sel.Text()

	if strings.Contains(text, "(Deprecated)") {
		return true, ""
	}

	if m := deprecatedRE.FindStringSubmatch(text); m != nil {
		note := strings.TrimSpace(m[2])
		if note == "" {
			note = "Deprecated since version " + strings.TrimSpace(m[1])
		}
		return true, note
	}

	if sel.Is("div") {
		if class, ok := sel.Attr("class"); ok && strings.Contains(strings.ToLower(class), "deprecated") {
			return true, cleanText(text)
		}
	}

	return false, ""
}

// parseDoc parses page HTML, returning an EINVALID error on malformed
// input so the harvester can report the page and continue.
func parseDoc(page *kosdex.Page) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, kosdex.Errorf(kosdex.EINVALID, "parse %s: %v", page.URL, err)
	}
	return doc, nil
}
