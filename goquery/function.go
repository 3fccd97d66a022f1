package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kspcapcom/kosdex"
)

var _ kosdex.PageParser = (*FunctionParser)(nil)

// FunctionParser extracts built-in function entries from the math
// pages. Functions appear both as section headings ("ABS(value)") and
// as Sphinx definition lists (dl/dt/dd).
type FunctionParser struct{}

// NewFunctionParser creates a new FunctionParser.
func NewFunctionParser() *FunctionParser {
	return &FunctionParser{}
}

// Name identifies the parser in logs and diagnostics.
func (p *FunctionParser) Name() string { return "function" }

var (
	// Function headings carry their argument list: "ABS(a)", "RANDOM()".
	// Bare uppercase headings are section titles, not functions.
	funcHeadingRE = regexp.MustCompile(`^([A-Z_][A-Z0-9_]*)\s*(\([^)]*\))\s*$`)
	funcDefRE     = regexp.MustCompile(`^([A-Z_][A-Z0-9_]*)\s*\(([^)]*)\)`)
)

// ParsePage extracts function entries from the page.
func (p *FunctionParser) ParsePage(page *kosdex.Page) ([]*kosdex.Entry, error) {
	doc, err := parseDoc(page)
	if err != nil {
		return nil, err
	}

	var entries []*kosdex.Entry
	seen := make(map[string]bool)

	doc.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		m := funcHeadingRE.FindStringSubmatch(headingText(heading))
		if m == nil {
			return
		}
		name, args := m[1], m[2]
		if seen["FUNCTION:"+name] {
			return
		}

		description, snippet := sectionContent(heading)
		deprecated, note := deprecation(heading)

		sourceRef := page.URL
		if anchor := headingAnchor(heading); anchor != "" {
			sourceRef = kosdex.WithFragment(page.URL, anchor)
		}

		signature := name + "()"
		if args != "" {
			signature = name + args
		}

		entries = append(entries, &kosdex.Entry{
			ID:              "FUNCTION:" + name,
			Name:            name,
			Type:            kosdex.EntryTypeFunction,
			ReturnType:      inferReturnType(description),
			Access:          kosdex.AccessMethod,
			Signature:       signature,
			Description:     truncate(description, descriptionLimit),
			Snippet:         truncate(snippet, snippetLimit),
			SourceRef:       sourceRef,
			Tags:            functionTags(name, description, page.URL),
			Deprecated:      deprecated,
			DeprecationNote: note,
		})
		seen["FUNCTION:"+name] = true
	})

	doc.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		m := funcDefRE.FindStringSubmatch(headingText(dt))
		if m == nil {
			return
		}
		name := m[1]
		if seen["FUNCTION:"+name] {
			return
		}

		dd := dt.Next()
		description := ""
		snippet := ""
		if dd.Is("dd") {
			description = cleanText(dd.Text())
			if pre := dd.Find("pre").First(); pre.Length() > 0 {
				snippet = strings.TrimSpace(pre.Text())
			}
		}

		deprecated, note := deprecation(dt)

		sourceRef := page.URL
		if id, ok := dt.Attr("id"); ok && id != "" {
			sourceRef = kosdex.WithFragment(page.URL, id)
		}

		entries = append(entries, &kosdex.Entry{
			ID:              "FUNCTION:" + name,
			Name:            name,
			Type:            kosdex.EntryTypeFunction,
			ReturnType:      inferReturnType(description),
			Access:          kosdex.AccessMethod,
			Signature:       name + "(" + m[2] + ")",
			Description:     truncate(description, descriptionLimit),
			Snippet:         truncate(snippet, snippetLimit),
			SourceRef:       sourceRef,
			Tags:            functionTags(name, description, page.URL),
			Deprecated:      deprecated,
			DeprecationNote: note,
		})
		seen["FUNCTION:"+name] = true
	})

	return entries, nil
}

// returnTypePatterns map "returns a ..." phrasing to a return type,
// first match wins.
var returnTypePatterns = []struct {
	re  *regexp.Regexp
	typ string
}{
	{regexp.MustCompile(`returns?\s+(?:a\s+)?scalar`), "Scalar"},
	{regexp.MustCompile(`returns?\s+(?:a\s+)?vector`), "Vector"},
	{regexp.MustCompile(`returns?\s+(?:a\s+)?direction`), "Direction"},
	{regexp.MustCompile(`returns?\s+(?:a\s+)?string`), "String"},
	{regexp.MustCompile(`returns?\s+(?:a\s+)?boolean`), "Boolean"},
	{regexp.MustCompile(`returns?\s+(?:a\s+)?list`), "List"},
	{regexp.MustCompile(`returns?\s+(?:a\s+)?(?:true|false)`), "Boolean"},
	{regexp.MustCompile(`returns?\s+(?:a\s+)?number`), "Scalar"},
	{regexp.MustCompile(`returns?\s+(?:the\s+)?angle`), "Scalar"},
}

// inferReturnType guesses a function's return type from its
// description. Math functions default to Scalar.
func inferReturnType(description string) string {
	lower := strings.ToLower(description)
	for _, p := range returnTypePatterns {
		if p.re.MatchString(lower) {
			return p.typ
		}
	}
	return "Scalar"
}

var (
	trigFuncs  = map[string]bool{"sin": true, "cos": true, "tan": true, "asin": true, "acos": true, "atan": true, "atan2": true}
	basicFuncs = map[string]bool{"abs": true, "round": true, "floor": true, "ceiling": true, "sqrt": true, "mod": true, "min": true, "max": true}
)

// functionTags seeds tags from the function's name, description, and
// page URL.
func functionTags(name, description, url string) []string {
	tags := []string{"function"}
	lower := strings.ToLower(name)
	descLower := strings.ToLower(description)

	if strings.Contains(url, "/math/") {
		tags = append(tags, "math")
	}
	if strings.Contains(url, "/basic") {
		tags = append(tags, "basic")
	}
	if strings.Contains(url, "/trig") {
		tags = append(tags, "trigonometry")
	}

	if trigFuncs[lower] {
		tags = append(tags, "trigonometry")
	}
	if basicFuncs[lower] {
		tags = append(tags, "basic")
	}

	if strings.Contains(descLower, "angle") || strings.Contains(descLower, "degree") || strings.Contains(descLower, "radian") {
		tags = append(tags, "angle")
	}
	if strings.Contains(descLower, "vector") {
		tags = append(tags, "vector")
	}
	if strings.Contains(descLower, "random") {
		tags = append(tags, "random")
	}

	return dedupeTags(tags)
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
