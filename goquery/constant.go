package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kspcapcom/kosdex"
)

var _ kosdex.PageParser = (*ConstantParser)(nil)

// ConstantParser extracts bound-constant entries from the direction
// and bindings pages. Constants have authoritative fallback
// descriptions: the pages mention them in passing more often than they
// document them, so a whole-page text scan with defaults backs up the
// heading scan.
type ConstantParser struct{}

// NewConstantParser creates a new ConstantParser.
func NewConstantParser() *ConstantParser {
	return &ConstantParser{}
}

// Name identifies the parser in logs and diagnostics.
func (p *ConstantParser) Name() string { return "constant" }

type constantInfo struct {
	returnType  string
	description string
}

// knownConstants is the fixed constant vocabulary with types and
// fallback descriptions.
var knownConstants = map[string]constantInfo{
	"PROGRADE":     {"Direction", "A direction pointing along the vessel's orbital velocity."},
	"RETROGRADE":   {"Direction", "A direction pointing opposite to orbital velocity."},
	"NORMAL":       {"Direction", "A direction pointing perpendicular to the orbit plane."},
	"ANTINORMAL":   {"Direction", "A direction pointing opposite to normal."},
	"RADIAL":       {"Direction", "A direction pointing away from the body being orbited."},
	"ANTIRADIAL":   {"Direction", "A direction pointing toward the body being orbited."},
	"TARGET":       {"Structure", "The current target vessel or body."},
	"SRFPROGRADE":  {"Direction", "Surface prograde direction."},
	"SRFRETROGRADE": {"Direction", "Surface retrograde direction."},
	"KERBIN":       {"Body", "The planet Kerbin."},
	"MUN":          {"Body", "The Mun, Kerbin's first moon."},
	"MINMUS":       {"Body", "Minmus, Kerbin's second moon."},
	"DUNA":         {"Body", "The planet Duna."},
	"EVE":          {"Body", "The planet Eve."},
	"JOOL":         {"Body", "The gas giant Jool."},
	"SUN":          {"Body", "The star Kerbol (the Sun)."},
	"SHIP":         {"Vessel", "Reference to the vessel running the script."},
	"HASTARGET":    {"Boolean", "True if a target is set."},
}

// ParsePage extracts constant entries from the page.
func (p *ConstantParser) ParsePage(page *kosdex.Page) ([]*kosdex.Entry, error) {
	doc, err := parseDoc(page)
	if err != nil {
		return nil, err
	}

	var entries []*kosdex.Entry
	seen := make(map[string]bool)

	add := func(e *kosdex.Entry) {
		if e != nil && !seen[e.ID] {
			entries = append(entries, e)
			seen[e.ID] = true
		}
	}

	// Headings documenting a constant, exactly or in passing
	// ("Using PROGRADE").
	doc.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		upper := strings.ToUpper(headingText(heading))

		if _, ok := knownConstants[upper]; ok {
			add(p.constantEntry(heading, page.URL, upper))
			return
		}
		for name := range knownConstants {
			if strings.Contains(upper, name) {
				add(p.constantEntry(heading, page.URL, name))
				return
			}
		}
	})

	// Any constant the page mentions at all gets at least a default
	// entry; dedup picks the richer extraction later.
	bodyText := strings.ToUpper(doc.Text())
	for name, info := range knownConstants {
		if !seen[name] && strings.Contains(bodyText, name) {
			add(&kosdex.Entry{
				ID:          name,
				Name:        name,
				Type:        kosdex.EntryTypeConstant,
				ReturnType:  info.returnType,
				Access:      kosdex.AccessGet,
				Description: info.description,
				SourceRef:   page.URL,
				Tags:        constantTags(name, info.returnType),
			})
		}
	}

	return entries, nil
}

func (p *ConstantParser) constantEntry(heading *goquery.Selection, url, name string) *kosdex.Entry {
	info := knownConstants[name]

	description, snippet := sectionContent(heading)
	if description == "" {
		description = info.description
	}

	deprecated, note := deprecation(heading)

	sourceRef := url
	if anchor := headingAnchor(heading); anchor != "" {
		sourceRef = kosdex.WithFragment(url, anchor)
	}

	return &kosdex.Entry{
		ID:              name,
		Name:            name,
		Type:            kosdex.EntryTypeConstant,
		ReturnType:      info.returnType,
		Access:          kosdex.AccessGet,
		Description:     truncate(description, descriptionLimit),
		Snippet:         truncate(snippet, snippetLimit),
		SourceRef:       sourceRef,
		Tags:            constantTags(name, info.returnType),
		Deprecated:      deprecated,
		DeprecationNote: note,
	}
}

var (
	directionConstants = map[string]bool{
		"PROGRADE": true, "RETROGRADE": true, "NORMAL": true,
		"ANTINORMAL": true, "RADIAL": true, "ANTIRADIAL": true,
		"SRFPROGRADE": true, "SRFRETROGRADE": true,
	}
	bodyConstants = map[string]bool{
		"KERBIN": true, "MUN": true, "MINMUS": true, "DUNA": true,
		"EVE": true, "JOOL": true, "SUN": true,
	}
)

func constantTags(name, returnType string) []string {
	tags := []string{"constant"}

	switch {
	case directionConstants[name]:
		tags = append(tags, "direction", "navigation", "orbit")
	case bodyConstants[name]:
		tags = append(tags, "body", "celestial")
	case name == "SHIP" || name == "TARGET":
		tags = append(tags, "vessel")
	}

	switch returnType {
	case "Direction":
		if !directionConstants[name] {
			tags = append(tags, "direction")
		}
	case "Body":
		if !bodyConstants[name] {
			tags = append(tags, "body")
		}
	case "Vessel":
		if name != "SHIP" && name != "TARGET" {
			tags = append(tags, "vessel")
		}
	}

	return tags
}
