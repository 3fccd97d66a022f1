package enrich

import (
	"slices"
	"strings"

	"github.com/kspcapcom/kosdex"
)

// minTags is the coverage floor: every entry should be reachable
// through at least this many tag facets.
const minTags = 2

// Tagger assigns taxonomy tags to entries. Six independent rule sources
// contribute tags: identifier patterns, the keyword table, return
// types, description keywords, the entry type, and deprecation. Every
// entry ends up with at least two tags where the rules allow it.
type Tagger struct {
	patterns    []tagPattern
	keywords    map[string][]string
	returnTypes []returnTypeRule
	hints       []descriptionHint
	typeTags    map[kosdex.EntryType][]string
}

// NewTagger returns a Tagger backed by the default taxonomy tables.
func NewTagger() *Tagger {
	return &Tagger{
		patterns:    tagPatterns,
		keywords:    keywordTagHints,
		returnTypes: returnTypeRules,
		hints:       descriptionHints,
		typeTags:    typeTags,
	}
}

// Apply replaces the entry's tags with the sorted union of its existing
// tags and everything the taxonomy rules contribute.
func (t *Tagger) Apply(e *kosdex.Entry) {
	e.Tags = t.Tags(e)
}

// Tags computes the full sorted tag set for an entry without modifying
// it.
func (t *Tagger) Tags(e *kosdex.Entry) []string {
	tags := make(map[string]struct{}, len(e.Tags)+4)
	for _, tag := range e.Tags {
		tags[tag] = struct{}{}
	}

	addAll(tags, t.fromPatterns(e.ID))
	addAll(tags, t.fromKeyword(e.Name))
	addAll(tags, t.fromReturnType(e.ReturnType))
	addAll(tags, t.fromDescription(e.Description))
	addAll(tags, t.typeTags[e.Type])

	if e.Deprecated {
		tags["deprecated"] = struct{}{}
	}

	// Below the floor, borrow the parent structure's pattern tags
	// first and fall back to a generic tag.
	if len(tags) < minTags {
		if e.ParentStructure != "" {
			addAll(tags, t.fromPatterns(e.ParentStructure))
		}
		if len(tags) < minTags {
			tags["misc"] = struct{}{}
		}
	}

	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

func (t *Tagger) fromPatterns(id string) []string {
	var out []string
	upper := strings.ToUpper(id)
	for _, p := range t.patterns {
		if p.re.MatchString(upper) {
			out = append(out, p.tags...)
		}
	}
	return out
}

func (t *Tagger) fromKeyword(name string) []string {
	return t.keywords[strings.ToUpper(name)]
}

func (t *Tagger) fromReturnType(returnType string) []string {
	if returnType == "" {
		return nil
	}
	var out []string
	lower := strings.ToLower(returnType)
	for _, rule := range t.returnTypes {
		if strings.Contains(lower, rule.substr) {
			out = append(out, rule.tags...)
		}
	}
	return out
}

func (t *Tagger) fromDescription(description string) []string {
	if description == "" {
		return nil
	}
	var out []string
	lower := strings.ToLower(description)
	for _, hint := range t.hints {
		for _, keyword := range hint.keywords {
			if strings.Contains(lower, keyword) {
				out = append(out, hint.tag)
				break
			}
		}
	}
	return out
}

func addAll(set map[string]struct{}, tags []string) {
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
}
