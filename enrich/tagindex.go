package enrich

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kspcapcom/kosdex"
)

// TagIndex maps every tag actually used by the entries to a short
// human-readable description. Tags without a curated description get a
// title-cased form of the tag itself so the index is always complete.
func TagIndex(entries []*kosdex.Entry) map[string]string {
	used := make(map[string]struct{})
	for _, e := range entries {
		for _, tag := range e.Tags {
			used[tag] = struct{}{}
		}
	}

	title := cases.Title(language.English)
	index := make(map[string]string, len(used))
	for tag := range used {
		desc, ok := tagDescriptions[tag]
		if !ok {
			desc = title.String(tag)
		}
		index[tag] = desc
	}
	return index
}

// UsedTags returns the sorted set of tags present on the entries.
func UsedTags(entries []*kosdex.Entry) []string {
	used := make(map[string]struct{})
	for _, e := range entries {
		for _, tag := range e.Tags {
			used[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(used))
	for tag := range used {
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}
