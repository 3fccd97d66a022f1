package enrich

import (
	"regexp"
	"slices"
	"strings"

	"github.com/kspcapcom/kosdex"
)

// Related lists are bounded so a single entry never floods the index;
// structures link at most a handful of their own suffixes for the same
// reason.
const (
	maxRelated     = 10
	maxSuffixLinks = 4
)

// complementaryPairs lists identifiers that always reference each other
// when both sides exist in the index.
var complementaryPairs = [][2]string{
	{"PROGRADE", "RETROGRADE"},
	{"NORMAL", "ANTINORMAL"},
	{"RADIAL", "ANTIRADIAL"},
	{"LOCK", "UNLOCK"},
	{"APOAPSIS", "PERIAPSIS"},
	{"ETA:APOAPSIS", "ETA:PERIAPSIS"},
}

// mention matches one distinct entry name as a whole word and carries
// the IDs of every entry bearing that name.
type mention struct {
	re  *regexp.Regexp
	ids []string
}

// CrossReference rebuilds every entry's Related list in place from four
// sources: the pre-existing list, parent/suffix structure linkage,
// complementary pairs, and whole-word mentions of other entries' names
// in the description. The result is sorted by ID and capped at
// maxRelated; entries never reference themselves.
func CrossReference(entries []*kosdex.Entry) {
	byID := make(map[string]*kosdex.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	// One matcher per distinct name, compiled once. The description
	// scan touches every name for every entry, so per-use compilation
	// would dominate the whole pipeline.
	byName := make(map[string]*mention, len(entries))
	names := make([]*mention, 0, len(entries))
	for _, e := range entries {
		name := strings.ToUpper(e.Name)
		if name == "" {
			continue
		}
		m, ok := byName[name]
		if !ok {
			m = &mention{re: regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)}
			byName[name] = m
			names = append(names, m)
		}
		m.ids = append(m.ids, e.ID)
	}

	for _, e := range entries {
		related := make(map[string]struct{}, len(e.Related))
		for _, id := range e.Related {
			related[id] = struct{}{}
		}

		// Suffixes link back to their parent structure when it exists.
		if e.ParentStructure != "" && e.ParentStructure != e.ID {
			if _, ok := byID[e.ParentStructure]; ok {
				related[e.ParentStructure] = struct{}{}
			}
		}

		// Structures link a few of their own suffixes.
		if e.Type == kosdex.EntryTypeStructure {
			prefix := e.ID + ":"
			linked := 0
			for id := range related {
				if strings.HasPrefix(id, prefix) {
					linked++
				}
			}
			for _, other := range entries {
				if linked >= maxSuffixLinks {
					break
				}
				if other.ParentStructure != e.ID || other.ID == e.ID {
					continue
				}
				if _, ok := related[other.ID]; ok {
					continue
				}
				related[other.ID] = struct{}{}
				linked++
			}
		}

		for _, pair := range complementaryPairs {
			switch e.ID {
			case pair[0]:
				if _, ok := byID[pair[1]]; ok {
					related[pair[1]] = struct{}{}
				}
			case pair[1]:
				if _, ok := byID[pair[0]]; ok {
					related[pair[0]] = struct{}{}
				}
			}
		}

		// Whole-word mentions of other entries' names in the
		// description. Substring matches would link VESSEL into every
		// description containing VESSELALT.
		if e.Description != "" {
			desc := strings.ToUpper(e.Description)
			for _, m := range names {
				if !m.re.MatchString(desc) {
					continue
				}
				for _, id := range m.ids {
					if id != e.ID {
						related[id] = struct{}{}
					}
				}
			}
		}

		delete(related, e.ID)
		e.Related = sortAndCap(related, maxRelated)
	}
}

// sortAndCap flattens the set in ID order and truncates it. Sorting
// before truncation keeps the surviving links stable across runs.
func sortAndCap(ids map[string]struct{}, limit int) []string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	slices.Sort(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
