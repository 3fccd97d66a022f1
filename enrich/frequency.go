package enrich

import (
	"strings"

	"github.com/kspcapcom/kosdex"
)

// FrequencyClassifier assigns a usage frequency to entries. The rules
// form a strict decision list; the first matching rule wins.
type FrequencyClassifier struct {
	common   map[string]struct{}
	rare     map[string]struct{}
	prefixes []string
}

// NewFrequencyClassifier returns a classifier backed by the default
// allow/deny lists.
func NewFrequencyClassifier() *FrequencyClassifier {
	return &FrequencyClassifier{
		common:   commonEntries,
		rare:     rareEntries,
		prefixes: commonPrefixes,
	}
}

// Classify returns the usage frequency for an entry.
func (c *FrequencyClassifier) Classify(e *kosdex.Entry) kosdex.Frequency {
	id := strings.ToUpper(e.ID)
	name := strings.ToUpper(e.Name)

	if e.Deprecated {
		return kosdex.FrequencyRare
	}

	if c.contains(c.common, id) || c.contains(c.common, name) {
		return kosdex.FrequencyCommon
	}

	if c.contains(c.rare, id) || c.contains(c.rare, name) {
		return kosdex.FrequencyRare
	}

	// Suffixes of common structures are at least moderately used.
	if e.ParentStructure != "" {
		parent := strings.ToUpper(e.ParentStructure)
		if c.contains(c.common, parent) || c.contains(c.common, parent+":"+name) {
			return kosdex.FrequencyModerate
		}
	}

	for _, prefix := range c.prefixes {
		if strings.HasPrefix(id, prefix) {
			return kosdex.FrequencyModerate
		}
	}

	if strings.Contains(id, "GUI") || strings.Contains(id, "ADDON") {
		return kosdex.FrequencyRare
	}

	return kosdex.FrequencyModerate
}

func (c *FrequencyClassifier) contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
