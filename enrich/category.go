package enrich

import (
	"strings"

	"github.com/kspcapcom/kosdex"
)

// Categorizer assigns exactly one category label per entry. It is a
// total function: every entry receives a category, falling back to a
// type-based default when no table row applies.
type Categorizer struct {
	structures []structureCategory
	exact      map[string]string
	types      map[kosdex.EntryType]string
}

// NewCategorizer returns a Categorizer backed by the default category
// tables.
func NewCategorizer() *Categorizer {
	exact := make(map[string]string, len(structureCategories))
	for _, sc := range structureCategories {
		exact[sc.name] = sc.category
	}
	return &Categorizer{
		structures: structureCategories,
		exact:      exact,
		types:      typeCategories,
	}
}

// Categorize returns the entry's category. The second return value
// reports whether the entry fell all the way through to the
// "Miscellaneous" fallback, which the pipeline counts as uncategorized.
func (c *Categorizer) Categorize(e *kosdex.Entry) (string, bool) {
	// Functions, keywords, commands, and constants categorize by type
	// alone.
	if category, ok := c.types[e.Type]; ok {
		return category, false
	}

	// Structures and suffixes resolve through the owning structure.
	structureName := e.ParentStructure
	if structureName == "" {
		structureName = e.Name
	}
	upper := strings.ToUpper(structureName)

	if category, ok := c.exact[upper]; ok {
		return category, false
	}

	// First colon segment, for names like GUI:BUTTON.
	if segment, _, found := strings.Cut(upper, ":"); found {
		if category, ok := c.exact[segment]; ok {
			return category, false
		}
	}

	// Last resort: scan for a structure the ID belongs to.
	idUpper := strings.ToUpper(e.ID)
	for _, sc := range c.structures {
		if idUpper == sc.name || strings.HasPrefix(idUpper, sc.name+":") {
			return sc.category, false
		}
	}

	switch e.Type {
	case kosdex.EntryTypeStructure:
		return "Structures", false
	case kosdex.EntryTypeSuffix:
		return "Structure Members", false
	default:
		return "Miscellaneous", true
	}
}
