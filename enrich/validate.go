package enrich

import (
	"fmt"

	"github.com/kspcapcom/kosdex"
)

// maxDescriptionLen is the length above which a description is flagged
// as suspiciously long, usually a sign the parser swallowed a whole
// section instead of one entry's text.
const maxDescriptionLen = 1000

// Validate checks entries for structural problems and returns one
// warning per finding. Validation never fails the pipeline; the
// warnings are surfaced so the source pages can be fixed upstream.
func Validate(entries []*kosdex.Entry) []string {
	var warnings []string
	for _, e := range entries {
		if e.ID == "" {
			warnings = append(warnings, fmt.Sprintf("entry missing ID: %q", e.Name))
		}
		if e.Name == "" {
			warnings = append(warnings, fmt.Sprintf("entry missing name: %s", e.ID))
		}
		if n := len(e.Description); n > maxDescriptionLen {
			warnings = append(warnings, fmt.Sprintf("entry %s has very long description (%d chars)", e.ID, n))
		}
		if e.Description == "" {
			warnings = append(warnings, fmt.Sprintf("entry %s has no description", e.ID))
		}
		if e.Type == kosdex.EntryTypeSuffix && e.ParentStructure == "" {
			warnings = append(warnings, fmt.Sprintf("suffix %s has no parent structure", e.ID))
		}
		if e.Access == kosdex.AccessMethod && e.Signature == "" {
			warnings = append(warnings, fmt.Sprintf("method %s has no signature", e.ID))
		}
	}
	return warnings
}

// ValidateReferences checks that cross-references resolve within the
// entry set. Related links to unknown IDs are removed in place without
// a warning; a parent structure that does not resolve is left alone
// and reported, since dropping it would silently orphan the suffix.
func ValidateReferences(entries []*kosdex.Entry) []string {
	ids := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		ids[e.ID] = struct{}{}
	}

	var warnings []string
	for _, e := range entries {
		kept := e.Related[:0]
		for _, id := range e.Related {
			if _, ok := ids[id]; ok {
				kept = append(kept, id)
			}
		}
		e.Related = kept

		if e.ParentStructure != "" {
			if _, ok := ids[e.ParentStructure]; !ok {
				warnings = append(warnings, fmt.Sprintf("entry %s references non-existent parent: %s", e.ID, e.ParentStructure))
			}
		}
	}
	return warnings
}

// ValidateTagCoverage reports entries that ended up with fewer than
// two tags despite the tagging floor.
func ValidateTagCoverage(entries []*kosdex.Entry) []string {
	var warnings []string
	for _, e := range entries {
		if len(e.Tags) < minTags {
			warnings = append(warnings, fmt.Sprintf("entry %s has only %d tags: %v", e.ID, len(e.Tags), e.Tags))
		}
	}
	return warnings
}

// Completeness counts entries missing enrichment metadata.
type Completeness struct {
	MissingCategory    int
	MissingFrequency   int
	MissingDescription int
	InsufficientTags   int
}

// CheckCompleteness tallies metadata gaps across the entry set.
func CheckCompleteness(entries []*kosdex.Entry) Completeness {
	var c Completeness
	for _, e := range entries {
		if e.Category == "" {
			c.MissingCategory++
		}
		if e.UsageFrequency == "" {
			c.MissingFrequency++
		}
		if e.Description == "" {
			c.MissingDescription++
		}
		if len(e.Tags) < minTags {
			c.InsufficientTags++
		}
	}
	return c
}
