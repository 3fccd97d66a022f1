// Package enrich turns raw parsed documentation entries into the final
// index content. It injects fallback entries the parsers tend to miss,
// collapses duplicates, links related entries, and assigns tags,
// categories, and usage frequency from curated rule tables.
//
// All rule tables are immutable and compiled once; a Pipeline can be
// shared across goroutines.
package enrich

import (
	"github.com/kspcapcom/kosdex"
)

// Pipeline runs the full enrichment sequence over a set of entries.
type Pipeline struct {
	tagger    *Tagger
	category  *Categorizer
	frequency *FrequencyClassifier
}

// New returns a Pipeline backed by the default rule tables.
func New() *Pipeline {
	return &Pipeline{
		tagger:    NewTagger(),
		category:  NewCategorizer(),
		frequency: NewFrequencyClassifier(),
	}
}

// Result carries the enriched entries along with everything the build
// wants to report about the run.
type Result struct {
	// Entries is the final deduplicated, enriched entry set.
	Entries []*kosdex.Entry

	// Injected counts fallback entries added because the parsed pages
	// did not produce them.
	Injected int

	// Warnings lists validation findings. Warnings never abort a
	// build; they mark entries worth fixing at the source.
	Warnings []string

	// Uncategorized counts entries that fell through every category
	// rule and landed in Miscellaneous.
	Uncategorized int

	// FrequencyCounts tallies entries per usage frequency bucket.
	FrequencyCounts map[kosdex.Frequency]int

	// Completeness tallies metadata gaps remaining after enrichment.
	Completeness Completeness

	// TagIndex maps every used tag to its description.
	TagIndex map[string]string
}

// Run enriches the entries in place and returns the final set. Stages
// run in a fixed order: fallback injection, deduplication,
// cross-referencing, tagging, categorization, frequency classification,
// validation. sourceURL becomes the source reference of any injected
// entry.
func (p *Pipeline) Run(entries []*kosdex.Entry, sourceURL string) *Result {
	res := &Result{
		FrequencyCounts: make(map[kosdex.Frequency]int, 3),
	}

	entries, res.Injected = InjectEssentials(entries, sourceURL)
	entries = Deduplicate(entries)

	CrossReference(entries)

	for _, e := range entries {
		p.tagger.Apply(e)
	}

	for _, e := range entries {
		category, fallback := p.category.Categorize(e)
		e.Category = category
		if fallback {
			res.Uncategorized++
		}
	}

	for _, e := range entries {
		e.UsageFrequency = p.frequency.Classify(e)
		res.FrequencyCounts[e.UsageFrequency]++
	}

	res.Warnings = append(res.Warnings, Validate(entries)...)
	res.Warnings = append(res.Warnings, ValidateReferences(entries)...)
	res.Warnings = append(res.Warnings, ValidateTagCoverage(entries)...)

	res.Completeness = CheckCompleteness(entries)
	res.TagIndex = TagIndex(entries)
	res.Entries = entries
	return res
}
