package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/enrich"
	"github.com/kspcapcom/kosdex/fetch"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	idx, res, err := runPipeline(deps)
	if err != nil {
		return err
	}

	if err := deps.Writer.WriteIndex(deps.Ctx, idx, c.Output); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	printSummary(deps.Stdout, res)
	fmt.Fprintf(deps.Stdout, "\nWrote %d entries to %s\n", len(idx.Entries), c.Output)
	return nil
}

// runPipeline executes the shared discover/harvest/parse/enrich
// sequence and assembles the index document.
func runPipeline(deps *Dependencies) (*kosdex.Index, *enrich.Result, error) {
	pages, err := deps.Discoverer.DiscoverPages(deps.Ctx, deps.BaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("page discovery failed: %w", err)
	}
	if len(pages) == 0 {
		return nil, nil, fmt.Errorf("no documentation pages found at %s", deps.BaseURL)
	}
	fmt.Fprintf(deps.Stdout, "Discovered %d pages\n", len(pages))

	cached, failed := 0, 0
	harvested, err := deps.Harvester.HarvestAll(deps.Ctx, pages, func(p kosdex.HarvestProgress) {
		switch {
		case p.Error != nil:
			failed++
			fmt.Fprintf(deps.Stderr, "  failed %s: %v\n", fetch.TruncateURL(p.URL, 60), p.Error)
		case p.FromCache:
			cached++
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("harvest failed: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Harvested %d pages (%d cached, %d failed)\n",
		len(harvested), cached, failed)

	var entries []*kosdex.Entry
	for _, page := range harvested {
		parsers := deps.Registry.ForPage(kosdex.DocPage{URL: page.URL, Kind: page.Kind})
		for _, parser := range parsers {
			parsed, err := parser.ParsePage(page)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "  %s parser failed on %s: %v\n",
					parser.Name(), fetch.TruncateURL(page.URL, 60), err)
				continue
			}
			entries = append(entries, parsed...)
		}
	}

	res := deps.Pipeline.Run(entries, deps.BaseURL)

	idx := &kosdex.Index{
		SchemaVersion: kosdex.SchemaVersion,
		KOSMinVersion: kosdex.KOSMinVersion,
		GeneratedAt:   time.Now().UTC(),
		SourceURL:     deps.BaseURL,
		Entries:       res.Entries,
		Tags:          res.TagIndex,
	}
	return idx, res, nil
}

// summary display limits.
const (
	topTagCount       = 15
	topStructureCount = 10
)

// printSummary reports what the run produced: entry counts by type,
// the most used tags, suffix coverage per structure, and the pipeline
// diagnostics.
func printSummary(w io.Writer, res *enrich.Result) {
	fmt.Fprintf(w, "\nEntries: %d\n", len(res.Entries))

	typeOrder := []kosdex.EntryType{
		kosdex.EntryTypeStructure,
		kosdex.EntryTypeSuffix,
		kosdex.EntryTypeFunction,
		kosdex.EntryTypeKeyword,
		kosdex.EntryTypeConstant,
		kosdex.EntryTypeCommand,
	}
	byType := make(map[kosdex.EntryType]int)
	tagCounts := make(map[string]int)
	suffixCounts := make(map[string]int)
	for _, e := range res.Entries {
		byType[e.Type]++
		for _, tag := range e.Tags {
			tagCounts[tag]++
		}
		if e.Type == kosdex.EntryTypeSuffix && e.ParentStructure != "" {
			suffixCounts[e.ParentStructure]++
		}
	}
	for _, t := range typeOrder {
		if byType[t] > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", t, byType[t])
		}
	}

	fmt.Fprintln(w, "\nTop tags:")
	for _, tc := range topCounts(tagCounts, topTagCount) {
		fmt.Fprintf(w, "  %-16s %d\n", tc.key, tc.count)
	}

	if len(suffixCounts) > 0 {
		fmt.Fprintln(w, "\nStructure coverage:")
		for _, sc := range topCounts(suffixCounts, topStructureCount) {
			fmt.Fprintf(w, "  %-16s %d suffixes\n", sc.key, sc.count)
		}
	}

	fmt.Fprintf(w, "\nFrequency: %d common, %d moderate, %d rare\n",
		res.FrequencyCounts[kosdex.FrequencyCommon],
		res.FrequencyCounts[kosdex.FrequencyModerate],
		res.FrequencyCounts[kosdex.FrequencyRare])
	fmt.Fprintf(w, "Injected fallback entries: %d\n", res.Injected)
	fmt.Fprintf(w, "Uncategorized entries: %d\n", res.Uncategorized)
	fmt.Fprintf(w, "Validation warnings: %d\n", len(res.Warnings))
}

type keyCount struct {
	key   string
	count int
}

// topCounts returns the n largest counts, ties broken by key for
// stable output.
func topCounts(counts map[string]int, n int) []keyCount {
	out := make([]keyCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
