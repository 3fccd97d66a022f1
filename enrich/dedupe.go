package enrich

import (
	"slices"

	"github.com/kspcapcom/kosdex"
)

// Deduplicate collapses entries that share an ID into one entry per
// identifier, preserving first-seen order. When an ID repeats, the
// higher-scoring entry wins outright; on a tie (or a lower-scoring
// newcomer) the newcomer's unique content is merged into the kept entry
// instead. The asymmetry is deliberate: replacement discards the old
// entry wholesale, merging never discards anything.
func Deduplicate(entries []*kosdex.Entry) []*kosdex.Entry {
	out := make([]*kosdex.Entry, 0, len(entries))
	pos := make(map[string]int, len(entries))

	for _, e := range entries {
		i, ok := pos[e.ID]
		if !ok {
			pos[e.ID] = len(out)
			out = append(out, e)
			continue
		}

		if QualityScore(e) > QualityScore(out[i]) {
			out[i] = e
		} else {
			merge(out[i], e)
		}
	}

	return out
}

// QualityScore measures an entry's descriptive richness. Duplicate
// resolution keeps the higher-scoring extraction of the same
// identifier.
func QualityScore(e *kosdex.Entry) int {
	score := 0

	if e.Description != "" {
		score += min(len(e.Description), 200)
	}
	if e.Snippet != "" {
		score += 50
	}
	score += 5 * len(e.Tags)
	score += 3 * len(e.Related)
	if kosdex.HasFragment(e.SourceRef) {
		// An anchored source ref points at the exact section.
		score += 10
	}

	return score
}

// merge copies the loser's unique content into the kept entry. Snippet
// and description only fill empty fields; tags and related are unioned
// preserving the kept entry's order.
func merge(kept, loser *kosdex.Entry) {
	if kept.Snippet == "" && loser.Snippet != "" {
		kept.Snippet = loser.Snippet
	}
	if kept.Description == "" && loser.Description != "" {
		kept.Description = loser.Description
	}
	kept.Tags = appendMissing(kept.Tags, loser.Tags)
	kept.Related = appendMissing(kept.Related, loser.Related)
}

func appendMissing(base, extra []string) []string {
	for _, s := range extra {
		if !slices.Contains(base, s) {
			base = append(base, s)
		}
	}
	return base
}
