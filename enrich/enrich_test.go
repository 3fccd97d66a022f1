package enrich_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/enrich"
)

const docsURL = "https://ksp-kos.github.io/KOS/"

func rawEntries() []*kosdex.Entry {
	return []*kosdex.Entry{
		{
			ID: "VESSEL", Name: "VESSEL", Type: kosdex.EntryTypeStructure,
			Description: "A vessel in flight or on the ground.",
			SourceRef:   docsURL + "structures/vessels/vessel.html",
		},
		{
			ID: "VESSEL:ALTITUDE", Name: "ALTITUDE", Type: kosdex.EntryTypeSuffix,
			ParentStructure: "VESSEL", ReturnType: "Scalar", Access: kosdex.AccessGet,
			Description: "Altitude above sea level in meters.",
			SourceRef:   docsURL + "structures/vessels/vessel.html#altitude",
		},
		{
			ID: "PROGRADE", Name: "PROGRADE", Type: kosdex.EntryTypeConstant,
			ReturnType:  "Direction",
			Description: "A direction pointing along the orbital velocity.",
			SourceRef:   docsURL + "math/direction.html",
		},
		{
			// Duplicate with less detail; should merge away.
			ID: "PROGRADE", Name: "PROGRADE", Type: kosdex.EntryTypeConstant,
			Related: []string{"VESSEL"},
		},
	}
}

func TestPipelineRun(t *testing.T) {
	t.Parallel()

	t.Run("injects fallback entries for missing identifiers", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		// RETROGRADE is injected; PROGRADE came from the parse.
		retro := findEntry(t, res.Entries, "RETROGRADE")
		assert.Equal(t, docsURL, retro.SourceRef)
		assert.Equal(t, 9, res.Injected)
	})

	t.Run("does not re-inject identifiers that were parsed", func(t *testing.T) {
		t.Parallel()

		entries := rawEntries()
		entries = append(entries, &kosdex.Entry{
			ID: "THROTTLE", Name: "THROTTLE", Type: kosdex.EntryTypeKeyword,
			Description: "Parsed throttle entry.",
		})

		res := enrich.New().Run(entries, docsURL)

		throttle := findEntry(t, res.Entries, "THROTTLE")
		assert.Equal(t, "Parsed throttle entry.", throttle.Description)
		assert.Equal(t, 8, res.Injected)
	})

	t.Run("ids are unique after the run", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		seen := make(map[string]bool)
		for _, e := range res.Entries {
			assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
			seen[e.ID] = true
		}
	})

	t.Run("complementary pairs reference each other", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		prograde := findEntry(t, res.Entries, "PROGRADE")
		retrograde := findEntry(t, res.Entries, "RETROGRADE")

		assert.Contains(t, prograde.Related, "RETROGRADE")
		assert.Contains(t, retrograde.Related, "PROGRADE")
	})

	t.Run("related lists are bounded and never self-referential", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		for _, e := range res.Entries {
			assert.LessOrEqual(t, len(e.Related), 10, "entry %s", e.ID)
			assert.NotContains(t, e.Related, e.ID, "entry %s", e.ID)
		}
	})

	t.Run("every related id resolves", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		ids := make(map[string]bool, len(res.Entries))
		for _, e := range res.Entries {
			ids[e.ID] = true
		}
		for _, e := range res.Entries {
			for _, id := range e.Related {
				assert.True(t, ids[id], "entry %s references unknown %s", e.ID, id)
			}
		}
	})

	t.Run("every entry gets tags a category and a frequency", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		for _, e := range res.Entries {
			assert.NotEmpty(t, e.Tags, "entry %s", e.ID)
			assert.NotEmpty(t, e.Category, "entry %s", e.ID)
			assert.True(t, e.UsageFrequency.Valid(), "entry %s", e.ID)
		}
	})

	t.Run("frequency counts add up", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		total := 0
		for _, n := range res.FrequencyCounts {
			total += n
		}
		assert.Equal(t, len(res.Entries), total)
	})

	t.Run("tag index covers every used tag", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		for _, e := range res.Entries {
			for _, tag := range e.Tags {
				assert.Contains(t, res.TagIndex, tag, "entry %s tag %s", e.ID, tag)
			}
		}
	})

	t.Run("merges duplicates keeping the richer entry", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		prograde := findEntry(t, res.Entries, "PROGRADE")
		assert.Equal(t, "A direction pointing along the orbital velocity.", prograde.Description)
		assert.Contains(t, prograde.Related, "VESSEL")
	})

	t.Run("reports completeness after enrichment", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(rawEntries(), docsURL)

		assert.Zero(t, res.Completeness.MissingCategory)
		assert.Zero(t, res.Completeness.MissingFrequency)
		assert.Zero(t, res.Completeness.MissingDescription)
	})

	t.Run("empty input still yields the fallback entries", func(t *testing.T) {
		t.Parallel()

		res := enrich.New().Run(nil, docsURL)

		assert.Equal(t, 9, res.Injected)
		assert.Len(t, res.Entries, 9)
	})
}

func findEntry(t *testing.T, entries []*kosdex.Entry, id string) *kosdex.Entry {
	t.Helper()
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	require.Failf(t, "entry not found", "no entry with id %s", id)
	return nil
}
