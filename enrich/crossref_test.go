package enrich_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/enrich"
)

func TestCrossReference(t *testing.T) {
	t.Parallel()

	t.Run("links a suffix to its parent structure", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "VESSEL", Name: "VESSEL", Type: kosdex.EntryTypeStructure},
			{ID: "VESSEL:MASS", Name: "MASS", Type: kosdex.EntryTypeSuffix, ParentStructure: "VESSEL"},
		}

		enrich.CrossReference(entries)

		assert.Contains(t, entries[1].Related, "VESSEL")
	})

	t.Run("skips a parent that is not in the entry set", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "GHOST:MASS", Name: "MASS", Type: kosdex.EntryTypeSuffix, ParentStructure: "GHOST"},
		}

		enrich.CrossReference(entries)

		assert.Empty(t, entries[0].Related)
	})

	t.Run("links a structure to at most four of its suffixes", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "ENGINE", Name: "ENGINE", Type: kosdex.EntryTypeStructure},
			{ID: "ENGINE:S1", Name: "S1", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S2", Name: "S2", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S3", Name: "S3", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S4", Name: "S4", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S5", Name: "S5", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S6", Name: "S6", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
		}

		enrich.CrossReference(entries)

		assert.Equal(t, []string{"ENGINE:S1", "ENGINE:S2", "ENGINE:S3", "ENGINE:S4"}, entries[0].Related)
	})

	t.Run("counts pre-existing suffix links against the limit", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{
				ID: "ENGINE", Name: "ENGINE", Type: kosdex.EntryTypeStructure,
				Related: []string{"ENGINE:S5", "ENGINE:S6"},
			},
			{ID: "ENGINE:S1", Name: "S1", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S2", Name: "S2", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S3", Name: "S3", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S5", Name: "S5", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
			{ID: "ENGINE:S6", Name: "S6", Type: kosdex.EntryTypeSuffix, ParentStructure: "ENGINE"},
		}

		enrich.CrossReference(entries)

		// Two links carried in leave room for two more.
		assert.Equal(t, []string{"ENGINE:S1", "ENGINE:S2", "ENGINE:S5", "ENGINE:S6"}, entries[0].Related)
	})

	t.Run("links complementary pairs in both directions", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "PROGRADE", Name: "PROGRADE", Type: kosdex.EntryTypeConstant},
			{ID: "RETROGRADE", Name: "RETROGRADE", Type: kosdex.EntryTypeConstant},
		}

		enrich.CrossReference(entries)

		assert.Contains(t, entries[0].Related, "RETROGRADE")
		assert.Contains(t, entries[1].Related, "PROGRADE")
	})

	t.Run("skips a pair when the counterpart is missing", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "LOCK", Name: "LOCK", Type: kosdex.EntryTypeKeyword},
		}

		enrich.CrossReference(entries)

		assert.Empty(t, entries[0].Related)
	})

	t.Run("links whole word mentions in descriptions", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "VESSEL", Name: "VESSEL", Type: kosdex.EntryTypeStructure},
			{
				ID: "TARGET", Name: "TARGET", Type: kosdex.EntryTypeKeyword,
				Description: "The currently targeted vessel or body.",
			},
		}

		enrich.CrossReference(entries)

		assert.Contains(t, entries[1].Related, "VESSEL")
	})

	t.Run("ignores substring mentions", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "ALT", Name: "ALT", Type: kosdex.EntryTypeKeyword},
			{
				ID: "RADAR", Name: "RADAR", Type: kosdex.EntryTypeKeyword,
				Description: "Reads the ALTIMETER instrument.",
			},
		}

		enrich.CrossReference(entries)

		assert.Empty(t, entries[1].Related)
	})

	t.Run("never links an entry to itself", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{
				ID: "PROGRADE", Name: "PROGRADE", Type: kosdex.EntryTypeConstant,
				Description: "PROGRADE points along the orbital velocity.",
				Related:     []string{"PROGRADE"},
			},
		}

		enrich.CrossReference(entries)

		assert.NotContains(t, entries[0].Related, "PROGRADE")
	})

	t.Run("keeps pre-existing related ids", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "WARP", Name: "WARP", Type: kosdex.EntryTypeKeyword, Related: []string{"KUNIVERSE", "GHOST"}},
		}

		enrich.CrossReference(entries)

		// Unresolvable carried-in ids survive here; reference
		// validation prunes them later.
		assert.ElementsMatch(t, []string{"KUNIVERSE", "GHOST"}, entries[0].Related)
	})

	t.Run("caps related at ten sorted by id", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{
				ID: "HUB", Name: "HUB", Type: kosdex.EntryTypeStructure,
				Description: "Mentions M1 M2 M3 M4 M5 M6 M7 M8 M9 M10 M11 M12 in one line.",
			},
		}
		for _, name := range []string{"M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8", "M9", "M10", "M11", "M12"} {
			entries = append(entries, &kosdex.Entry{ID: name, Name: name, Type: kosdex.EntryTypeConstant})
		}

		enrich.CrossReference(entries)

		require.Len(t, entries[0].Related, 10)
		assert.Equal(t, []string{"M1", "M10", "M11", "M12", "M2", "M3", "M4", "M5", "M6", "M7"}, entries[0].Related)
	})
}
