package enrich_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/enrich"
)

func TestTagIndex(t *testing.T) {
	t.Parallel()

	t.Run("describes used tags from the curated table", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "A", Tags: []string{"orbit", "vessel"}},
		}

		index := enrich.TagIndex(entries)

		assert.Equal(t, map[string]string{
			"orbit":  "Orbital mechanics and trajectory",
			"vessel": "Vessel properties and state",
		}, index)
	})

	t.Run("title-cases unknown tags", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "A", Tags: []string{"warpdrive"}},
		}

		index := enrich.TagIndex(entries)

		assert.Equal(t, "Warpdrive", index["warpdrive"])
	})

	t.Run("omits unused tags", func(t *testing.T) {
		t.Parallel()

		entries := []*kosdex.Entry{
			{ID: "A", Tags: []string{"orbit"}},
		}

		index := enrich.TagIndex(entries)

		assert.NotContains(t, index, "gui")
	})
}

func TestUsedTags(t *testing.T) {
	t.Parallel()

	entries := []*kosdex.Entry{
		{ID: "A", Tags: []string{"vessel", "orbit"}},
		{ID: "B", Tags: []string{"orbit", "core"}},
	}

	assert.Equal(t, []string{"core", "orbit", "vessel"}, enrich.UsedTags(entries))
}
