package kosdex_test

import (
	"testing"

	"github.com/kspcapcom/kosdex"
	"github.com/stretchr/testify/assert"
)

func TestHasFragment(t *testing.T) {
	t.Parallel()

	assert.True(t, kosdex.HasFragment("https://ksp-kos.github.io/KOS/structures/vessels/vessel.html#altitude"))
	assert.False(t, kosdex.HasFragment("https://ksp-kos.github.io/KOS/structures/vessels/vessel.html"))
	assert.False(t, kosdex.HasFragment(""))
}

func TestWithFragment(t *testing.T) {
	t.Parallel()

	t.Run("appends anchor", func(t *testing.T) {
		t.Parallel()

		got := kosdex.WithFragment("https://example.test/page.html", "altitude")

		assert.Equal(t, "https://example.test/page.html#altitude", got)
	})

	t.Run("replaces existing fragment", func(t *testing.T) {
		t.Parallel()

		got := kosdex.WithFragment("https://example.test/page.html#old", "new")

		assert.Equal(t, "https://example.test/page.html#new", got)
	})

	t.Run("empty anchor returns bare page URL", func(t *testing.T) {
		t.Parallel()

		got := kosdex.WithFragment("https://example.test/page.html#old", "")

		assert.Equal(t, "https://example.test/page.html", got)
	})
}

func TestOutline(t *testing.T) {
	t.Parallel()

	t.Run("extracts H1 heading", func(t *testing.T) {
		t.Parallel()

		markdown := "# Vessels\n\nSome content here."

		headings := kosdex.Outline(markdown)

		assert.Len(t, headings, 1)
		assert.Equal(t, 1, headings[0].Level)
		assert.Equal(t, "Vessels", headings[0].Title)
		assert.Equal(t, "vessels", headings[0].Anchor)
	})

	t.Run("extracts H2 through H6 headings", func(t *testing.T) {
		t.Parallel()

		markdown := `# H1 Title
## H2 Title
### H3 Title
#### H4 Title
##### H5 Title
###### H6 Title`

		headings := kosdex.Outline(markdown)

		assert.Len(t, headings, 6)
		for i, h := range headings {
			assert.Equal(t, i+1, h.Level)
		}
	})

	t.Run("handles duplicate headings with numeric suffixes", func(t *testing.T) {
		t.Parallel()

		markdown := `# Example
## Example
### Example`

		headings := kosdex.Outline(markdown)

		assert.Len(t, headings, 3)
		assert.Equal(t, "example", headings[0].Anchor)
		assert.Equal(t, "example-1", headings[1].Anchor)
		assert.Equal(t, "example-2", headings[2].Anchor)
	})

	t.Run("returns empty slice for empty markdown", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, kosdex.Outline(""))
	})

	t.Run("returns empty slice for markdown without headings", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, kosdex.Outline("Just some text\n\nWith paragraphs."))
	})

	t.Run("ignores code blocks with hash symbols", func(t *testing.T) {
		t.Parallel()

		markdown := "# Real Heading\n\n```\n# comment in kOS script\nPRINT SHIP:ALTITUDE.\n```\n\n## Another Real Heading"

		headings := kosdex.Outline(markdown)

		assert.Len(t, headings, 2)
		assert.Equal(t, "Real Heading", headings[0].Title)
		assert.Equal(t, "Another Real Heading", headings[1].Title)
	})

	t.Run("requires a space after the hash marks", func(t *testing.T) {
		t.Parallel()

		headings := kosdex.Outline("#NoSpace\n\n# Spaced")

		assert.Len(t, headings, 1)
		assert.Equal(t, "Spaced", headings[0].Title)
	})
}

func TestHeadingAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Getting Started", "getting-started"},
		{"suffix identifier", "SHIP:APOAPSIS", "shipapoapsis"},
		{"special characters", "API Reference (v2.0)", "api-reference-v20"},
		{"collapses hyphen runs", "a - b", "a-b"},
		{"empty title", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, kosdex.HeadingAnchor(tt.title))
		})
	}
}
