package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/fs"
)

func TestExporter_ExportIndex(t *testing.T) {
	t.Parallel()

	t.Run("writes one file per category", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "export")
		err := fs.NewExporter().ExportIndex(context.Background(), testIndex(), dir)
		require.NoError(t, err)

		names, err := os.ReadDir(dir)
		require.NoError(t, err)

		var files []string
		for _, n := range names {
			files = append(files, n.Name())
		}
		assert.ElementsMatch(t, []string{"vessel-information.md", "commands.md"}, files)
	})

	t.Run("writes YAML frontmatter", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "export")
		err := fs.NewExporter().ExportIndex(context.Background(), testIndex(), dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "commands.md"))
		require.NoError(t, err)

		parts := strings.SplitN(string(data), "---\n", 3)
		require.Len(t, parts, 3, "file should open with a frontmatter block")

		var fm struct {
			Category    string `yaml:"category"`
			EntryCount  int    `yaml:"entryCount"`
			GeneratedAt string `yaml:"generatedAt"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
		assert.Equal(t, "Commands", fm.Category)
		assert.Equal(t, 1, fm.EntryCount)
		assert.Equal(t, "2026-03-14T09:26:53Z", fm.GeneratedAt)
	})

	t.Run("renders entry sections", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "export")
		err := fs.NewExporter().ExportIndex(context.Background(), testIndex(), dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "vessel-information.md"))
		require.NoError(t, err)
		content := string(data)

		assert.Contains(t, content, "# Vessel Information")
		assert.Contains(t, content, "## ALTITUDE")
		assert.Contains(t, content, "- **Type:** suffix")
		assert.Contains(t, content, "- **Returns:** Scalar")
		assert.Contains(t, content, "- **Access:** get")
		assert.Contains(t, content, "- **Parent:** VESSEL")
		assert.Contains(t, content, "- **Tags:** position, vessel")
		assert.Contains(t, content, "The current altitude above sea level.")
		assert.Contains(t, content, "[Documentation](https://ksp-kos.github.io/KOS/structures/vessels/vessel.html#altitude)")
	})

	t.Run("renders snippets as code blocks", func(t *testing.T) {
		t.Parallel()

		idx := testIndex()
		idx.Entries[1].Snippet = "CLEARSCREEN."

		dir := filepath.Join(t.TempDir(), "export")
		err := fs.NewExporter().ExportIndex(context.Background(), idx, dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "commands.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "```\nCLEARSCREEN.\n```")
	})

	t.Run("marks deprecated entries", func(t *testing.T) {
		t.Parallel()

		idx := testIndex()
		idx.Entries[1].Deprecated = true
		idx.Entries[1].DeprecationNote = "Use TERMINAL instead."

		dir := filepath.Join(t.TempDir(), "export")
		err := fs.NewExporter().ExportIndex(context.Background(), idx, dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "commands.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "**Deprecated.** Use TERMINAL instead.")
	})

	t.Run("uncategorized entries land in Miscellaneous", func(t *testing.T) {
		t.Parallel()

		idx := testIndex()
		idx.Entries[1].Category = ""

		dir := filepath.Join(t.TempDir(), "export")
		err := fs.NewExporter().ExportIndex(context.Background(), idx, dir)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "miscellaneous.md"))
		assert.NoError(t, err)
	})

	t.Run("replaces a previous export", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "export")
		require.NoError(t, os.MkdirAll(dir, 0755))
		stale := filepath.Join(dir, "stale-category.md")
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

		err := fs.NewExporter().ExportIndex(context.Background(), testIndex(), dir)
		require.NoError(t, err)

		_, statErr := os.Stat(stale)
		assert.True(t, os.IsNotExist(statErr), "stale files should be gone")

		_, err = os.Stat(dir + ".tmp")
		assert.True(t, os.IsNotExist(err), "staging directory should be cleaned up")
	})

	t.Run("sorts entries by ID within a category", func(t *testing.T) {
		t.Parallel()

		idx := testIndex()
		idx.Entries = append(idx.Entries, &kosdex.Entry{
			ID:             "VESSEL:APOAPSIS",
			Name:           "APOAPSIS",
			Type:           kosdex.EntryTypeSuffix,
			Category:       "Vessel Information",
			UsageFrequency: kosdex.FrequencyCommon,
		})

		dir := filepath.Join(t.TempDir(), "export")
		err := fs.NewExporter().ExportIndex(context.Background(), idx, dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "vessel-information.md"))
		require.NoError(t, err)
		content := string(data)

		altitude := strings.Index(content, "## ALTITUDE")
		apoapsis := strings.Index(content, "## APOAPSIS")
		require.Positive(t, altitude)
		require.Positive(t, apoapsis)
		assert.Less(t, altitude, apoapsis)
	})

	t.Run("rejects an invalid index", func(t *testing.T) {
		t.Parallel()

		idx := testIndex()
		idx.SourceURL = ""

		dir := filepath.Join(t.TempDir(), "export")
		err := fs.NewExporter().ExportIndex(context.Background(), idx, dir)

		require.Error(t, err)
		assert.Equal(t, kosdex.EINVALID, kosdex.ErrorCode(err))
	})
}
