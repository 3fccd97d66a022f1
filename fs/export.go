package fs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kspcapcom/kosdex"
)

var _ kosdex.Exporter = (*Exporter)(nil)

// Exporter renders the index as one Markdown reference file per
// category. The export is staged in a temporary directory and renamed
// into place on success.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// exportFrontmatter is the YAML header of a category file.
type exportFrontmatter struct {
	Category    string `yaml:"category"`
	EntryCount  int    `yaml:"entryCount"`
	GeneratedAt string `yaml:"generatedAt"`
}

// ExportIndex writes one Markdown file per category into dir. An
// existing export at dir is replaced atomically.
func (x *Exporter) ExportIndex(ctx context.Context, idx *kosdex.Index, dir string) error {
	if err := idx.Validate(); err != nil {
		return err
	}

	byCategory := make(map[string][]*kosdex.Entry)
	for _, e := range idx.Entries {
		category := e.Category
		if category == "" {
			category = "Miscellaneous"
		}
		byCategory[category] = append(byCategory[category], e)
	}

	tmpDir := dir + ".tmp"
	if err := os.RemoveAll(tmpDir); err != nil {
		return err
	}
	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		return err
	}

	generatedAt := idx.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	for category, entries := range byCategory {
		if err := ctx.Err(); err != nil {
			os.RemoveAll(tmpDir)
			return err
		}

		sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

		content := formatCategory(category, entries, generatedAt)
		path := filepath.Join(tmpDir, categoryFilename(category))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			os.RemoveAll(tmpDir)
			return err
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		os.RemoveAll(tmpDir)
		return err
	}
	return os.Rename(tmpDir, dir)
}

var nonSlugRE = regexp.MustCompile(`[^a-z0-9]+`)

// categoryFilename slugifies a category name:
// "Built-in Functions" becomes "built-in-functions.md".
func categoryFilename(category string) string {
	slug := nonSlugRE.ReplaceAllString(strings.ToLower(category), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "misc"
	}
	return slug + ".md"
}

// formatCategory renders one category file: YAML frontmatter followed
// by a section per entry.
func formatCategory(category string, entries []*kosdex.Entry, generatedAt time.Time) string {
	var b strings.Builder

	fm, err := yaml.Marshal(&exportFrontmatter{
		Category:    category,
		EntryCount:  len(entries),
		GeneratedAt: generatedAt.UTC().Format(generatedAtFormat),
	})
	if err != nil {
		// Marshaling a struct of strings and ints cannot fail.
		panic(err)
	}

	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString("# ")
	b.WriteString(category)
	b.WriteString("\n")

	for _, e := range entries {
		b.WriteString("\n## ")
		b.WriteString(e.Name)
		b.WriteString("\n\n")

		if e.Deprecated {
			b.WriteString("**Deprecated.**")
			if e.DeprecationNote != "" {
				b.WriteString(" ")
				b.WriteString(e.DeprecationNote)
			}
			b.WriteString("\n\n")
		}

		writeField(&b, "Type", string(e.Type))
		writeField(&b, "Signature", inlineCode(e.Signature))
		writeField(&b, "Returns", e.ReturnType)
		writeField(&b, "Access", string(e.Access))
		writeField(&b, "Parent", e.ParentStructure)
		if len(e.Tags) > 0 {
			writeField(&b, "Tags", strings.Join(e.Tags, ", "))
		}
		b.WriteString("\n")

		if e.Description != "" {
			b.WriteString(e.Description)
			b.WriteString("\n")
		}

		if e.Snippet != "" {
			b.WriteString("\n```\n")
			b.WriteString(e.Snippet)
			if !strings.HasSuffix(e.Snippet, "\n") {
				b.WriteString("\n")
			}
			b.WriteString("```\n")
		}

		if e.SourceRef != "" {
			b.WriteString("\n[Documentation](")
			b.WriteString(e.SourceRef)
			b.WriteString(")\n")
		}
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("- **")
	b.WriteString(label)
	b.WriteString(":** ")
	b.WriteString(value)
	b.WriteString("\n")
}

func inlineCode(s string) string {
	if s == "" {
		return ""
	}
	return "`" + s + "`"
}
