// Package fs serializes a built index to the filesystem: the JSON
// knowledge base and a per-category Markdown export. All writes are
// staged and committed with a rename so a failed run never leaves a
// half-written artifact behind.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/kspcapcom/kosdex"
)

// generatedAtFormat is the timestamp layout used in the serialized
// index.
const generatedAtFormat = "2006-01-02T15:04:05Z"

var _ kosdex.IndexWriter = (*IndexWriter)(nil)

// IndexWriter writes the index as a JSON document.
type IndexWriter struct {
	// Pretty switches to indented output.
	Pretty bool
}

// NewIndexWriter creates a new IndexWriter.
func NewIndexWriter(pretty bool) *IndexWriter {
	return &IndexWriter{Pretty: pretty}
}

// jsonIndex is the serialized shape of an index.
type jsonIndex struct {
	SchemaVersion  string            `json:"schemaVersion"`
	ContentVersion string            `json:"contentVersion"`
	KOSMinVersion  string            `json:"kosMinVersion"`
	GeneratedAt    string            `json:"generatedAt"`
	SourceURL      string            `json:"sourceUrl"`
	Entries        []*jsonEntry      `json:"entries"`
	Tags           map[string]string `json:"tags"`
}

// jsonEntry is the serialized shape of an entry. Optional scalar
// fields render as explicit null when empty; optional collections are
// omitted instead.
type jsonEntry struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	ParentStructure *string  `json:"parentStructure"`
	ReturnType      *string  `json:"returnType"`
	Access          *string  `json:"access"`
	Signature       *string  `json:"signature"`
	Description     *string  `json:"description"`
	Snippet         *string  `json:"snippet"`
	SourceRef       *string  `json:"sourceRef"`
	Category        string   `json:"category"`
	Frequency       string   `json:"frequency"`
	Tags            []string `json:"tags,omitempty"`
	Aliases         []string `json:"aliases,omitempty"`
	Related         []string `json:"related,omitempty"`
	Deprecated      bool     `json:"deprecated,omitempty"`
	DeprecationNote string   `json:"deprecationNote,omitempty"`
}

// nullable maps the empty string to a JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toJSONEntry(e *kosdex.Entry) *jsonEntry {
	je := &jsonEntry{
		ID:              e.ID,
		Name:            e.Name,
		Type:            string(e.Type),
		ParentStructure: nullable(e.ParentStructure),
		ReturnType:      nullable(e.ReturnType),
		Access:          nullable(string(e.Access)),
		Signature:       nullable(e.Signature),
		Description:     nullable(e.Description),
		Snippet:         nullable(e.Snippet),
		SourceRef:       nullable(e.SourceRef),
		Category:        e.Category,
		Frequency:       string(e.UsageFrequency),
		Tags:            e.Tags,
		Aliases:         e.Aliases,
		Related:         e.Related,
	}
	if e.Deprecated {
		je.Deprecated = true
		je.DeprecationNote = e.DeprecationNote
	}
	return je
}

// ContentVersion fingerprints the entry content: the first 12 hex
// characters of the xxhash of the serialized entries. Two indexes with
// identical entries share a version regardless of when they were built.
func ContentVersion(entries []*kosdex.Entry) (string, error) {
	serialized := make([]*jsonEntry, 0, len(entries))
	for _, e := range entries {
		serialized = append(serialized, toJSONEntry(e))
	}
	data, err := json.Marshal(serialized)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))[:12], nil
}

// WriteIndex serializes the index to path. The document is written to
// a temporary file in the target directory and renamed into place, so
// readers never observe a partial index. An empty ContentVersion is
// computed from the entries.
func (w *IndexWriter) WriteIndex(ctx context.Context, idx *kosdex.Index, path string) error {
	if err := idx.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	contentVersion := idx.ContentVersion
	if contentVersion == "" {
		var err error
		contentVersion, err = ContentVersion(idx.Entries)
		if err != nil {
			return err
		}
	}

	generatedAt := idx.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	doc := &jsonIndex{
		SchemaVersion:  idx.SchemaVersion,
		ContentVersion: contentVersion,
		KOSMinVersion:  idx.KOSMinVersion,
		GeneratedAt:    generatedAt.UTC().Format(generatedAtFormat),
		SourceURL:      idx.SourceURL,
		Entries:        make([]*jsonEntry, 0, len(idx.Entries)),
		Tags:           idx.Tags,
	}
	for _, e := range idx.Entries {
		doc.Entries = append(doc.Entries, toJSONEntry(e))
	}
	if doc.Tags == nil {
		doc.Tags = map[string]string{}
	}

	var data []byte
	var err error
	if w.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temporary file next to path and
// renames it into place. The temp file must live in the same directory
// for the rename to be atomic.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
