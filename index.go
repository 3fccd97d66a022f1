package kosdex

import (
	"context"
	"time"
)

// Index is the complete, enriched knowledge base assembled from the kOS
// documentation site. One build produces one index.
type Index struct {
	// SchemaVersion identifies the shape of the serialized index.
	SchemaVersion string

	// ContentVersion fingerprints the entry content. Two indexes built
	// from identical entries share a content version regardless of when
	// they were generated.
	ContentVersion string

	// KOSMinVersion is the lowest kOS release the documentation
	// applies to.
	KOSMinVersion string

	GeneratedAt time.Time
	SourceURL   string

	Entries []*Entry

	// Tags maps every tag carried by at least one entry to a short
	// human-readable description.
	Tags map[string]string
}

// Validate returns an error if the index or any of its entries contain
// invalid fields.
func (idx *Index) Validate() error {
	if idx.SchemaVersion == "" {
		return Errorf(EINVALID, "schema version required")
	}
	if idx.SourceURL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	for _, e := range idx.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Entry returns the entry with the given ID, or nil if the index does
// not contain it.
func (idx *Index) Entry(id string) *Entry {
	for _, e := range idx.Entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// IndexWriter serializes an index to a destination path.
type IndexWriter interface {
	WriteIndex(ctx context.Context, idx *Index, path string) error
}

// Exporter renders an index as a set of per-entry files for human
// browsing.
type Exporter interface {
	ExportIndex(ctx context.Context, idx *Index, dir string) error
}
