package kosdex

// EntryType classifies a documentation entry.
type EntryType string

// Entry types.
const (
	EntryTypeStructure EntryType = "structure"
	EntryTypeSuffix    EntryType = "suffix"
	EntryTypeFunction  EntryType = "function"
	EntryTypeKeyword   EntryType = "keyword"
	EntryTypeCommand   EntryType = "command"
	EntryTypeConstant  EntryType = "constant"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeStructure, EntryTypeSuffix, EntryTypeFunction,
		EntryTypeKeyword, EntryTypeCommand, EntryTypeConstant:
		return true
	}
	return false
}

// AccessMode describes how a structure suffix may be used.
type AccessMode string

// Access modes.
const (
	AccessGet    AccessMode = "get"
	AccessSet    AccessMode = "set"
	AccessGetSet AccessMode = "get/set"
	AccessMethod AccessMode = "method"
)

// Valid reports whether a is a known access mode. The empty string is
// valid; not every entry kind carries an access mode.
func (a AccessMode) Valid() bool {
	switch a {
	case "", AccessGet, AccessSet, AccessGetSet, AccessMethod:
		return true
	}
	return false
}

// Frequency estimates how often an entry appears in everyday scripts.
type Frequency string

// Usage frequency buckets.
const (
	FrequencyCommon   Frequency = "common"
	FrequencyModerate Frequency = "moderate"
	FrequencyRare     Frequency = "rare"
)

// Valid reports whether f is a known frequency bucket.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyCommon, FrequencyModerate, FrequencyRare:
		return true
	}
	return false
}

// Entry represents a single documented item of the kOS scripting
// language: a structure, one of its suffixes, a built-in function, a
// language keyword, a command, or a bound constant.
//
// IDs are canonical uppercase identifiers. Suffix IDs take the form
// "STRUCTURE:NAME" (e.g. "VESSEL:ALTITUDE"); all other entries use the
// bare uppercase name.
type Entry struct {
	ID   string
	Name string
	Type EntryType

	// ParentStructure is the owning structure ID for suffix entries.
	ParentStructure string

	ReturnType string
	Access     AccessMode
	Signature  string

	Description string

	// Snippet is a short usage example in kOS script.
	Snippet string

	// SourceRef is the documentation URL the entry was extracted from,
	// optionally carrying a #fragment pointing at the exact section.
	SourceRef string

	Tags    []string
	Aliases []string
	Related []string

	Deprecated      bool
	DeprecationNote string

	// UsageFrequency and Category are set by enrichment; entries fresh
	// from a parser leave them empty.
	UsageFrequency Frequency
	Category       string
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "entry ID required")
	}
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if !e.Type.Valid() || e.Type == "" {
		return Errorf(EINVALID, "invalid entry type %q", e.Type)
	}
	if !e.Access.Valid() {
		return Errorf(EINVALID, "invalid access mode %q", e.Access)
	}
	if e.UsageFrequency != "" && !e.UsageFrequency.Valid() {
		return Errorf(EINVALID, "invalid usage frequency %q", e.UsageFrequency)
	}
	return nil
}

// Clone returns a deep copy of the entry. Slices are copied so that
// enrichment of the clone never mutates the original.
func (e *Entry) Clone() *Entry {
	other := *e
	other.Tags = append([]string(nil), e.Tags...)
	other.Aliases = append([]string(nil), e.Aliases...)
	other.Related = append([]string(nil), e.Related...)
	return &other
}
