// Package kosdex builds a normalized, enriched knowledge base of kOS
// scripting-language documentation. It discovers pages on the kOS
// documentation site, extracts typed entries (structures, suffixes,
// functions, keywords, constants, commands), enriches them with tags,
// categories, usage-frequency hints, and cross-reference links, and
// serializes the result as a JSON index for downstream retrieval.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package kosdex

// Documentation site defaults for the kOS docs this tool targets.
const (
	// BaseURL is the root of the published kOS documentation.
	BaseURL = "https://ksp-kos.github.io/KOS/"

	// TOCPath is the table-of-contents page, relative to BaseURL.
	TOCPath = "contents.html"

	// SchemaVersion is the output schema version. The major component must
	// match what index consumers support.
	SchemaVersion = "1.0.0"

	// KOSMinVersion is the kOS release the documentation describes.
	KOSMinVersion = "1.4.0.0"

	// UserAgent identifies this tool to the documentation host.
	UserAgent = "KSPCapcom-DocParser/1.0"
)
