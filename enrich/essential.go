package enrich

import "github.com/kspcapcom/kosdex"

// essential is a hand-authored fallback entry. Sphinx tables on the
// documentation site occasionally change shape and a parser comes back
// empty-handed for an identifier every script depends on; these
// definitions guarantee the index still covers them.
type essential struct {
	id          string
	typ         kosdex.EntryType
	returnType  string
	access      kosdex.AccessMode
	signature   string
	description string
	snippet     string
	tags        []string
	related     []string
}

var essentials = []essential{
	// Direction constants
	{
		id:          "RETROGRADE",
		typ:         kosdex.EntryTypeConstant,
		returnType:  "Direction",
		access:      kosdex.AccessGet,
		description: "A direction pointing opposite to the vessel's orbital velocity. Used for deceleration burns.",
		snippet:     "LOCK STEERING TO RETROGRADE.",
		tags:        []string{"constant", "direction", "navigation", "orbit"},
		related:     []string{"PROGRADE", "NORMAL", "RADIAL"},
	},
	{
		id:          "ANTINORMAL",
		typ:         kosdex.EntryTypeConstant,
		returnType:  "Direction",
		access:      kosdex.AccessGet,
		description: "A direction pointing opposite to normal, perpendicular to the orbit plane.",
		tags:        []string{"constant", "direction", "navigation", "orbit"},
		related:     []string{"NORMAL", "PROGRADE", "RETROGRADE"},
	},
	{
		id:          "RADIAL",
		typ:         kosdex.EntryTypeConstant,
		returnType:  "Direction",
		access:      kosdex.AccessGet,
		description: "A direction pointing away from the body being orbited (radially outward).",
		tags:        []string{"constant", "direction", "navigation", "orbit"},
		related:     []string{"ANTIRADIAL", "PROGRADE", "NORMAL"},
	},
	{
		id:          "ANTIRADIAL",
		typ:         kosdex.EntryTypeConstant,
		returnType:  "Direction",
		access:      kosdex.AccessGet,
		description: "A direction pointing toward the body being orbited (radially inward).",
		tags:        []string{"constant", "direction", "navigation", "orbit"},
		related:     []string{"RADIAL", "PROGRADE", "NORMAL"},
	},
	{
		id:          "SRFPROGRADE",
		typ:         kosdex.EntryTypeConstant,
		returnType:  "Direction",
		access:      kosdex.AccessGet,
		description: "Surface prograde - the direction of travel relative to the surface.",
		tags:        []string{"constant", "direction", "navigation", "flight"},
		related:     []string{"SRFRETROGRADE", "PROGRADE"},
	},
	{
		id:          "SRFRETROGRADE",
		typ:         kosdex.EntryTypeConstant,
		returnType:  "Direction",
		access:      kosdex.AccessGet,
		description: "Surface retrograde - opposite to the direction of travel relative to the surface.",
		tags:        []string{"constant", "direction", "navigation", "flight"},
		related:     []string{"SRFPROGRADE", "RETROGRADE"},
	},

	// Core structures
	{
		id:          "VECTOR",
		typ:         kosdex.EntryTypeStructure,
		description: "A 3D vector with X, Y, Z components. Used for positions, velocities, and directions. Create with V(x,y,z) function.",
		snippet:     "SET myVec TO V(1, 2, 3).\nPRINT myVec:MAG. // magnitude",
		tags:        []string{"math", "vector", "core"},
		related:     []string{"DIRECTION", "FUNCTION:V"},
	},

	// Common keywords that might be missed
	{
		id:          "THROTTLE",
		typ:         kosdex.EntryTypeKeyword,
		returnType:  "Scalar",
		signature:   "LOCK THROTTLE TO value.",
		description: "A special variable that controls the vessel's throttle. Lock it to a value between 0.0 (no thrust) and 1.0 (full thrust).",
		snippet:     "LOCK THROTTLE TO 1.0.\nWAIT UNTIL SHIP:APOAPSIS > 80000.\nLOCK THROTTLE TO 0.",
		tags:        []string{"control", "flight", "keyword"},
		related:     []string{"LOCK", "STEERING"},
	},
	{
		id:          "STEERING",
		typ:         kosdex.EntryTypeKeyword,
		returnType:  "Direction",
		signature:   "LOCK STEERING TO direction.",
		description: "A special variable that controls the vessel's attitude. Lock it to a direction to have the autopilot point the ship.",
		snippet:     "LOCK STEERING TO PROGRADE.\nWAIT 5.\nLOCK STEERING TO HEADING(90, 45).",
		tags:        []string{"control", "navigation", "flight", "keyword"},
		related:     []string{"LOCK", "THROTTLE", "PROGRADE"},
	},
}

// InjectEssentials appends a fallback entry for every essential
// identifier missing from the parsed set. Existing entries are never
// overwritten. sourceURL becomes the SourceRef of injected entries.
// Returns the extended slice and the number of entries added.
func InjectEssentials(entries []*kosdex.Entry, sourceURL string) ([]*kosdex.Entry, int) {
	existing := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		existing[e.ID] = struct{}{}
	}

	added := 0
	for _, def := range essentials {
		if _, ok := existing[def.id]; ok {
			continue
		}
		entries = append(entries, &kosdex.Entry{
			ID:          def.id,
			Name:        def.id,
			Type:        def.typ,
			ReturnType:  def.returnType,
			Access:      def.access,
			Signature:   def.signature,
			Description: def.description,
			Snippet:     def.snippet,
			SourceRef:   sourceURL,
			Tags:        append([]string(nil), def.tags...),
			Related:     append([]string(nil), def.related...),
		})
		added++
	}

	return entries, added
}
