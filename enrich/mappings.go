package enrich

import (
	"slices"

	"github.com/kspcapcom/kosdex"
)

// structureCategory maps a structure name to its human-readable
// category. The table is scanned in order when neither an exact nor a
// first-segment lookup resolves an entry.
type structureCategory struct {
	name     string
	category string
}

var structureCategories = []structureCategory{
	// Vessel Properties
	{"VESSEL", "Vessel Properties"},
	{"SHIP", "Vessel Properties"},
	{"ORBITABLE", "Vessel Properties"},
	{"VESSELALT", "Vessel Properties"},
	{"BOUNDS", "Vessel Properties"},
	{"CREWMEMBER", "Vessel Properties"},

	// Orbital Mechanics
	{"ORBIT", "Orbital Mechanics"},
	{"ORBITETA", "Orbital Mechanics"},
	{"ORBITINFO", "Orbital Mechanics"},

	// Celestial Bodies
	{"BODY", "Celestial Bodies"},
	{"ATMOSPHERE", "Celestial Bodies"},
	{"GEOPOSITION", "Celestial Bodies"},
	{"LATLNG", "Celestial Bodies"},
	{"WAYPOINT", "Celestial Bodies"},

	// Parts & Modules
	{"PART", "Parts & Modules"},
	{"PARTMODULE", "Parts & Modules"},
	{"ENGINE", "Parts & Modules"},
	{"GIMBAL", "Parts & Modules"},
	{"DECOUPLER", "Parts & Modules"},
	{"SEPARATOR", "Parts & Modules"},
	{"DOCKINGPORT", "Parts & Modules"},
	{"SENSOR", "Parts & Modules"},
	{"LAUNCHCLAMP", "Parts & Modules"},
	{"RCS", "Parts & Modules"},
	{"SOLARPANEL", "Parts & Modules"},
	{"CONSUMEDRESOURCE", "Parts & Modules"},

	// Resources
	{"RESOURCE", "Resources"},
	{"AGGREGATERESOURCE", "Resources"},
	{"STAGEVALUES", "Resources"},

	// Flight Control
	{"CONTROL", "Flight Control"},
	{"STEERINGMANAGER", "Flight Control"},
	{"PIDLOOP", "Flight Control"},

	// Maneuvers & Navigation
	{"MANEUVERNODE", "Maneuvers & Navigation"},
	{"NODE", "Maneuvers & Navigation"},
	{"DIRECTION", "Maneuvers & Navigation"},
	{"HEADING", "Maneuvers & Navigation"},

	// Math & Vectors
	{"VECTOR", "Math & Vectors"},
	{"SCALAR", "Math & Vectors"},
	{"CONSTANT", "Math & Vectors"},

	// Collections
	{"LIST", "Collections"},
	{"LEXICON", "Collections"},
	{"ITERATOR", "Collections"},
	{"RANGE", "Collections"},
	{"QUEUE", "Collections"},
	{"STACK", "Collections"},
	{"UNIQUESET", "Collections"},

	// I/O & Communication
	{"FILE", "I/O & Communication"},
	{"VOLUME", "I/O & Communication"},
	{"VOLUMEFILE", "I/O & Communication"},
	{"VOLUMEDIRECTORY", "I/O & Communication"},
	{"VOLUMEITEM", "I/O & Communication"},
	{"CORE", "I/O & Communication"},
	{"PROCESSOR", "I/O & Communication"},
	{"CONNECTION", "I/O & Communication"},
	{"MESSAGE", "I/O & Communication"},
	{"MESSAGEQUEUE", "I/O & Communication"},

	// GUI
	{"GUI", "GUI Elements"},
	{"WIDGET", "GUI Elements"},
	{"BOX", "GUI Elements"},
	{"BUTTON", "GUI Elements"},
	{"LABEL", "GUI Elements"},
	{"TEXTFIELD", "GUI Elements"},
	{"POPUPMENU", "GUI Elements"},
	{"SLIDER", "GUI Elements"},
	{"SCROLLBOX", "GUI Elements"},
	{"SPACING", "GUI Elements"},
	{"SKIN", "GUI Elements"},
	{"STYLE", "GUI Elements"},
	{"STYLESTATE", "GUI Elements"},
	{"STYLERECTSTYLE", "GUI Elements"},
	{"TIPDISPLAY", "GUI Elements"},

	// Time
	{"TIME", "Time"},
	{"TIMESPAN", "Time"},
	{"TIMESTAMP", "Time"},
	{"KUNIVERSE", "Time"},

	// Science
	{"SCIENCEDATA", "Science"},
	{"SCIENCEEXPERIMENT", "Science"},
	{"SCIENCEEXPERIMENTMODULE", "Science"},

	// Career/Contracts
	{"CAREER", "Career"},
	{"CONTRACT", "Career"},
	{"CONTRACTPARAMETER", "Career"},
	{"NOTE", "Career"},

	// Colors & Styling
	{"RGBA", "Colors & Styling"},
	{"HSVA", "Colors & Styling"},
	{"HIGHLIGHT", "Colors & Styling"},
	{"VECDRAW", "Colors & Styling"},
	{"VECDRAWARGS", "Colors & Styling"},

	// Addons
	{"ADDON", "Addons"},
	{"ADDONLIST", "Addons"},
}

// typeCategories maps non-structural entry types straight to their
// category.
var typeCategories = map[kosdex.EntryType]string{
	kosdex.EntryTypeFunction: "Built-in Functions",
	kosdex.EntryTypeKeyword:  "Language Keywords",
	kosdex.EntryTypeCommand:  "Commands",
	kosdex.EntryTypeConstant: "Constants",
}

// commonEntries lists the identifiers users reach for most often.
// Membership (by ID or name) classifies an entry as common.
var commonEntries = newStringSet(
	// Core control
	"THROTTLE", "STEERING", "LOCK", "UNLOCK", "STAGE",
	"SAS", "RCS", "GEAR", "BRAKES", "LIGHTS",

	// Direction constants
	"PROGRADE", "RETROGRADE", "NORMAL", "ANTINORMAL",
	"RADIAL", "ANTIRADIAL", "SRFPROGRADE", "SRFRETROGRADE",
	"UP", "NORTH",

	// Essential vessel suffixes
	"VESSEL:ALTITUDE", "VESSEL:APOAPSIS", "VESSEL:PERIAPSIS",
	"VESSEL:VELOCITY", "VESSEL:FACING", "VESSEL:MASS",
	"VESSEL:THRUST", "VESSEL:MAXTHRUST", "VESSEL:ORBIT",
	"VESSEL:BODY", "VESSEL:STATUS", "VESSEL:PARTS", "VESSEL:ENGINES",

	// Ship shortcuts
	"SHIP", "SHIP:ALTITUDE", "ALTITUDE", "APOAPSIS", "PERIAPSIS", "VELOCITY",

	// Orbit suffixes
	"ORBIT:APOAPSIS", "ORBIT:PERIAPSIS", "ORBIT:ECCENTRICITY",
	"ORBIT:INCLINATION", "ORBIT:PERIOD", "ORBIT:SEMIMAJORAXIS",
	"ORBIT:ETA", "ORBIT:BODY",

	// Body suffixes
	"BODY:NAME", "BODY:MASS", "BODY:RADIUS", "BODY:MU",
	"BODY:ATM", "BODY:ATMOSPHERE",

	// ETA shortcuts
	"ETA:APOAPSIS", "ETA:PERIAPSIS", "ETA:TRANSITION",

	// Maneuver nodes
	"MANEUVERNODE", "NODE", "NEXTNODE", "HASNODE", "ADD", "REMOVE",

	// Math functions
	"ABS", "MIN", "MAX", "SQRT", "ROUND", "FLOOR", "CEILING", "MOD",
	"SIN", "COS", "TAN", "ARCSIN", "ARCCOS", "ARCTAN", "ARCTAN2",

	// Vector functions
	"V", "R", "Q", "HEADING", "LOOKDIRUP", "VCRS", "VDOT", "VANG", "VXCL",

	// Vector suffixes
	"VECTOR:MAG", "VECTOR:NORMALIZED", "VECTOR:X", "VECTOR:Y", "VECTOR:Z",

	// Time
	"TIME", "TIME:SECONDS", "WAIT", "WARP", "KUNIVERSE",

	// Flow control
	"IF", "ELSE", "UNTIL", "FOR", "WHEN", "ON", "RETURN", "BREAK", "PRESERVE",

	// I/O
	"PRINT", "LOG", "CLEARSCREEN", "RUN", "RUNPATH",

	// Lists
	"LIST", "LIST:ADD", "LIST:REMOVE", "LIST:LENGTH", "LIST:CLEAR",

	// Target
	"TARGET", "HASTARGET",

	// Part access
	"PART:NAME", "PART:MASS", "PART:MODULES", "PART:TAG", "PART:STAGE",
	"PARTSTAGGED", "PARTSNAMED", "PARTSDUBBED", "PARTSINGROUP",

	// Engine suffixes
	"ENGINE:THRUST", "ENGINE:MAXTHRUST", "ENGINE:ISP",
	"ENGINE:ACTIVATE", "ENGINE:SHUTDOWN",

	// Resources
	"RESOURCE:AMOUNT", "RESOURCE:CAPACITY",
	"STAGE:LIQUIDFUEL", "STAGE:OXIDIZER", "STAGE:MONOPROPELLANT",
	"STAGE:ELECTRICCHARGE",

	// Action groups
	"AG1", "AG2", "AG3", "AG4", "AG5",
	"AG6", "AG7", "AG8", "AG9", "AG10",
	"ABORT",
)

// rareEntries lists specialized or deprecated identifiers that rarely
// appear in everyday scripts.
var rareEntries = newStringSet(
	// Deprecated items
	"SURFACESPEED",
	"VERTICALSPEED",
	"TERMVELOCITY",

	// Obscure GUI elements
	"STYLESTATE", "STYLERECTSTYLE", "STYLERECTOFFSET",
	"TIPDISPLAY", "SKIN:ADD",

	// Specialized addons
	"ADDON:AGX", "ADDON:IR", "ADDON:KAC", "ADDON:RT", "ADDON:SCANSAT",

	// Low-level processor stuff
	"PROCESSOR:MODE", "PROCESSOR:BOOTFILENAME",

	// Uncommon math
	"CONSTANT:AVOGADRO", "CONSTANT:BOLTZMANN", "CONSTANT:IDEALGAS",

	// Volume management (specialized)
	"VOLUME:FREESPACE", "VOLUME:POWERREQUIREMENT", "VOLUME:FILES",
	"VOLUMEFILE:WRITE", "VOLUMEFILE:WRITELN", "VOLUMEFILE:READALL",

	// Message queue (advanced IPC)
	"MESSAGE:SENT", "MESSAGE:RECEIVEDAT", "MESSAGE:SENDER",
	"MESSAGEQUEUE:EMPTY", "MESSAGEQUEUE:LENGTH",

	// Career mode (rarely used in automation)
	"CAREER:CANTRACKOBJECTS", "CAREER:PATCHLIMIT",
	"CONTRACT:STATE", "CONTRACT:DEADLINE",

	// Highlight (debugging/visualization)
	"HIGHLIGHT:ENABLED", "HIGHLIGHT:COLOR",
)

// commonPrefixes marks suffixes of everyday structures as moderate when
// no exact rule fires first.
var commonPrefixes = []string{
	"VESSEL:", "SHIP:", "ORBIT:", "BODY:", "VECTOR:", "DIRECTION:",
}

func newStringSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// Categories returns every category label the classifier can assign,
// sorted, including the type categories and the fallback labels.
func Categories() []string {
	seen := make(map[string]struct{})
	for _, sc := range structureCategories {
		seen[sc.category] = struct{}{}
	}
	for _, c := range typeCategories {
		seen[c] = struct{}{}
	}
	for _, c := range []string{"Structures", "Structure Members", "Miscellaneous"} {
		seen[c] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
