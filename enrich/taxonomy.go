package enrich

import (
	"regexp"

	"github.com/kspcapcom/kosdex"
)

// tagPattern contributes a fixed tag set to any entry whose uppercased
// ID matches the expression. All matching patterns apply; the rules are
// additive, not first-match-wins.
type tagPattern struct {
	re   *regexp.Regexp
	tags []string
}

func compileTagPatterns(rows []struct {
	expr string
	tags []string
}) []tagPattern {
	out := make([]tagPattern, 0, len(rows))
	for _, row := range rows {
		out = append(out, tagPattern{
			re:   regexp.MustCompile(row.expr),
			tags: row.tags,
		})
	}
	return out
}

// tagPatterns maps identifier shapes to domain tags. Structure patterns
// anchor to the start of the ID; suffix patterns anchor to the member
// name after the colon.
var tagPatterns = compileTagPatterns([]struct {
	expr string
	tags []string
}{
	// Structure patterns
	{`^VESSEL(:|$)`, []string{"vessel", "core"}},
	{`^SHIP(:|$)`, []string{"vessel", "core"}},
	{`^ORBIT(:|$)`, []string{"orbit"}},
	{`^BODY(:|$)`, []string{"body"}},
	{`^PART(:|$)`, []string{"part"}},
	{`^ENGINE(:|$)`, []string{"part", "control"}},
	{`^SENSOR(:|$)`, []string{"part", "science"}},
	{`^SCIENCE`, []string{"science"}},
	{`^ANTENNA`, []string{"communication", "part"}},
	{`^COMM`, []string{"communication"}},
	{`^DOCK`, []string{"docking", "part"}},
	{`^CREW`, []string{"crew"}},
	{`^KERBAL`, []string{"crew"}},
	{`^MANEUVER`, []string{"maneuver", "orbit"}},
	{`^NODE(:|$)`, []string{"maneuver", "orbit"}},
	{`^STAGE(:|$)`, []string{"staging"}},
	{`^RESOURCE`, []string{"resource", "fuel"}},
	{`^GUI`, []string{"gui"}},
	{`^WIDGET`, []string{"gui"}},
	{`^FILE`, []string{"io"}},
	{`^VOLUME`, []string{"io"}},
	{`^TIME`, []string{"time"}},
	{`^TIMESTAMP`, []string{"time"}},
	{`^LIST(:|$)`, []string{"collection"}},
	{`^LEXICON`, []string{"collection"}},
	{`^ITERATOR`, []string{"collection"}},
	{`^RANGE`, []string{"collection"}},
	{`^QUEUE`, []string{"collection"}},
	{`^STACK`, []string{"collection"}},
	{`^VECTOR(:|$)`, []string{"vector", "math"}},
	{`^DIRECTION(:|$)`, []string{"direction", "navigation"}},
	{`^HEADING`, []string{"direction", "navigation"}},
	{`^GEOPOSITION`, []string{"position", "navigation", "body"}},
	{`^LATLNG`, []string{"position", "navigation"}},
	{`^ATMOSPHERE`, []string{"atmosphere", "body"}},
	{`^WAYPOINT`, []string{"navigation"}},

	// Suffix patterns
	{`:ALTITUDE$`, []string{"vessel", "position"}},
	{`:APOAPSIS$`, []string{"orbit"}},
	{`:PERIAPSIS$`, []string{"orbit"}},
	{`:INCLINATION$`, []string{"orbit"}},
	{`:ECCENTRICITY$`, []string{"orbit"}},
	{`:SEMIMAJORAXIS$`, []string{"orbit"}},
	{`:VELOCITY$`, []string{"velocity"}},
	{`:POSITION$`, []string{"position"}},
	{`:FACING$`, []string{"direction", "rotation"}},
	{`:UP$`, []string{"direction"}},
	{`:NORTH$`, []string{"direction"}},
	{`:HEADING$`, []string{"direction", "navigation"}},
	{`:THRUST$`, []string{"control"}},
	{`:THROTTLE$`, []string{"control"}},
	{`:MASS$`, []string{"vessel"}},
	{`:DRYMASS$`, []string{"vessel", "fuel"}},
	{`:WETMASS$`, []string{"vessel", "fuel"}},
	{`:MAXTHRUST$`, []string{"control", "part"}},
	{`:ISP$`, []string{"control", "fuel"}},
	{`:STAGE$`, []string{"staging"}},
	{`:RESOURCES$`, []string{"resource"}},
	{`:FUEL$`, []string{"fuel", "resource"}},
	{`:LIQUIDFUEL$`, []string{"fuel", "resource"}},
	{`:OXIDIZER$`, []string{"fuel", "resource"}},
	{`:MONOPROPELLANT$`, []string{"fuel", "resource"}},
	{`:ELECTRICCHARGE$`, []string{"resource"}},
	{`:CREW$`, []string{"crew"}},
	{`:PARTS$`, []string{"part"}},
	{`:ENGINES$`, []string{"part", "control"}},
	{`:SENSORS$`, []string{"part", "science"}},
	{`:ETA$`, []string{"time", "orbit"}},
	{`:PERIOD$`, []string{"time", "orbit"}},
	{`:BODY$`, []string{"body"}},
	{`:SOI$`, []string{"body", "orbit"}},
	{`:ATMOSPHERE$`, []string{"atmosphere", "body"}},
	{`:HASATMOSPHERE$`, []string{"atmosphere", "body"}},
	{`:STATUS$`, []string{"vessel"}},
	{`:SITUATION$`, []string{"vessel"}},
	{`:CONTROL$`, []string{"control"}},
	{`:CONNECTION$`, []string{"communication"}},
	{`:SIGNAL$`, []string{"communication"}},
	{`:EXPERIMENTS$`, []string{"science"}},
	{`:DATA$`, []string{"science"}},
	{`:MAG$`, []string{"vector", "math"}},
	{`:NORMALIZED$`, []string{"vector", "math"}},
	{`:X$`, []string{"vector", "position"}},
	{`:Y$`, []string{"vector", "position"}},
	{`:Z$`, []string{"vector", "position"}},
	{`:ROLL$`, []string{"rotation", "direction"}},
	{`:PITCH$`, []string{"rotation", "direction"}},
	{`:YAW$`, []string{"rotation", "direction"}},
	{`:TARGET$`, []string{"navigation"}},
	{`:HASTARGET$`, []string{"navigation"}},
})

// keywordTagHints maps uppercased names of known keywords, functions,
// and commands to their tags. Lookup is exact, not fuzzy.
var keywordTagHints = map[string][]string{
	// Control keywords
	"THROTTLE": {"control", "core"},
	"STEERING": {"control", "navigation", "core"},
	"LOCK":     {"binding", "core"},
	"UNLOCK":   {"binding"},
	"SAS":      {"control", "autopilot", "systems"},
	"RCS":      {"control", "systems"},
	"GEAR":     {"systems", "landing"},
	"LIGHTS":   {"systems"},
	"BRAKES":   {"systems", "landing"},
	"ABORT":    {"systems", "staging"},
	"AG1":      {"action", "systems"},
	"AG2":      {"action", "systems"},
	"AG3":      {"action", "systems"},
	"AG4":      {"action", "systems"},
	"AG5":      {"action", "systems"},
	"AG6":      {"action", "systems"},
	"AG7":      {"action", "systems"},
	"AG8":      {"action", "systems"},
	"AG9":      {"action", "systems"},
	"AG10":     {"action", "systems"},

	// Navigation keywords
	"PROGRADE":      {"direction", "navigation", "orbit"},
	"RETROGRADE":    {"direction", "navigation", "orbit"},
	"NORMAL":        {"direction", "navigation", "orbit"},
	"ANTINORMAL":    {"direction", "navigation", "orbit"},
	"RADIAL":        {"direction", "navigation", "orbit"},
	"ANTIRADIAL":    {"direction", "navigation", "orbit"},
	"SRFPROGRADE":   {"direction", "navigation", "flight"},
	"SRFRETROGRADE": {"direction", "navigation", "flight"},
	"TARGET":        {"navigation"},

	// Flow control
	"WAIT":        {"time", "core"},
	"WHEN":        {"trigger"},
	"ON":          {"trigger"},
	"UNTIL":       {"language", "core"},
	"IF":          {"language", "core"},
	"ELSE":        {"language", "core"},
	"FOR":         {"language", "collection"},
	"FROM":        {"language"},
	"SET":         {"language", "core"},
	"PRINT":       {"io", "core"},
	"LOG":         {"io"},
	"RUN":         {"language", "core"},
	"RUNPATH":     {"language", "io"},
	"RUNONCEPATH": {"language", "io"},
	"STAGE":       {"staging", "core"},
	"REBOOT":      {"systems"},
	"SHUTDOWN":    {"systems"},

	// Math functions
	"ABS":     {"math", "function"},
	"CEILING": {"math", "function"},
	"FLOOR":   {"math", "function"},
	"ROUND":   {"math", "function"},
	"SQRT":    {"math", "function"},
	"LN":      {"math", "function"},
	"LOG10":   {"math", "function"},
	"MIN":     {"math", "function"},
	"MAX":     {"math", "function"},
	"MOD":     {"math", "function"},
	"SIN":     {"math", "function"},
	"COS":     {"math", "function"},
	"TAN":     {"math", "function"},
	"ARCSIN":  {"math", "function"},
	"ARCCOS":  {"math", "function"},
	"ARCTAN":  {"math", "function"},
	"ARCTAN2": {"math", "function"},
	"RANDOM":  {"math", "function"},

	// Vector/direction functions
	"V":            {"vector", "math", "function"},
	"R":            {"direction", "rotation", "function"},
	"Q":            {"rotation", "function"},
	"HEADING":      {"direction", "navigation", "function"},
	"LOOKDIRUP":    {"direction", "rotation", "function"},
	"ANGLEAXIS":    {"rotation", "math", "function"},
	"ROTATEFROMTO": {"rotation", "math", "function"},
	"VCRS":         {"vector", "math", "function"},
	"VDOT":         {"vector", "math", "function"},
	"VANG":         {"vector", "math", "function"},
	"VXCL":         {"vector", "math", "function"},
}

// returnTypeRule tags entries whose lowercased return type contains the
// substring.
type returnTypeRule struct {
	substr string
	tags   []string
}

var returnTypeRules = []returnTypeRule{
	{"vector", []string{"vector"}},
	{"direction", []string{"direction"}},
	{"scalar", []string{"numeric"}},
	{"number", []string{"numeric"}},
	{"boolean", []string{"boolean"}},
	{"bool", []string{"boolean"}},
	{"string", []string{"string"}},
	{"list", []string{"collection"}},
	{"lexicon", []string{"collection"}},
	{"iterator", []string{"collection"}},
	{"timespan", []string{"time"}},
	{"timestamp", []string{"time"}},
	{"geoposition", []string{"position", "navigation"}},
	{"vessel", []string{"vessel"}},
	{"body", []string{"body"}},
	{"orbit", []string{"orbit"}},
	{"part", []string{"part"}},
}

// descriptionHint contributes its tag when any of its keywords appears
// as a substring of the lowercased description.
type descriptionHint struct {
	tag      string
	keywords []string
}

var descriptionHints = []descriptionHint{
	{"orbit", []string{"orbit", "orbital", "apoapsis", "periapsis", "inclination"}},
	{"maneuver", []string{"maneuver", "burn", "delta-v", "deltav"}},
	{"velocity", []string{"velocity", "speed"}},
	{"position", []string{"position", "coordinate", "location"}},
	{"autopilot", []string{"autopilot", "auto-pilot", "cooked control"}},
	{"trajectory", []string{"trajectory", "path", "prediction"}},
	{"atmosphere", []string{"atmosphere", "atmospheric", "air"}},
	{"docking", []string{"dock", "docking", "port"}},
	{"landing", []string{"land", "landing", "touchdown", "gear"}},
	{"staging", []string{"stage", "staging", "decouple", "separate"}},
}

// typeTags contributes a fixed tag per entry type. Suffix entries get
// nothing; a "suffix" tag would be redundant with parentStructure.
var typeTags = map[kosdex.EntryType][]string{
	kosdex.EntryTypeStructure: {"structure"},
	kosdex.EntryTypeSuffix:    {},
	kosdex.EntryTypeFunction:  {"function"},
	kosdex.EntryTypeKeyword:   {"keyword"},
	kosdex.EntryTypeConstant:  {"constant"},
	kosdex.EntryTypeCommand:   {"command"},
}

// tagDescriptions documents every known tag for the serialized tag
// index. Tags outside this table fall back to a title-cased form of
// the tag itself.
var tagDescriptions = map[string]string{
	// Domain tags
	"orbit":         "Orbital mechanics and trajectory",
	"vessel":        "Vessel properties and state",
	"control":       "Throttle, steering, and autopilot",
	"navigation":    "Heading, waypoints, and directions",
	"staging":       "Stage management and separation",
	"fuel":          "Propellant and resource consumption",
	"communication": "Antennas and CommNet",
	"science":       "Experiments and science data",
	"part":          "Part modules and components",
	"body":          "Celestial bodies and planets",
	"time":          "Time, scheduling, and delays",
	"math":          "Mathematical functions and operations",
	"io":            "File I/O and terminal output",
	"gui":           "Graphical user interface elements",

	// Concept tags
	"position":   "Positions and coordinates",
	"velocity":   "Velocity and speed",
	"maneuver":   "Maneuver nodes and planning",
	"autopilot":  "Automated flight control",
	"resource":   "Resources (fuel, electricity, etc.)",
	"trajectory": "Flight paths and predictions",
	"vector":     "Vector operations",
	"direction":  "Direction and heading",
	"rotation":   "Rotation and attitude",

	// Usage tags
	"core":       "Fundamental/essential feature",
	"advanced":   "Complex or specialized feature",
	"deprecated": "Deprecated feature",

	// Additional specific tags
	"flight":     "In-flight operations",
	"collection": "Lists, lexicons, and iterators",
	"language":   "kOS language constructs",
	"binding":    "Variable bindings and locks",
	"trigger":    "Event triggers (WHEN/ON)",
	"numeric":    "Numeric values",
	"boolean":    "Boolean values",
	"string":     "String operations",
	"constant":   "Constant values",
	"function":   "Built-in functions",
	"command":    "Commands and statements",
	"keyword":    "Language keywords",
	"crew":       "Kerbal crew management",
	"action":     "Action groups",
	"systems":    "Ship systems (SAS, RCS, etc.)",
	"docking":    "Docking operations",
	"landing":    "Landing and touchdown",
	"atmosphere": "Atmospheric flight",
}
