package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kspcapcom/kosdex"
)

var _ kosdex.PageParser = (*CommandParser)(nil)

// CommandParser extracts command entries from the commands pages.
// Like keywords, commands come from a fixed vocabulary; the pages
// document them under headings and definition lists.
type CommandParser struct{}

// NewCommandParser creates a new CommandParser.
func NewCommandParser() *CommandParser {
	return &CommandParser{}
}

// Name identifies the parser in logs and diagnostics.
func (p *CommandParser) Name() string { return "command" }

var knownCommands = map[string]bool{
	"PRINT": true, "CLEARSCREEN": true, "STAGE": true, "REBOOT": true,
	"SHUTDOWN": true, "LOG": true, "COPY": true, "DELETE": true,
	"RENAME": true, "SWITCH": true, "CD": true, "LIST": true, "EDIT": true,
	"TOGGLE": true, "ACTIVATE": true, "DEACTIVATE": true,
	"LIGHTS": true, "BRAKES": true, "GEAR": true, "RCS": true, "SAS": true,
	"ABORT": true, "LEGS": true, "CHUTES": true, "PANELS": true,
	"LADDERS": true, "BAYS": true, "INTAKES": true, "DEPLOYDRILLS": true,
	"DRILLS": true, "FUELCELLS": true, "ISRU": true, "RADIATORS": true,
	"DEPLOY": true, "UNDEPLOY": true,
}

var actionGroupRE = regexp.MustCompile(`^AG\d+$`)

// commandSignatures supplies signatures for bare-name headings.
var commandSignatures = map[string]string{
	"PRINT":       "PRINT expression. | PRINT expression AT (col, row).",
	"CLEARSCREEN": "CLEARSCREEN.",
	"STAGE":       "STAGE.",
	"REBOOT":      "REBOOT.",
	"SHUTDOWN":    "SHUTDOWN.",
	"LOG":         "LOG expression TO filename.",
	"TOGGLE":      "TOGGLE identifier.",
	"LIGHTS":      "LIGHTS ON. | LIGHTS OFF.",
	"GEAR":        "GEAR ON. | GEAR OFF.",
	"BRAKES":      "BRAKES ON. | BRAKES OFF.",
	"RCS":         "RCS ON. | RCS OFF.",
	"SAS":         "SAS ON. | SAS OFF.",
	"ABORT":       "ABORT ON. | ABORT OFF.",
}

// ParsePage extracts command entries from the page.
func (p *CommandParser) ParsePage(page *kosdex.Page) ([]*kosdex.Entry, error) {
	doc, err := parseDoc(page)
	if err != nil {
		return nil, err
	}

	var entries []*kosdex.Entry
	seen := make(map[string]bool)

	doc.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		command := matchCommand(headingText(heading))
		if command == "" || seen[command] {
			return
		}

		description, snippet := sectionContent(heading)
		deprecated, note := deprecation(heading)

		sourceRef := page.URL
		if anchor := headingAnchor(heading); anchor != "" {
			sourceRef = kosdex.WithFragment(page.URL, anchor)
		}

		entries = append(entries, &kosdex.Entry{
			ID:              command,
			Name:            command,
			Type:            kosdex.EntryTypeCommand,
			Signature:       commandSignature(heading, command),
			Description:     truncate(description, descriptionLimit),
			Snippet:         truncate(snippet, snippetLimit),
			SourceRef:       sourceRef,
			Tags:            commandTags(command, page.URL),
			Deprecated:      deprecated,
			DeprecationNote: note,
		})
		seen[command] = true
	})

	doc.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		command := matchCommand(headingText(dt))
		if command == "" || seen[command] {
			return
		}

		dd := dt.Next()
		description := ""
		snippet := ""
		if dd.Is("dd") {
			description = cleanText(dd.Text())
			if pre := dd.Find("pre").First(); pre.Length() > 0 {
				snippet = strings.TrimSpace(pre.Text())
			}
		}

		deprecated, note := deprecation(dt)

		sourceRef := page.URL
		if id, ok := dt.Attr("id"); ok && id != "" {
			sourceRef = kosdex.WithFragment(page.URL, id)
		}

		dtText := cleanText(dt.Text())
		signature := dtText
		if len(dtText) <= len(command) {
			signature = command + "."
		}

		entries = append(entries, &kosdex.Entry{
			ID:              command,
			Name:            command,
			Type:            kosdex.EntryTypeCommand,
			Signature:       signature,
			Description:     truncate(description, descriptionLimit),
			Snippet:         truncate(snippet, snippetLimit),
			SourceRef:       sourceRef,
			Tags:            commandTags(command, page.URL),
			Deprecated:      deprecated,
			DeprecationNote: note,
		})
		seen[command] = true
	})

	return entries, nil
}

// matchCommand reports the command a heading documents, using the
// heading's first word. AG1 through AG10 match as action groups.
func matchCommand(text string) string {
	fields := strings.Fields(strings.ToUpper(text))
	if len(fields) == 0 {
		return ""
	}
	first := fields[0]
	if knownCommands[first] || actionGroupRE.MatchString(first) {
		return first
	}
	return ""
}

// commandSignature prefers a syntax-shaped heading over the fixed
// defaults.
func commandSignature(heading *goquery.Selection, command string) string {
	text := headingText(heading)
	if len(text) > len(command) {
		return text
	}
	if sig, ok := commandSignatures[command]; ok {
		return sig
	}
	return command + "."
}

var toggleCommands = map[string]bool{
	"LIGHTS": true, "GEAR": true, "BRAKES": true, "RCS": true, "SAS": true,
	"ABORT": true, "LEGS": true, "CHUTES": true, "PANELS": true,
	"LADDERS": true, "BAYS": true, "INTAKES": true, "DEPLOYDRILLS": true,
	"DRILLS": true, "FUELCELLS": true, "ISRU": true, "RADIATORS": true,
}

func commandTags(command, url string) []string {
	tags := []string{"command"}

	if strings.Contains(url, "/terminal") || strings.Contains(url, "/io") {
		tags = append(tags, "io", "terminal")
	}
	if strings.Contains(url, "/flight") {
		tags = append(tags, "flight", "control")
	}
	if strings.Contains(url, "/systems") {
		tags = append(tags, "systems")
	}
	if strings.Contains(url, "/file") {
		tags = append(tags, "io", "file")
	}

	switch {
	case command == "PRINT" || command == "CLEARSCREEN" || command == "LOG":
		tags = append(tags, "io", "terminal")
	case command == "STAGE":
		tags = append(tags, "staging", "flight")
	case toggleCommands[command]:
		tags = append(tags, "systems", "control")
	case strings.HasPrefix(command, "AG"):
		tags = append(tags, "action", "control")
	}

	return dedupeTags(tags)
}
