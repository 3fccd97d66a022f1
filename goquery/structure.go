package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kspcapcom/kosdex"
)

var _ kosdex.PageParser = (*StructureParser)(nil)

// StructureParser extracts a structure entry and its suffix entries
// from a structure documentation page. The page title names the
// structure; suffixes come from the documentation tables and are then
// enriched from any per-suffix heading sections further down the page.
type StructureParser struct{}

// NewStructureParser creates a new StructureParser.
func NewStructureParser() *StructureParser {
	return &StructureParser{}
}

// Name identifies the parser in logs and diagnostics.
func (p *StructureParser) Name() string { return "structure" }

// ParsePage extracts the structure and its suffixes from the page.
func (p *StructureParser) ParsePage(page *kosdex.Page) ([]*kosdex.Entry, error) {
	doc, err := parseDoc(page)
	if err != nil {
		return nil, err
	}

	structName := structureName(doc)
	if structName == "" {
		return nil, nil
	}

	var entries []*kosdex.Entry

	if e := p.structureEntry(doc, page.URL, structName); e != nil {
		entries = append(entries, e)
	}

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if !isSuffixTable(table) {
			return
		}
		for _, row := range suffixRows(table) {
			if e := p.suffixEntry(row, page.URL, structName); e != nil {
				entries = append(entries, e)
			}
		}
	})

	p.enrichFromSections(doc, entries)

	return entries, nil
}

// structureName derives the uppercased structure name from the page
// title, dropping a trailing "Structure" qualifier.
func structureName(doc *goquery.Document) string {
	title := pageTitle(doc)
	if title == "" {
		return ""
	}
	title = strings.ReplaceAll(title, " Structure", "")
	title = strings.ReplaceAll(title, " structure", "")
	return strings.ToUpper(strings.TrimSpace(title))
}

// structureEntry builds the entry for the structure itself. The
// description comes from the paragraphs directly under the h1; tags
// are seeded from the URL's topic directory.
func (p *StructureParser) structureEntry(doc *goquery.Document, url, structName string) *kosdex.Entry {
	var parts []string
	for sib := doc.Find("h1").First().Next(); sib.Length() > 0 && sib.Is("p"); sib = sib.Next() {
		parts = append(parts, cleanText(sib.Text()))
		if len(parts) == 2 {
			break
		}
	}
	description := strings.Join(parts, " ")
	if description == "" {
		description = "The " + structName + " structure."
	}

	deprecated, note := pageDeprecation(doc)

	return &kosdex.Entry{
		ID:              structName,
		Name:            titleCase(structName),
		Type:            kosdex.EntryTypeStructure,
		Description:     description,
		Snippet:         firstSnippet(doc),
		SourceRef:       url,
		Tags:            urlTopicTags(url),
		Deprecated:      deprecated,
		DeprecationNote: note,
	}
}

// suffixRow is one parsed row of a suffix table.
type suffixRow struct {
	name        string
	typeText    string
	accessText  string
	description string
	anchor      string
}

// isSuffixTable checks the header row for a suffix-like column name.
func isSuffixTable(table *goquery.Selection) bool {
	header := table.Find("tr").First()
	if header.Length() == 0 {
		return false
	}
	found := false
	header.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		h := strings.ToLower(cleanText(cell.Text()))
		if strings.Contains(h, "suffix") || strings.Contains(h, "member") || strings.Contains(h, "name") {
			found = true
		}
	})
	return found
}

// suffixRows extracts rows from a suffix table. kOS docs use both the
// 3-column (Suffix, Type, Description) and the 4-column (Suffix, Type,
// Get/Set, Description) layouts.
func suffixRows(table *goquery.Selection) []suffixRow {
	var rows []suffixRow

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td, th")
		if cells.Length() < 3 {
			return
		}
		// Header rows are all th.
		if cells.Length() == tr.Find("th").Length() {
			return
		}

		row := suffixRow{
			name:     cleanText(cells.Eq(0).Text()),
			typeText: cleanText(cells.Eq(1).Text()),
		}
		if cells.Length() >= 4 {
			row.accessText = cleanText(cells.Eq(2).Text())
			row.description = cleanText(cells.Eq(3).Text())
		} else {
			row.description = cleanText(cells.Eq(2).Text())
		}
		if href, ok := cells.Eq(0).Find("a").Attr("href"); ok {
			row.anchor = strings.TrimPrefix(href, "#")
		}

		rows = append(rows, row)
	})

	return rows
}

// suffixEntry builds a suffix entry from a table row.
func (p *StructureParser) suffixEntry(row suffixRow, url, structName string) *kosdex.Entry {
	if row.name == "" {
		return nil
	}

	// "OBT(...)" and "STAGE()" are callable; keep the bare name.
	isMethod := strings.Contains(row.name, "(")
	name := strings.ToUpper(strings.TrimSpace(strings.SplitN(strings.ReplaceAll(row.name, "()", ""), "(", 2)[0]))
	if name == "" {
		return nil
	}

	accessText := row.accessText
	if accessText == "" {
		accessText = row.typeText
	}
	access, detectedMethod := parseAccess(accessText)
	if detectedMethod {
		isMethod = true
	}
	if isMethod {
		access = kosdex.AccessMethod
	} else if access == "" {
		// Properties without an access column are readable.
		access = kosdex.AccessGet
	}

	var signature string
	if isMethod {
		if i := strings.Index(row.name, "("); i >= 0 {
			signature = name + row.name[i:]
		} else {
			signature = name + "()"
		}
	}

	sourceRef := url
	if row.anchor != "" {
		sourceRef = kosdex.WithFragment(url, row.anchor)
	}

	returnType := strings.TrimSpace(accessWordRE.ReplaceAllString(row.typeText, ""))

	return &kosdex.Entry{
		ID:              structName + ":" + name,
		Name:            name,
		Type:            kosdex.EntryTypeSuffix,
		ParentStructure: structName,
		ReturnType:      returnType,
		Access:          access,
		Signature:       signature,
		Description:     row.description,
		SourceRef:       sourceRef,
	}
}

// enrichFromSections upgrades suffix entries with content from their
// own heading sections: a longer description, a code snippet, an
// anchored source ref, and deprecation markers.
func (p *StructureParser) enrichFromSections(doc *goquery.Document, entries []*kosdex.Entry) {
	byName := make(map[string]*kosdex.Entry)
	for _, e := range entries {
		if e.Type == kosdex.EntryTypeSuffix {
			byName[e.Name] = e
		}
	}
	if len(byName) == 0 {
		return
	}

	doc.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		text := headingText(heading)

		// Headings appear as "VESSEL:ALTITUDE", ":ALTITUDE", or "ALTITUDE".
		name := text
		if i := strings.LastIndex(text, ":"); i >= 0 {
			name = text[i+1:]
		}
		name = strings.ToUpper(strings.TrimSpace(strings.SplitN(name, "(", 2)[0]))

		entry, ok := byName[name]
		if !ok {
			return
		}

		description, snippet := sectionContent(heading)
		if len(description) > len(entry.Description) {
			entry.Description = description
		}
		if snippet != "" && entry.Snippet == "" {
			entry.Snippet = truncate(snippet, snippetLimit)
		}
		if anchor := headingAnchor(heading); anchor != "" {
			entry.SourceRef = kosdex.WithFragment(entry.SourceRef, anchor)
		}
		if deprecated, note := deprecation(heading); deprecated {
			entry.Deprecated = true
			if note != "" {
				entry.DeprecationNote = note
			}
		}
	})
}

// pageDeprecation detects a deprecation admonition covering the whole
// structure.
func pageDeprecation(doc *goquery.Document) (bool, string) {
	found := false
	note := ""
	doc.Find("div.deprecated, div.warning").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(div.Text()), "deprecated") {
			found = true
			note = cleanText(div.Text())
			return false
		}
		return true
	})
	return found, note
}

// urlTopicTags seeds tags from the structure page's topic directory.
func urlTopicTags(url string) []string {
	var tags []string
	for _, tt := range []struct {
		fragment string
		tags     []string
	}{
		{"/vessels/", []string{"vessel"}},
		{"/celestial_bodies/", []string{"body", "celestial"}},
		{"/orbits/", []string{"orbit"}},
		{"/collections/", []string{"collection"}},
		{"/communication/", []string{"communication"}},
		{"/misc/", []string{"misc"}},
		{"/gui/", []string{"gui"}},
		{"/volumes_and_files/", []string{"io", "file"}},
	} {
		if strings.Contains(url, tt.fragment) {
			tags = append(tags, tt.tags...)
		}
	}
	return append(tags, "core")
}

var displayCaser = cases.Title(language.English)

// titleCase renders an uppercase structure name for display:
// "VESSEL" becomes "Vessel", "CREW MEMBER" becomes "Crew Member".
func titleCase(s string) string {
	return displayCaser.String(strings.ToLower(s))
}
