package kosdex

import (
	"strconv"
	"strings"
	"unicode"
)

// HasFragment reports whether a source reference points at a specific
// section of its page rather than the page as a whole.
func HasFragment(ref string) bool {
	return strings.Contains(ref, "#")
}

// WithFragment returns the page URL pointing at the given anchor.
// Any existing fragment on the URL is replaced; an empty anchor returns
// the bare page URL.
func WithFragment(pageURL, anchor string) string {
	if i := strings.IndexByte(pageURL, '#'); i >= 0 {
		pageURL = pageURL[:i]
	}
	if anchor == "" {
		return pageURL
	}
	return pageURL + "#" + anchor
}

// Heading is a section heading in a rendered markdown page.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Outline parses markdown and returns all headings (H1-H6) with
// URL-safe anchors. Duplicate anchors get numeric suffixes. Headings
// inside fenced code blocks are ignored.
func Outline(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	var headings []Heading
	anchorCounts := make(map[string]int)
	inFence := false

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(line, "#") {
			continue
		}

		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		if level > 6 || level >= len(line) || line[level] != ' ' {
			continue
		}
		title := strings.TrimSpace(line[level:])
		if title == "" {
			continue
		}

		anchor := HeadingAnchor(title)
		if n, ok := anchorCounts[anchor]; ok {
			anchorCounts[anchor] = n + 1
			anchor = anchor + "-" + strconv.Itoa(n)
		} else {
			anchorCounts[anchor] = 1
		}

		headings = append(headings, Heading{
			Level:  level,
			Title:  title,
			Anchor: anchor,
		})
	}

	if len(headings) == 0 {
		return nil
	}
	return headings
}

// HeadingAnchor creates a URL-safe anchor from a heading title.
// Letters and digits are lowercased and kept, runs of spaces and
// hyphens collapse to a single hyphen, and everything else is dropped.
// "SHIP:APOAPSIS" becomes "shipapoapsis".
func HeadingAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
