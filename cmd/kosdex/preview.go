package main

import (
	"fmt"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", c.URL, err)
	}

	result, err := deps.Extractor.Extract(html)
	if err != nil {
		// The primary extractor rejects some sparse reference pages;
		// the fallback is more permissive.
		result, err = deps.Fallback.Extract(html)
		if err != nil {
			return fmt.Errorf("failed to extract content from %s: %w", c.URL, err)
		}
	}

	markdown, err := deps.Converter.Convert(result.ContentHTML)
	if err != nil {
		return fmt.Errorf("failed to convert content: %w", err)
	}

	if result.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
	}
	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
