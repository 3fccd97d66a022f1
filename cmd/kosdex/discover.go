package main

import (
	"fmt"

	"github.com/kspcapcom/kosdex"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	pages, err := deps.Discoverer.DiscoverPages(deps.Ctx, deps.BaseURL)
	if err != nil {
		return fmt.Errorf("page discovery failed: %w", err)
	}

	byKind := make(map[kosdex.PageKind][]kosdex.DocPage)
	for _, p := range pages {
		byKind[p.Kind] = append(byKind[p.Kind], p)
	}

	kinds := []kosdex.PageKind{
		kosdex.PageKindStructures,
		kosdex.PageKindMath,
		kosdex.PageKindLanguage,
		kosdex.PageKindCommands,
		kosdex.PageKindBindings,
		kosdex.PageKindGeneral,
	}
	for _, kind := range kinds {
		group := byKind[kind]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s (%d)\n", kind, len(group))
		for _, p := range group {
			if p.Title != "" {
				fmt.Fprintf(deps.Stdout, "  %s  %s\n", p.URL, p.Title)
			} else {
				fmt.Fprintf(deps.Stdout, "  %s\n", p.URL)
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "\n%d pages\n", len(pages))
	return nil
}
