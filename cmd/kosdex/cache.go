package main

import (
	"fmt"

	"github.com/kspcapcom/kosdex/fetch"
)

// Run executes the cache stats command.
func (c *CacheStatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Cache.Stats(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Pages: %d\n", stats.Pages)
	fmt.Fprintf(deps.Stdout, "Size:  %s\n", fetch.FormatBytes(int(stats.Bytes)))
	if stats.Pages > 0 {
		fmt.Fprintf(deps.Stdout, "Oldest: %s\n", stats.Oldest.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(deps.Stdout, "Newest: %s\n", stats.Newest.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// Run executes the cache purge command.
func (c *CachePurgeCmd) Run(deps *Dependencies) error {
	removed, err := deps.Cache.Purge(deps.Ctx, c.OlderThan)
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cached pages\n", removed)
	return nil
}
