package main

import (
	"fmt"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	idx, _, err := runPipeline(deps)
	if err != nil {
		return err
	}

	if err := deps.Exporter.ExportIndex(deps.Ctx, idx, c.Dir); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d entries to %s/\n", len(idx.Entries), c.Dir)
	return nil
}
