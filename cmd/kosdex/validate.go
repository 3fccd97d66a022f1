package main

import (
	"fmt"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	_, res, err := runPipeline(deps)
	if err != nil {
		return err
	}

	if len(res.Warnings) == 0 {
		fmt.Fprintf(deps.Stdout, "OK: %d entries, no warnings\n", len(res.Entries))
		return nil
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(deps.Stdout, "warning: %s\n", w)
	}
	return fmt.Errorf("%d validation warnings", len(res.Warnings))
}
