package main

import (
	"fmt"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	idx, err := buildIndex(deps, c.Root, c.Strict)
	if err != nil {
		return err
	}

	paths := idx.Paths()
	if c.Special {
		paths = idx.SpecialPaths()
	}

	if len(paths) == 0 {
		fmt.Fprintf(deps.Stdout, "No files found under %s.\n", c.Root)
		return nil
	}

	for _, p := range paths {
		fmt.Fprintln(deps.Stdout, p)
	}
	return nil
}
