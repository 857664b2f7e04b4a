package main

import (
	"fmt"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/fs"
)

// buildIndex indexes root, logging skipped subtrees.
func buildIndex(deps *Dependencies, root string, strict bool) (*docview.Index, error) {
	idx, err := fs.BuildIndex(root,
		fs.WithStrict(strict),
		fs.WithSkipFunc(func(path string, err error) {
			deps.Logger.Warn("skipping unreadable directory", "path", path, "err", err)
		}),
	)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return nil, err
	}
	return idx, nil
}
