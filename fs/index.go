// Package fs provides filesystem-backed implementations: the directory walk
// that builds the docview.Index and the loader that reads indexed files.
package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"

	"github.com/fwojciec/docview"
)

// Option configures BuildIndex.
type Option func(*walker)

// WithStrict makes BuildIndex fail when a subdirectory cannot be read.
// By default such subtrees are skipped.
func WithStrict(strict bool) Option {
	return func(w *walker) {
		w.strict = strict
	}
}

// WithSkipFunc registers fn to be called for every subtree skipped because
// it could not be read. Ignored when strict.
func WithSkipFunc(fn func(path string, err error)) Option {
	return func(w *walker) {
		w.onSkip = fn
	}
}

type walker struct {
	root   string
	strict bool
	onSkip func(path string, err error)
	paths  []string
}

// BuildIndex walks root depth-first and returns an index of every regular
// file below it. Version-control directories are pruned. Symbolic links are
// never followed, so link cycles cannot occur.
func BuildIndex(root string, opts ...Option) (*docview.Index, error) {
	w := &walker{root: root}
	for _, opt := range opts {
		opt(w)
	}

	if err := filepath.WalkDir(root, w.visit); err != nil {
		return nil, docview.Errorf(docview.EINTERNAL, "failed to index %q: %v", root, err)
	}

	return docview.NewIndex(root, w.paths), nil
}

func (w *walker) visit(path string, d iofs.DirEntry, err error) error {
	if err != nil {
		// The root itself must be readable.
		if path == w.root || w.strict || !errors.Is(err, iofs.ErrPermission) {
			return err
		}
		if w.onSkip != nil {
			w.onSkip(path, err)
		}
		if d != nil && d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}

	if d.IsDir() {
		if path != w.root && docview.IsIgnoredDir(d.Name()) {
			return filepath.SkipDir
		}
		return nil
	}

	if !d.Type().IsRegular() {
		return nil
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return err
	}
	w.paths = append(w.paths, "/"+filepath.ToSlash(rel))
	return nil
}
