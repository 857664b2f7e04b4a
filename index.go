package docview

import (
	"path/filepath"
	"slices"
	"strings"
)

// Index is the immutable set of servable files discovered under a root
// directory. It is built once at startup and shared read-only by all
// request handlers, so it needs no locking.
type Index struct {
	root    string
	paths   []string
	special []string
	lookup  map[string]struct{}
}

// NewIndex returns an Index over paths found under root. Each path must be
// slash-separated and begin with "/". Paths are sorted and de-duplicated;
// special paths are computed with IsSpecialName.
func NewIndex(root string, paths []string) *Index {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	idx := &Index{
		root:   root,
		paths:  sorted,
		lookup: make(map[string]struct{}, len(sorted)),
	}
	for _, p := range sorted {
		idx.lookup[p] = struct{}{}
		if IsSpecialName(p) {
			idx.special = append(idx.special, p)
		}
	}
	return idx
}

// Root returns the directory the index was built from.
func (idx *Index) Root() string { return idx.root }

// Len returns the number of indexed files.
func (idx *Index) Len() int { return len(idx.paths) }

// Paths returns all indexed paths in ascending order.
// The returned slice must not be modified.
func (idx *Index) Paths() []string { return idx.paths }

// SpecialPaths returns the indexed paths with index-like base names
// (README, index, ...) in ascending order. The returned slice must not be
// modified.
func (idx *Index) SpecialPaths() []string { return idx.special }

// Contains reports whether p is exactly an indexed path.
func (idx *Index) Contains(p string) bool {
	_, ok := idx.lookup[p]
	return ok
}

// FilePath returns the filesystem location of the indexed path p.
func (idx *Index) FilePath(p string) string {
	return filepath.Join(idx.root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
}
