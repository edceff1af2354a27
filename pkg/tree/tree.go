// Package tree reconstructs a directory hierarchy from a flat list of file
// paths and renders it as an ASCII tree.
package tree

import (
	"path/filepath"
	"strings"
)

// Tree is an arena of nodes. The root lives at id 0, has an empty name and
// is never rendered; every other node is owned by exactly one parent through
// the parent's name-to-id map.
type Tree struct {
	nodes []node
}

type node struct {
	name     string
	children map[string]int
	isFile   bool
}

// New returns a tree containing only the root node.
func New() *Tree {
	return &Tree{nodes: []node{{children: map[string]int{}}}}
}

// Build folds the given slash-separated relative paths into a single tree.
// The result does not depend on the order of paths, and duplicate paths are
// collapsed.
func Build(paths []string) *Tree {
	t := New()
	for _, path := range paths {
		t.Insert(path)
	}
	return t
}

// Insert adds one path to the tree, reusing existing nodes for shared
// prefixes. The final segment is marked as a file; the file marker is never
// cleared once set.
func (t *Tree) Insert(path string) {
	segments := Split(path)
	current := 0
	for i, segment := range segments {
		child, ok := t.nodes[current].children[segment]
		if !ok {
			t.nodes = append(t.nodes, node{name: segment, children: map[string]int{}})
			child = len(t.nodes) - 1
			t.nodes[current].children[segment] = child
		}
		if i == len(segments)-1 {
			t.nodes[child].isFile = true
		}
		current = child
	}
}

// Len reports the number of nodes in the tree, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Normalize converts a path into the slash-separated form used as a tree key
// and display label. Absolute paths are made relative to root; when that is
// not possible (different volume) the original path is kept unchanged.
// Normalization never fails.
func Normalize(path, root string) string {
	if filepath.IsAbs(path) {
		if rel, err := filepath.Rel(root, path); err == nil {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}

// Split cuts a slash-separated path into its non-empty segments.
func Split(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
