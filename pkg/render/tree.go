// Package render turns collections of relative note paths into display
// text: a box-drawing tree or a flat, optionally sorted listing.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// node is one component in the path trie.
type node struct {
	children map[string]*node
	leaf     bool
}

func newNode() *node {
	return &node{children: map[string]*node{}}
}

// insert adds a path's component sequence to the trie, creating
// intermediate nodes as needed and marking the terminal node.
func (n *node) insert(path string) {
	components := strings.Split(filepath.ToSlash(path), "/")
	cur := n
	for _, comp := range components {
		if comp == "" {
			continue
		}
		child, ok := cur.children[comp]
		if !ok {
			child = newNode()
			cur.children[comp] = child
		}
		cur = child
	}
	cur.leaf = true
}

// sortedKeys gives the deterministic child order the tree needs; maps have
// no stable iteration order on their own.
func (n *node) sortedKeys() []string {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tree renders paths as a nested-prefix tree with branch glyphs, children
// in lexicographic order. The root prints no line of its own.
func Tree(w io.Writer, paths []string) {
	root := newNode()
	for _, p := range paths {
		root.insert(p)
	}
	printSubtree(w, root, "", true, "")
}

func printSubtree(w io.Writer, n *node, prefix string, isLast bool, name string) {
	if name != "" {
		branch := "├── "
		if isLast {
			branch = "└── "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, name)
	}

	// The continuation prefix is extended even at the unnamed root, so
	// top-level entries carry the same four-space indent as the original
	// listing format.
	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}

	keys := n.sortedKeys()
	for i, key := range keys {
		printSubtree(w, n.children[key], childPrefix, i == len(keys)-1, key)
	}
}

// Flat prints paths one per line in the given order.
func Flat(w io.Writer, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}
