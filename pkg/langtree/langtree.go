// Package langtree models a parsed language file as an immutable nested
// tree of message strings addressed by dot-separated paths.
//
// Every node is explicitly either a branch (holding children) or a leaf
// (holding a message), so path traversal failure is a structural case
// rather than a runtime type assertion. Trees are built once from decoder
// output and never mutated, making them safe to share across goroutines.
// A nil *Tree is a valid empty tree on which all lookups miss.
package langtree

import (
	"fmt"
	"sort"
	"strings"
)

// Tree is an immutable nested mapping of message keys.
type Tree struct {
	nodes map[string]node
}

// node is either a branch or a leaf, never both.
type node struct {
	branch *Tree
	leaf   string
}

// Build constructs a Tree from decoder output. Nested maps become
// branches; strings become leaves; any other scalar is stringified the
// way it would print, so numeric or boolean values in a language file
// remain addressable.
func Build(data map[string]any) *Tree {
	t := &Tree{nodes: make(map[string]node, len(data))}
	for key, value := range data {
		switch v := value.(type) {
		case map[string]any:
			t.nodes[key] = node{branch: Build(v)}
		case map[any]any:
			t.nodes[key] = node{branch: Build(normalizeKeys(v))}
		case string:
			t.nodes[key] = node{leaf: v}
		default:
			t.nodes[key] = node{leaf: fmt.Sprintf("%v", v)}
		}
	}
	return t
}

// normalizeKeys converts a map with arbitrary key types (produced by some
// decoders for non-string keys) into a string-keyed map.
func normalizeKeys(data map[any]any) map[string]any {
	out := make(map[string]any, len(data))
	for key, value := range data {
		out[fmt.Sprintf("%v", key)] = value
	}
	return out
}

// Lookup walks the tree along the dot-separated path and returns the leaf
// message at its end. It returns false when any segment is missing, when
// an intermediate segment resolves to a leaf, or when the final segment
// resolves to a branch. Safe to call on a nil tree.
func (t *Tree) Lookup(path string) (string, bool) {
	if t == nil || path == "" {
		return "", false
	}

	current := t
	segments := strings.Split(path, ".")
	last := len(segments) - 1

	for i, segment := range segments {
		n, ok := current.nodes[segment]
		if !ok {
			return "", false
		}
		if i == last {
			if n.branch != nil {
				return "", false
			}
			return n.leaf, true
		}
		if n.branch == nil {
			return "", false
		}
		current = n.branch
	}

	return "", false
}

// Has reports whether the dot-separated path resolves to a leaf.
func (t *Tree) Has(path string) bool {
	_, ok := t.Lookup(path)
	return ok
}

// Len returns the number of leaf messages in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	count := 0
	for _, n := range t.nodes {
		if n.branch != nil {
			count += n.branch.Len()
		} else {
			count++
		}
	}
	return count
}

// Keys returns the sorted dot-separated paths of all leaf messages.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.nodes))
	t.appendKeys(&keys, "")
	sort.Strings(keys)
	return keys
}

func (t *Tree) appendKeys(keys *[]string, prefix string) {
	for key, n := range t.nodes {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if n.branch != nil {
			n.branch.appendKeys(keys, full)
		} else {
			*keys = append(*keys, full)
		}
	}
}

// Equal reports whether two trees hold the same structure and messages.
// Nil and empty trees compare equal.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t.Len() == 0 && other.Len() == 0
	}
	if len(t.nodes) != len(other.nodes) {
		return false
	}
	for key, n := range t.nodes {
		o, ok := other.nodes[key]
		if !ok {
			return false
		}
		if n.branch != nil {
			if o.branch == nil || !n.branch.Equal(o.branch) {
				return false
			}
			continue
		}
		if o.branch != nil || n.leaf != o.leaf {
			return false
		}
	}
	return true
}
