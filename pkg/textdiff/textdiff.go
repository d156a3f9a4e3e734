// Package textdiff renders human-readable line diffs between two
// versions of a text file. It is a debug aid for inspecting what changed
// in a reloaded file; nothing behavioral depends on its output.
package textdiff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff between old and new, labeled with name.
// Returns an empty string when the inputs are identical.
func Unified(name, old, new string) (string, error) {
	if old == new {
		return "", nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(old),
		B:        difflib.SplitLines(new),
		FromFile: name + " (old)",
		ToFile:   name + " (new)",
		Context:  2,
	})
	if err != nil {
		return "", fmt.Errorf("textdiff: %w", err)
	}
	return text, nil
}
