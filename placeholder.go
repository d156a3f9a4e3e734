package lingo

import (
	"fmt"
	"maps"
	"strings"
)

// M holds placeholder values for message interpolation.
type M map[string]any

// ReplacePlaceholders replaces placeholders in the template string with
// values from the provided map. Placeholders use the format {{name}}.
// If a placeholder is not found in the map, it remains unchanged.
//
// Example:
//
//	template: "Welcome back, {{user}}! You have {{count}} new mentions."
//	placeholders: M{"user": "mia", "count": 3}
//	returns: "Welcome back, mia! You have 3 new mentions."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 {
		return template
	}

	result := template
	for key, value := range placeholders {
		result = strings.ReplaceAll(result, "{{"+key+"}}", fmt.Sprintf("%v", value))
	}
	return result
}

// mergePlaceholders flattens variadic placeholder maps, later maps
// overriding earlier ones.
func mergePlaceholders(placeholders ...M) M {
	if len(placeholders) == 0 {
		return nil
	}
	if len(placeholders) == 1 {
		return placeholders[0]
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}
