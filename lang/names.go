package lang

import (
	"fmt"
	"maps"
	"slices"
)

// sortedKeys returns the keys of m in lexical order, or nil if m is empty.
func sortedKeys[T any](m map[string]T) []string {
	return slices.Sorted(maps.Keys(m))
}

// hostTypeName names the Go type of a host value for error messages.
func hostTypeName(x any) string {
	if x == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", x)
}
