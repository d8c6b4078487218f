package utils

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PrettyParameters converts the given parameters to a readable string, ordered by key.
func PrettyParameters(params map[string]any) string {
	if len(params) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, k := range slices.Sorted(maps.Keys(params)) {
		if i != 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, params[k])
	}
	sb.WriteByte(']')
	return sb.String()
}
