package utils

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// ToCamelCase converts a snake_case key to lowerCamelCase. Keys that are
// already camel-cased pass through unchanged, so the function can be applied
// to resources regardless of the casing they were decoded with.
func ToCamelCase(s string) string {
	return strcase.ToLowerCamel(strings.TrimLeft(s, "_"))
}

// CamelCaseKeys returns a shallow copy of m with every top-level key passed
// through [ToCamelCase].
func CamelCaseKeys[M ~map[string]any](m M) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[ToCamelCase(k)] = v
	}
	return out
}
