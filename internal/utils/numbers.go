package utils

import "github.com/goccy/go-json"

// ConvertNumbers replaces, in place, every json.Number found in v (a value
// decoded with UseNumber) by an int when it is integral and by a float64
// otherwise. It returns v.
func ConvertNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = ConvertNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = ConvertNumbers(e)
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
