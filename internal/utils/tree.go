// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"github.com/MKhiriev/go-stormpath-config/models"
)

// AsMap reports whether v is a string-keyed mapping and returns it as a
// [models.Config] sharing the same underlying storage.
func AsMap(v any) (models.Config, bool) {
	switch m := v.(type) {
	case models.Config:
		return m, m != nil
	case map[string]any:
		return models.Config(m), m != nil
	case models.Resource:
		return models.Config(m), m != nil
	default:
		return nil, false
	}
}

// Normalize returns a deep copy of v in which every mapping, including
// mappings nested in slices, is a [models.Config]. Non-string map keys are
// formatted with fmt.Sprint. Scalars are returned unchanged.
func Normalize(v any) any {
	switch t := v.(type) {
	case models.Config:
		return cloneMap(t)
	case map[string]any:
		return cloneMap(t)
	case models.Resource:
		return cloneMap(t)
	case map[any]any:
		out := make(models.Config, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = Normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	default:
		return v
	}
}

// Clone returns a normalised deep copy of cfg. A nil cfg yields an empty,
// non-nil Config.
func Clone(cfg models.Config) models.Config {
	if cfg == nil {
		return models.Config{}
	}
	return cloneMap(cfg)
}

func cloneMap[M ~map[string]any](m M) models.Config {
	out := make(models.Config, len(m))
	for k, v := range m {
		out[k] = Normalize(v)
	}
	return out
}
