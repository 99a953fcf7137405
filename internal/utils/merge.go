// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"reflect"

	"github.com/MKhiriev/go-stormpath-config/models"
)

// Merge deep-merges src into dst in place and returns dst.
//
// For every key of src: when both dst and src hold a mapping at that key the
// merge recurses, otherwise the value of src replaces the value of dst.
// Slices are replaced wholesale, never concatenated. Values taken from src
// are deep-copied, so dst never aliases src after the call.
//
// Merging a Config into itself is a no-op. A nil dst is replaced by a fresh
// Config, which is why the result must be used.
func Merge(dst, src models.Config) models.Config {
	if dst == nil {
		dst = models.Config{}
	}
	if sameMap(dst, src) {
		return dst
	}

	for key, srcVal := range src {
		if srcMap, ok := AsMap(srcVal); ok {
			if dstMap, ok := AsMap(dst[key]); ok {
				Merge(dstMap, srcMap)
				continue
			}
		}
		dst[key] = Normalize(srcVal)
	}

	return dst
}

// MergeAll merges every fragment into a fresh Config, in order.
func MergeAll(fragments ...models.Config) models.Config {
	out := models.Config{}
	for _, f := range fragments {
		out = Merge(out, f)
	}
	return out
}

func sameMap(a, b models.Config) bool {
	if a == nil || b == nil {
		return false
	}
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
