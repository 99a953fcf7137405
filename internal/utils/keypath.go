// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/MKhiriev/go-stormpath-config/models"
)

// KeyDelimiter separates the segments of a key path, e.g. "client*apiKey*id".
// It is reserved and must not appear inside configuration keys.
const KeyDelimiter = "*"

// SplitPath splits a key path into its segments.
func SplitPath(path string) []string {
	return strings.Split(path, KeyDelimiter)
}

// JoinPath joins segments into a key path.
func JoinPath(segments ...string) string {
	return strings.Join(segments, KeyDelimiter)
}

// SetPath writes value at path, creating intermediate mappings as needed.
// A non-mapping value found on the way is replaced by a fresh mapping, and
// whatever is stored at the final segment is overwritten. Mapping values are
// stored as normalised copies.
func SetPath(cfg models.Config, path string, value any) {
	segments := SplitPath(path)
	node := cfg

	for _, seg := range segments[:len(segments)-1] {
		next, ok := AsMap(node[seg])
		if !ok {
			next = models.Config{}
			node[seg] = next
		}
		node = next
	}

	node[segments[len(segments)-1]] = Normalize(value)
}

// GetPath returns the value stored at path.
func GetPath(cfg models.Config, path string) (any, bool) {
	segments := SplitPath(path)
	node := cfg

	for _, seg := range segments[:len(segments)-1] {
		next, ok := AsMap(node[seg])
		if !ok {
			return nil, false
		}
		node = next
	}

	v, ok := node[segments[len(segments)-1]]
	return v, ok
}

// GetSection returns the mapping stored at path.
func GetSection(cfg models.Config, path string) (models.Config, bool) {
	v, ok := GetPath(cfg, path)
	if !ok {
		return nil, false
	}
	return AsMap(v)
}

// DeletePath removes the value stored at path and reports whether anything
// was removed. Intermediate mappings are left in place.
func DeletePath(cfg models.Config, path string) bool {
	segments := SplitPath(path)
	parent := cfg

	if len(segments) > 1 {
		var ok bool
		parent, ok = GetSection(cfg, JoinPath(segments[:len(segments)-1]...))
		if !ok {
			return false
		}
	}

	last := segments[len(segments)-1]
	if _, ok := parent[last]; !ok {
		return false
	}
	delete(parent, last)
	return true
}
