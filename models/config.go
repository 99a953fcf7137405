// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Config is a configuration tree: string keys mapped to scalars, slices, or
// nested Config values.
//
// No schema is enforced at this level. Every nested mapping stored in a
// Config produced by this module is itself a Config, so callers can type
// assert on Config when walking the tree.
type Config map[string]any

// Section returns the nested Config stored under key, if any.
func (c Config) Section(key string) (Config, bool) {
	switch v := c[key].(type) {
	case Config:
		return v, v != nil
	case map[string]any:
		return Config(v), v != nil
	default:
		return nil, false
	}
}

// Has reports whether key is present, regardless of its value.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}
