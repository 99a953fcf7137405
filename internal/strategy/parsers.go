// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/goccy/go-json"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// ParserFunc decodes the raw contents of a configuration file into a
// configuration tree.
type ParserFunc func(data []byte) (models.Config, error)

var parsers = map[string]ParserFunc{
	".yml":        ParseYAML,
	".yaml":       ParseYAML,
	".json":       ParseJSON,
	".properties": ParseProperties,
}

// ParserFor returns the parser registered for the extension of path.
func ParserFor(path string) (ParserFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	p, ok := parsers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return p, nil
}

// ParseYAML decodes a YAML document. An empty document yields an empty tree.
func ParseYAML(data []byte) (models.Config, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return asTree(raw)
}

// ParseJSON decodes a JSON object. Integral numbers become int, other
// numbers float64.
func ParseJSON(data []byte) (models.Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.Config{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return asTree(utils.ConvertNumbers(raw))
}

// ParseProperties decodes a Java-style properties file. Dotted keys are
// expanded into nested mappings, so "apiKey.id" becomes {apiKey: {id: …}}.
// Values are kept as strings and ${} expansion is disabled.
func ParseProperties(data []byte) (models.Config, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	keys := p.Keys()
	sort.Strings(keys)

	out := models.Config{}
	for _, key := range keys {
		segments := strings.Split(key, ".")
		value, _ := p.Get(key)
		utils.SetPath(out, utils.JoinPath(segments...), value)
	}
	return out, nil
}

func asTree(raw any) (models.Config, error) {
	if raw == nil {
		return models.Config{}, nil
	}
	tree, ok := utils.AsMap(utils.Normalize(raw))
	if !ok {
		return nil, fmt.Errorf("top-level value is %T, want a mapping", raw)
	}
	return tree, nil
}
