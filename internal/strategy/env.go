// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/caarlos0/env/v11"
)

// EnvLoader loads configuration from environment variables whose names start
// with Prefix followed by an underscore. The prefix is matched
// case-insensitively and values are kept as strings.
//
// The body of a variable name (the part after the prefix) resolves to a key
// path through, in order, [EnvAliases], the canonical paths of [KnownPaths]
// and Schema, and finally by lower-casing the body and splitting it on
// underscores: STORMPATH_CLIENT_APIKEY_ID → client*apiKey*id,
// STORMPATH_WEB_LOGIN_ENABLED → web*login*enabled.
type EnvLoader struct {
	Prefix string
	// Environ is the environment snapshot to read.
	Environ map[string]string
	// Schema optionally contributes additional canonical paths, usually the
	// default configuration.
	Schema models.Config
}

// NewEnvLoader returns a loader over a snapshot of the process environment
// taken now.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{Prefix: prefix, Environ: env.ToMap(os.Environ())}
}

func (l *EnvLoader) Load(ctx context.Context) (models.Config, error) {
	head := strings.ToUpper(l.Prefix) + "_"
	index := indexPaths(l.Schema)

	names := make([]string, 0, len(l.Environ))
	for name := range l.Environ {
		if strings.HasPrefix(strings.ToUpper(name), head) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := models.Config{}
	for _, name := range names {
		value := l.Environ[name]
		path := envKeyPath(strings.ToUpper(name)[len(head):], value, index)
		if path == "" {
			continue
		}
		utils.SetPath(out, path, value)
	}
	return out, nil
}

func envKeyPath(body, value string, index map[string]string) string {
	if body == applicationKey {
		return applicationPath(value)
	}
	if path, ok := EnvAliases[body]; ok {
		return path
	}
	if path, ok := index[body]; ok {
		return path
	}

	var segments []string
	for _, seg := range strings.Split(strings.ToLower(body), "_") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return utils.JoinPath(segments...)
}
