// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the stormcfg
// command. It is populated by merging values from command-line flags,
// environment variables, an optional YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - yaml     : key in the YAML config file.
type StructuredConfig struct {
	// Sources controls which configuration sources are loaded and how.
	Sources Sources `envPrefix:"SOURCES_" yaml:"sources"`

	// Remote holds settings for enrichment from the Stormpath API.
	Remote Remote `envPrefix:"REMOTE_" yaml:"remote"`

	// Output selects how the resolved configuration is printed.
	Output Output `envPrefix:"OUTPUT_" yaml:"output"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_" yaml:"log"`

	// ConfigFilePath is the optional path to a YAML file holding any of the
	// settings above.
	// Env: STORMCFG_CONFIG, flag: --config
	ConfigFilePath string `env:"CONFIG" yaml:"-"`
}

// Sources controls the Stormpath configuration loader chain.
type Sources struct {
	// Prefix is the prefix of environment variables read by the environment
	// loader.
	// Env: STORMCFG_SOURCES_PREFIX
	Prefix string `env:"PREFIX" yaml:"prefix"`

	// Files are extra configuration files loaded after the standard
	// locations, in order.
	// Env: STORMCFG_SOURCES_FILES (comma separated)
	Files []string `env:"FILES" yaml:"files"`

	// HomeDir replaces the user home directory when looking for
	// ~/.stormpath files.
	// Env: STORMCFG_SOURCES_HOME_DIR
	HomeDir string `env:"HOME_DIR" yaml:"home_dir"`

	// WorkDir replaces the working directory when looking for
	// ./stormpath.yml and friends.
	// Env: STORMCFG_SOURCES_WORK_DIR
	WorkDir string `env:"WORK_DIR" yaml:"work_dir"`

	// PostProcessOnce runs post-processors once after all loaders instead of
	// after every loader, so a referenced API key file is resolved last.
	// Env: STORMCFG_SOURCES_POST_PROCESS_ONCE
	PostProcessOnce bool `env:"POST_PROCESS_ONCE" yaml:"post_process_once"`
}

// Remote holds settings for enrichment from the Stormpath API.
type Remote struct {
	// Enabled turns on enrichment of the configuration from the API.
	// Env: STORMCFG_REMOTE_ENABLED
	Enabled bool `env:"ENABLED" yaml:"enabled"`

	// RequestTimeout bounds every API request (e.g. "10s").
	// Env: STORMCFG_REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout"`
}

// Output selects how the resolved configuration is printed.
type Output struct {
	// Format is "yaml" or "json".
	// Env: STORMCFG_OUTPUT_FORMAT
	Format string `env:"FORMAT" yaml:"format"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: STORMCFG_LOG_LEVEL
	Level string `env:"LEVEL" yaml:"level"`
}

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// GetStructuredConfig loads, merges, and validates the command configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Command-line flags registered on fs with [BindFlags]
//  2. Environment variables
//  3. YAML file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withFile().
		withDefaults().
		build()
}
