// Package config provides configuration loading, merging, and validation
// facilities for the stormcfg command, plus typed views over a resolved
// Stormpath configuration.
//
// The command configuration is assembled from multiple sources in the
// following priority order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables prefixed with STORMCFG_
//  3. YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the command options and
// [DecodeClientSettings] for the client section of a resolved configuration.
package config
