package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [BindFlags].
const (
	FlagConfig         = "config"
	FlagPrefix         = "prefix"
	FlagFile           = "file"
	FlagHomeDir        = "home-dir"
	FlagWorkDir        = "work-dir"
	FlagPostOnce       = "post-process-once"
	FlagRemote         = "remote"
	FlagRequestTimeout = "request-timeout"
	FlagOutput         = "output"
	FlagLogLevel       = "log-level"
)

// BindFlags registers the command configuration flags on fs.
//
// Flags:
//
//	-c/--config YAML file with command settings
//	-p/--prefix environment variable prefix of the Stormpath settings
//	-f/--file extra configuration file (repeatable)
//	--home-dir directory used in place of the user home
//	--work-dir directory used in place of the working directory
//	--post-process-once run post-processors once after all loaders
//	--remote enrich the configuration from the Stormpath API
//	--request-timeout API request timeout (e.g., "10s")
//	-o/--output output format, yaml or json
//	--log-level log level (debug, info, warn, error, disabled)
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "YAML file with command settings")
	fs.StringP(FlagPrefix, "p", "", "Environment variable prefix of the Stormpath settings")
	fs.StringSliceP(FlagFile, "f", nil, "Extra configuration file, loaded after the standard locations (repeatable)")
	fs.String(FlagHomeDir, "", "Directory used in place of the user home")
	fs.String(FlagWorkDir, "", "Directory used in place of the working directory")
	fs.Bool(FlagPostOnce, false, "Run post-processors once after all loaders")
	fs.Bool(FlagRemote, false, "Enrich the configuration from the Stormpath API")
	fs.Duration(FlagRequestTimeout, 0, "API request timeout (e.g., 10s)")
	fs.StringP(FlagOutput, "o", "", "Output format: yaml or json")
	fs.String(FlagLogLevel, "", "Log level: debug, info, warn, error, disabled")
}

// parseFlags reads the flags registered by [BindFlags] from an already parsed
// fs. Flags that were not set on the command line are left zero.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	str := func(name string, dst *string) {
		if err != nil || fs.Lookup(name) == nil || !fs.Changed(name) {
			return
		}
		*dst, err = fs.GetString(name)
	}
	boolean := func(name string, dst *bool) {
		if err != nil || fs.Lookup(name) == nil || !fs.Changed(name) {
			return
		}
		*dst, err = fs.GetBool(name)
	}

	str(FlagConfig, &cfg.ConfigFilePath)
	str(FlagPrefix, &cfg.Sources.Prefix)
	str(FlagHomeDir, &cfg.Sources.HomeDir)
	str(FlagWorkDir, &cfg.Sources.WorkDir)
	str(FlagOutput, &cfg.Output.Format)
	str(FlagLogLevel, &cfg.Log.Level)
	boolean(FlagPostOnce, &cfg.Sources.PostProcessOnce)
	boolean(FlagRemote, &cfg.Remote.Enabled)

	if err == nil && fs.Lookup(FlagFile) != nil && fs.Changed(FlagFile) {
		cfg.Sources.Files, err = fs.GetStringSlice(FlagFile)
	}
	if err == nil && fs.Lookup(FlagRequestTimeout) != nil && fs.Changed(FlagRequestTimeout) {
		cfg.Remote.RequestTimeout, err = fs.GetDuration(FlagRequestTimeout)
	}

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return cfg, nil
}
