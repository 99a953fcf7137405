// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-stormpath-config/internal/enrichment"
	"github.com/MKhiriev/go-stormpath-config/internal/loader"
	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/internal/strategy"
	"github.com/MKhiriev/go-stormpath-config/internal/validators"
	"github.com/MKhiriev/go-stormpath-config/models"
)

// DefaultConfigFile is the name of the embedded default configuration.
const DefaultConfigFile = "default_config.yml"

// DefaultEnvPrefix is the prefix of environment variables read by the
// default chain.
const DefaultEnvPrefix = "STORMPATH"

//go:embed default_config.yml
var defaultFS embed.FS

// DefaultConfig returns a fresh copy of the embedded default configuration.
func DefaultConfig() (models.Config, error) {
	return defaultLoader().Load(context.Background())
}

// ResolverOptions describes a default loader chain.
type ResolverOptions struct {
	// EnvPrefix defaults to [DefaultEnvPrefix].
	EnvPrefix string

	// HomeDir holds the .stormpath directory. Defaults to the user home
	// directory; ~/.stormpath sources are skipped when it cannot be found.
	HomeDir string

	// WorkDir holds the project-level files. Defaults to the current
	// directory.
	WorkDir string

	// Files are loaded after the standard locations and before the
	// environment. They must exist.
	Files []string

	// Environ replaces the process environment when not nil.
	Environ map[string]string

	// Extend is merged last, over every other source.
	Extend models.Config

	// ClientFactory enables remote enrichment when not nil.
	ClientFactory enrichment.ClientFactory

	// PostProcessOnce runs post-processors once after all loaders. By
	// default they run after every loader, so an API key file referenced by
	// an early source is resolved before later sources override it.
	PostProcessOnce bool
}

// NewDefaultResolver returns the Stormpath loader chain:
//
//	embedded defaults
//	<home>/.stormpath/apiKey.properties
//	<home>/.stormpath/stormpath.yml, stormpath.json
//	<work>/apiKey.properties
//	<work>/stormpath.yml, stormpath.json
//	opts.Files
//	environment (<prefix>_*)
//	opts.Extend
//
// [strategy.LoadAPIKeyFromConfig] and [strategy.MoveAPIKeyToClient] run after
// every loader unless opts.PostProcessOnce is set. The result is enriched by
// [enrichment.EnrichIntegration] when a client factory is given, and
// validated by [validators.ClientValidator].
func NewDefaultResolver(opts ResolverOptions, log *logger.Logger) (*loader.ConfigLoader, error) {
	if log == nil {
		log = logger.Nop()
	}

	schema, err := DefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading default configuration: %w", err)
	}

	loaders := []loader.Loader{
		defaultLoader(),
	}

	if home := homeDir(opts.HomeDir); home != "" {
		dir := filepath.Join(home, ".stormpath")
		loaders = append(loaders,
			strategy.NewAPIKeyFileLoader(filepath.Join(dir, "apiKey.properties")),
			strategy.NewFileLoader(filepath.Join(dir, "stormpath.yml")),
			strategy.NewFileLoader(filepath.Join(dir, "stormpath.json")),
		)
	}

	work := opts.WorkDir
	if work == "" {
		work = "."
	}
	loaders = append(loaders,
		strategy.NewAPIKeyFileLoader(filepath.Join(work, "apiKey.properties")),
		strategy.NewFileLoader(filepath.Join(work, "stormpath.yml")),
		strategy.NewFileLoader(filepath.Join(work, "stormpath.json")),
	)

	for _, path := range opts.Files {
		loaders = append(loaders, &strategy.FileLoader{Path: path, MustExist: true})
	}

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	envLoader := strategy.NewEnvLoader(prefix)
	if opts.Environ != nil {
		envLoader.Environ = opts.Environ
	}
	envLoader.Schema = schema

	loaders = append(loaders, envLoader, strategy.NewExtendLoader(opts.Extend))

	postProcessors := []loader.PostProcessor{
		&strategy.LoadAPIKeyFromConfig{},
		strategy.MoveAPIKeyToClient{},
	}
	validatorsChain := []loader.Validator{
		validators.Bind(validators.NewClientValidator()),
	}

	if opts.ClientFactory != nil {
		enrich := enrichment.NewEnrichIntegration(opts.ClientFactory, log.GetChildLogger())
		if opts.PostProcessOnce {
			postProcessors = append(postProcessors, enrich)
		} else {
			// Enrichment needs the complete configuration, so it runs as the
			// first validator instead of after every loader.
			validatorsChain = append([]loader.Validator{enrichAsValidator(enrich)}, validatorsChain...)
		}
	}

	opt := []loader.Option{loader.WithLogger(log)}
	if !opts.PostProcessOnce {
		opt = append(opt, loader.WithPostProcessingPerLoader())
	}

	return loader.NewConfigLoader(loaders, postProcessors, validatorsChain, opt...), nil
}

func defaultLoader() *strategy.FileLoader {
	return &strategy.FileLoader{Path: DefaultConfigFile, MustExist: true, FS: defaultFS}
}

func enrichAsValidator(p loader.PostProcessor) loader.Validator {
	return loader.ValidatorFunc(func(ctx context.Context, cfg models.Config) error {
		_, err := p.Process(ctx, cfg)
		return err
	})
}

func homeDir(dir string) string {
	if dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
