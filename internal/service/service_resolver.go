// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/internal/adapter"
	"github.com/MKhiriev/go-stormpath-config/internal/config"
	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
)

type resolverService struct {
	opts ResolverOptions
	ids  *utils.RequestIDGenerator

	logger *logger.Logger
}

// NewResolverService returns a ResolverService running the default chain
// configured by cfg. Remote enrichment is enabled by cfg.Remote.Enabled.
func NewResolverService(cfg config.StructuredConfig, logger *logger.Logger) ResolverService {
	opts := ResolverOptions{
		EnvPrefix:            cfg.Sources.Prefix,
		HomeDir:              cfg.Sources.HomeDir,
		WorkDir:              cfg.Sources.WorkDir,
		Files:                cfg.Sources.Files,
		PostProcessOnce: cfg.Sources.PostProcessOnce,
	}
	if cfg.Remote.Enabled {
		opts.ClientFactory = adapter.NewClientFactory(cfg.Remote.RequestTimeout, logger)
	}

	return newResolverService(opts, logger)
}

func newResolverService(opts ResolverOptions, log *logger.Logger) *resolverService {
	if log == nil {
		log = logger.Nop()
	}
	return &resolverService{
		opts:   opts,
		ids:    utils.NewRequestIDGenerator(),
		logger: log,
	}
}

// Resolve builds a fresh chain on every call so the environment snapshot is
// current. Pipeline errors are returned as is.
func (s *resolverService) Resolve(ctx context.Context, extend models.Config) (models.Config, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = s.ids.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}
	log := &logger.Logger{Logger: s.logger.With().Str("request_id", requestID).Logger()}

	opts := s.opts
	opts.Extend = extend

	chain, err := NewDefaultResolver(opts, log)
	if err != nil {
		log.Err(err).Msg("unable to build loader chain")
		return nil, err
	}

	cfg, err := chain.Load(ctx)
	if err != nil {
		log.Err(err).Msg("configuration resolution failed")
		return nil, err
	}

	log.Debug().Int("keys", len(cfg)).Msg("configuration resolved")
	return cfg, nil
}
