// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package enrichment

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/spf13/cast"
)

// SkipRemoteConfigKey disables enrichment when set to true.
const SkipRemoteConfigKey = "skipRemoteConfig"

// EnrichIntegration merges the OAuth policy, the social providers and the
// default directory policies of the configured application into the
// configuration, then validates it with [IntegrationValidator].
type EnrichIntegration struct {
	factory   ClientFactory
	validator *IntegrationValidator
	ids       *utils.RequestIDGenerator

	logger *logger.Logger
}

// NewEnrichIntegration returns an EnrichIntegration building its API client
// with factory. A nil logger disables logging.
func NewEnrichIntegration(factory ClientFactory, log *logger.Logger) *EnrichIntegration {
	if log == nil {
		log = logger.Nop()
	}

	return &EnrichIntegration{
		factory:   factory,
		validator: NewIntegrationValidator(factory, log),
		ids:       utils.NewRequestIDGenerator(),
		logger:    log,
	}
}

// Process implements loader.PostProcessor. Remote lookups carry the request
// id found in ctx, or a fresh one.
func (e *EnrichIntegration) Process(ctx context.Context, cfg models.Config) (models.Config, error) {
	if cast.ToBool(cfg[SkipRemoteConfigKey]) {
		e.logger.Debug().Msg("remote configuration skipped")
		return cfg, nil
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = e.ids.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}
	log := e.logger.With().Str("request_id", requestID).Logger()

	client, err := e.factory(cfg)
	if err != nil {
		log.Err(err).Msg("unable to create api client")
		return nil, models.WrapConfigurationError(MsgClientUnavailable, err)
	}

	// A null or empty href leaves resolution by name to the validator.
	var app *models.Application
	if href := applicationHref(cfg); href != "" {
		app, err = client.GetApplication(ctx, href)
		if err != nil || app == nil || app.Href == "" {
			log.Err(err).Str("href", href).Msg("unable to resolve application")
			return nil, models.WrapConfigurationError(MsgUnresolvedApplication, err)
		}

		utils.SetPath(cfg, "application*oAuthPolicy", oauthPolicyFragment(app.OAuthPolicy))
		utils.Merge(cfg, socialFragment(cfg, app))
		if fragment := directoryPolicyFragment(defaultDirectory(app)); fragment != nil {
			utils.Merge(cfg, fragment)
		}

		log.Debug().
			Str("application", app.Href).
			Int("account_store_mappings", len(app.AccountStoreMappings)).
			Msg("configuration enriched from remote application")
	}

	if err = e.validator.validate(ctx, cfg, client, app); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applicationHref(cfg models.Config) string {
	href, _ := utils.GetPath(cfg, "application*href")
	return cast.ToString(href)
}
