// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package enrichment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stormpath-config/internal/adapter"
	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/spf13/cast"
)

// ClientFactory builds an API client from a resolved configuration.
type ClientFactory func(cfg models.Config) (adapter.APIClient, error)

// IntegrationValidator checks the settings a web integration depends on.
// Checks run in a fixed order and the first failure is returned:
// application, Google, Facebook, default account store, auto login against
// email verification, cookie.
type IntegrationValidator struct {
	factory ClientFactory

	logger *logger.Logger
}

// NewIntegrationValidator returns an IntegrationValidator building its API
// client with factory. A nil logger disables logging.
func NewIntegrationValidator(factory ClientFactory, log *logger.Logger) *IntegrationValidator {
	if log == nil {
		log = logger.Nop()
	}
	return &IntegrationValidator{factory: factory, logger: log}
}

// Validate implements loader.Validator.
func (v *IntegrationValidator) Validate(ctx context.Context, cfg models.Config) error {
	client, err := v.factory(cfg)
	if err != nil {
		v.logger.Err(err).Msg("unable to create api client")
		return models.WrapConfigurationError(MsgClientUnavailable, err)
	}
	return v.validate(ctx, cfg, client, nil)
}

// validate runs the checks. resolved, when not nil, is the application
// already fetched for application.href and is reused instead of a lookup.
func (v *IntegrationValidator) validate(ctx context.Context, cfg models.Config, client adapter.APIClient, resolved *models.Application) error {
	app, err := v.resolveApplication(ctx, cfg, client, resolved)
	if err != nil {
		return err
	}

	google, _ := utils.GetPath(cfg, "web*social*google")
	if !present(google) || SocialEnabledAndEmpty(google) {
		return models.NewConfigurationError(MsgGoogleSettings)
	}

	facebook, _ := utils.GetPath(cfg, "web*social*facebook")
	if !present(facebook) || SocialEnabledAndEmpty(facebook) {
		return models.NewConfigurationError(MsgFacebookSettings)
	}

	if flag(cfg, "web*register*enabled") && app.DefaultAccountStoreMapping == nil {
		return models.NewConfigurationError(MsgNoDefaultAccountStore)
	}

	if flag(cfg, "web*register*autoLogin") && flag(cfg, "web*verifyEmail*enabled") {
		return models.NewConfigurationError(MsgAutoLoginVerifyEmail)
	}

	return validateCookie(cfg)
}

func (v *IntegrationValidator) resolveApplication(ctx context.Context, cfg models.Config, client adapter.APIClient, resolved *models.Application) (*models.Application, error) {
	section, ok := cfg.Section("application")
	if !ok || len(section) == 0 {
		return nil, models.NewConfigurationError(MsgApplicationEmpty)
	}

	href := cast.ToString(section["href"])
	name := cast.ToString(section["name"])

	var (
		app *models.Application
		err error
	)
	switch {
	case href != "":
		if !strings.Contains(href, "/applications/") {
			return nil, models.NewConfigurationError(fmt.Sprintf(MsgApplicationHrefFormat, href))
		}
		if resolved != nil {
			return resolved, nil
		}
		app, err = client.GetApplication(ctx, href)
	case name != "":
		app, err = client.FindApplicationByName(ctx, name)
	default:
		return nil, models.NewConfigurationError(MsgNameOrHrefRequired)
	}

	if err != nil || app == nil {
		v.logger.Err(err).Str("href", href).Str("name", name).Msg("application lookup failed")
		return nil, models.WrapConfigurationError(MsgUnresolvedApplication, err)
	}
	return app, nil
}

func validateCookie(cfg models.Config) error {
	cookie, ok := cfg.Section("cookie")
	if !ok || len(cookie) == 0 {
		return models.NewConfigurationError(MsgCookieEmpty)
	}

	if domain := cookie["domain"]; present(domain) {
		if _, ok := domain.(string); !ok {
			return models.NewConfigurationError(MsgCookieDomainType)
		}
	}

	if duration := cookie["duration"]; present(duration) {
		if _, ok := duration.(time.Duration); !ok {
			return models.NewConfigurationError(MsgCookieDurationType)
		}
	}

	return nil
}

// SocialEnabledAndEmpty reports whether provider is an enabled social
// provider configuration missing its clientId or clientSecret. Values that
// are not mappings report false.
func SocialEnabledAndEmpty(provider any) bool {
	m, ok := utils.AsMap(provider)
	if !ok {
		return false
	}
	return cast.ToBool(m["enabled"]) &&
		(cast.ToString(m["clientId"]) == "" || cast.ToString(m["clientSecret"]) == "")
}

func flag(cfg models.Config, path string) bool {
	v, _ := utils.GetPath(cfg, path)
	return cast.ToBool(v)
}

// present reports whether v holds a value: not nil, false, zero, an empty
// string or an empty mapping or slice.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case time.Duration:
		return t != 0
	case []any:
		return len(t) > 0
	}

	if m, ok := utils.AsMap(v); ok {
		return len(m) > 0
	}
	if n, err := cast.ToFloat64E(v); err == nil {
		return n != 0
	}
	return true
}
