// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/spf13/cast"
)

const (
	FieldAPIKey = "api_key"
	FieldSPA    = "spa"
)

// ClientValidator checks the settings every Stormpath client needs:
//   - api_key: client.apiKey.id and client.apiKey.secret are non-empty;
//   - spa: web.spa.view is set when web.spa.enabled is true.
type ClientValidator struct {
}

func NewClientValidator() Validator {
	return &ClientValidator{}
}

func (v *ClientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Config:
		return v.validateConfig(ctx, value, fields...)
	case *models.Config:
		if value == nil {
			return v.validateConfig(ctx, nil, fields...)
		}
		return v.validateConfig(ctx, *value, fields...)
	case map[string]any:
		return v.validateConfig(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClientValidator) validateConfig(ctx context.Context, cfg models.Config, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAPIKey, FieldSPA}
	}

	for _, f := range fields {
		switch f {
		case FieldAPIKey:
			if !nonEmpty(cfg, "client*apiKey*id") || !nonEmpty(cfg, "client*apiKey*secret") {
				return models.NewMissingCredentialsError(MsgAPIKeyRequired)
			}
		case FieldSPA:
			enabled, _ := utils.GetPath(cfg, "web*spa*enabled")
			if cast.ToBool(enabled) && !isSet(cfg, "web*spa*view") {
				return models.NewConfigurationError(MsgSPAViewMissing)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func nonEmpty(cfg models.Config, path string) bool {
	if cfg == nil {
		return false
	}
	v, ok := utils.GetPath(cfg, path)
	return ok && cast.ToString(v) != ""
}

func isSet(cfg models.Config, path string) bool {
	if cfg == nil {
		return false
	}
	v, ok := utils.GetPath(cfg, path)
	return ok && v != nil
}
