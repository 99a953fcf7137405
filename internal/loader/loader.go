// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
)

// ConfigLoader runs loaders, post-processors and validators in order.
type ConfigLoader struct {
	loaders        []Loader
	postProcessors []PostProcessor
	validators     []Validator

	perLoader bool
	logger    *logger.Logger
}

// NewConfigLoader returns a ConfigLoader over the given strategies. The
// slices are copied; nil slices are allowed.
func NewConfigLoader(loaders []Loader, postProcessors []PostProcessor, validators []Validator, opts ...Option) *ConfigLoader {
	c := &ConfigLoader{
		loaders:        append([]Loader(nil), loaders...),
		postProcessors: append([]PostProcessor(nil), postProcessors...),
		validators:     append([]Validator(nil), validators...),
		logger:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load builds a configuration. Strategy errors are returned as is; a
// cancelled ctx stops the run between strategies.
func (c *ConfigLoader) Load(ctx context.Context) (models.Config, error) {
	cfg := models.Config{}

	for i, l := range c.loaders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fragment, err := l.Load(ctx)
		if err != nil {
			c.logger.Err(err).Str("strategy", strategyName(l)).Int("index", i).Msg("loader failed")
			return nil, err
		}
		utils.Merge(cfg, fragment)
		c.logger.Debug().Str("strategy", strategyName(l)).Int("keys", len(fragment)).Msg("fragment merged")

		if c.perLoader {
			if cfg, err = c.postProcess(ctx, cfg); err != nil {
				return nil, err
			}
		}
	}

	if !c.perLoader {
		var err error
		if cfg, err = c.postProcess(ctx, cfg); err != nil {
			return nil, err
		}
	}

	for _, v := range c.validators {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := v.Validate(ctx, cfg); err != nil {
			c.logger.Err(err).Str("strategy", strategyName(v)).Msg("validation failed")
			return nil, err
		}
	}

	c.logger.Debug().Int("keys", len(cfg)).Msg("configuration loaded")
	return cfg, nil
}

func (c *ConfigLoader) postProcess(ctx context.Context, cfg models.Config) (models.Config, error) {
	for _, p := range c.postProcessors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := p.Process(ctx, cfg)
		if err != nil {
			c.logger.Err(err).Str("strategy", strategyName(p)).Msg("post-processor failed")
			return nil, err
		}
		if out != nil {
			cfg = out
		}
		c.logger.Debug().Str("strategy", strategyName(p)).Msg("post-processed")
	}
	return cfg, nil
}

func strategyName(s any) string {
	return fmt.Sprintf("%T", s)
}
