// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used to run
// the command.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// package sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Sources.Prefix) == "" {
		return ErrInvalidSourcesConfigs
	}

	switch cfg.Output.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}

	if cfg.Remote.RequestTimeout < 0 {
		return ErrInvalidRemoteConfigs
	}

	return nil
}
