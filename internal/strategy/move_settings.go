// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"context"
	"io/fs"
	"sort"
	"strings"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
)

// SourceFunc selects the flat settings mapping scanned by [MoveSettings].
type SourceFunc func(cfg models.Config) models.Config

// DestinationFunc selects the section the lifted settings are merged into.
// Returning false makes the strategy a no-op.
type DestinationFunc func(cfg models.Config) (models.Config, bool)

// MoveSettings lifts flat host-framework settings such as
// STORMPATH_API_KEY_ID into their nested location (client.apiKey.id).
// Names are resolved through [SettingsMappings]; unknown names are ignored.
// When STORMPATH_API_KEY_FILE is among the settings the referenced file is
// loaded as well.
type MoveSettings struct {
	Source      SourceFunc
	Destination DestinationFunc
	// FS is used to read a referenced API key file when set.
	FS fs.FS
}

// NewMoveSettingsToConfig returns a strategy lifting the settings of source
// into the configuration being processed. source is only read.
func NewMoveSettingsToConfig(source models.Config) *MoveSettings {
	return &MoveSettings{
		Source:      func(models.Config) models.Config { return source },
		Destination: func(cfg models.Config) (models.Config, bool) { return cfg, true },
	}
}

// NewMoveStormpathSettingsToStormpathConfig returns a strategy lifting the
// settings found at the top level of the configuration being processed into
// its stormpath section. It does nothing when the stormpath section is
// missing or empty.
func NewMoveStormpathSettingsToStormpathConfig() *MoveSettings {
	return &MoveSettings{
		Source:      func(cfg models.Config) models.Config { return cfg },
		Destination: func(cfg models.Config) (models.Config, bool) {
			section, ok := cfg.Section("stormpath")
			return section, ok && len(section) > 0
		},
	}
}

func (s *MoveSettings) Process(ctx context.Context, cfg models.Config) (models.Config, error) {
	if cfg == nil {
		cfg = models.Config{}
	}

	dst, ok := s.Destination(cfg)
	if !ok {
		return cfg, nil
	}

	fragment, err := s.lift(ctx, s.Source(cfg))
	if err != nil {
		return nil, err
	}

	utils.Merge(dst, fragment)
	return cfg, nil
}

func (s *MoveSettings) lift(ctx context.Context, flat models.Config) (models.Config, error) {
	names := make([]string, 0, len(flat))
	for name := range flat {
		if strings.HasPrefix(name, SettingsPrefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := models.Config{}
	withFile := false
	for _, name := range names {
		key := strings.TrimPrefix(name, SettingsPrefix)
		path, ok := SettingsMappings[key]
		if !ok {
			continue
		}

		value := flat[name]
		if key == applicationKey {
			path = applicationPath(value)
		}
		if path == PathAPIKeyFile {
			withFile = true
		}
		utils.SetPath(out, path, value)
	}

	if withFile {
		return (&LoadAPIKeyFromConfig{FS: s.FS}).Process(ctx, out)
	}
	return out, nil
}
