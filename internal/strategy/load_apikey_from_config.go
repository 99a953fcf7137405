// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"context"
	"io/fs"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/spf13/cast"
)

// LoadAPIKeyFromConfig resolves client.apiKey.file: the referenced API key
// file is loaded into client.apiKey and the file key is removed. The file
// must exist.
type LoadAPIKeyFromConfig struct {
	FS fs.FS
}

func (p *LoadAPIKeyFromConfig) Process(ctx context.Context, cfg models.Config) (models.Config, error) {
	if cfg == nil {
		return models.Config{}, nil
	}

	raw, ok := utils.GetPath(cfg, PathAPIKeyFile)
	if !ok {
		return cfg, nil
	}
	path := cast.ToString(raw)
	if path == "" {
		return cfg, nil
	}

	fragment, err := (&APIKeyFileLoader{Path: path, MustExist: true, FS: p.FS}).Load(ctx)
	if err != nil {
		return nil, err
	}

	utils.Merge(cfg, fragment)
	utils.DeletePath(cfg, PathAPIKeyFile)
	return cfg, nil
}
