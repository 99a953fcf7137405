// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
)

// APIKeyFileLoader loads an API key properties file as downloaded from the
// Stormpath console:
//
//	apiKey.id = 144JVZINOF5EBNCMG9EXAMPLE
//	apiKey.secret = lWxOiKqKPNwJmSldbiSkEbkNjgh2uRSNAb+AEXAMPLE
//
// The fragment is {client: {apiKey: {id, secret}}} holding only the keys
// found in the file.
type APIKeyFileLoader struct {
	Path      string
	MustExist bool
	FS        fs.FS
}

// NewAPIKeyFileLoader returns a loader for an optional API key file on the
// host filesystem.
func NewAPIKeyFileLoader(path string) *APIKeyFileLoader {
	return &APIKeyFileLoader{Path: path}
}

func (l *APIKeyFileLoader) Load(ctx context.Context) (models.Config, error) {
	data, ok, err := readFile(l.FS, l.Path, l.MustExist)
	if err != nil || !ok {
		return models.Config{}, err
	}

	props, err := ParseProperties(data)
	if err != nil {
		return nil, models.WrapConfigurationError(fmt.Sprintf("Unable to parse %q", l.Path), err)
	}

	out := models.Config{}
	for _, key := range []string{"id", "secret"} {
		value, ok := utils.GetPath(props, utils.JoinPath("apiKey", key))
		if !ok {
			continue
		}
		utils.SetPath(out, utils.JoinPath(PathAPIKey, key), value)
	}
	return out, nil
}
