// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the Stormpath REST API.
//
// The primary abstraction is [APIClient], which decouples remote enrichment
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAPIClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient defines read access to the Stormpath resources needed to enrich
// a configuration. Implementations resolve linked resources eagerly so the
// returned views can be walked without further calls.
type APIClient interface {
	// GetApplication fetches the application at href together with its
	// account store mappings, the account store of each mapping (directories
	// with their provider), the default account store mapping (with password
	// and account creation policies of its directory) and the OAuth policy.
	GetApplication(ctx context.Context, href string) (*models.Application, error)

	// FindApplicationByName looks the application up by its exact name in
	// the current tenant and returns it like GetApplication. Returns
	// [ErrNotFound] (wrapped) when no application has that name.
	FindApplicationByName(ctx context.Context, name string) (*models.Application, error)
}
