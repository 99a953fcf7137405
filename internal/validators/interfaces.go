// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides validation of loaded configurations.
//
// Core concepts:
//   - Validator: generic interface to validate a value, optionally scoped to
//     named fields.
//   - Bound: a Validator with a fixed field scope, usable as a validation
//     step of a configuration loader.
//
// Usage patterns:
//  1. Implement Validator to encode a group of related checks.
//  2. Bind it (optionally to a subset of fields) and pass it to the loader.
//  3. Match returned errors with errors.Is against the models error kinds.
package validators

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/models"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Bound validates configurations with a Validator restricted to a fixed set
// of fields.
type Bound struct {
	validator Validator
	fields    []string
}

// Bind returns v restricted to fields. No fields means every field v knows.
func Bind(v Validator, fields ...string) *Bound {
	return &Bound{validator: v, fields: fields}
}

// Validate runs the bound validator over cfg.
func (b *Bound) Validate(ctx context.Context, cfg models.Config) error {
	return b.validator.Validate(ctx, cfg, b.fields...)
}
