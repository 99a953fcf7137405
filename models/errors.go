// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrorKind classifies a [ConfigError]. The set of kinds is closed.
type ErrorKind int

const (
	// KindConfiguration marks a missing, malformed or conflicting setting.
	KindConfiguration ErrorKind = iota + 1

	// KindMissingCredentials marks an API key id or secret that is absent at
	// a checkpoint where it is required.
	KindMissingCredentials
)

// String returns a short human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindMissingCredentials:
		return "missing credentials"
	default:
		return "unknown error"
	}
}

// Sentinels matching any [ConfigError] of the corresponding kind via
// errors.Is.
var (
	ErrConfiguration      = errors.New(KindConfiguration.String())
	ErrMissingCredentials = errors.New(KindMissingCredentials.String())
)

// ConfigError is returned by strategies when the configuration violates an
// invariant. Msg identifies exactly which invariant failed; Err optionally
// carries the underlying cause (for example a file read error).
type ConfigError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// NewConfigurationError returns a [KindConfiguration] error with msg.
func NewConfigurationError(msg string) *ConfigError {
	return &ConfigError{Kind: KindConfiguration, Msg: msg}
}

// WrapConfigurationError returns a [KindConfiguration] error with msg caused
// by err.
func WrapConfigurationError(msg string, err error) *ConfigError {
	return &ConfigError{Kind: KindConfiguration, Msg: msg, Err: err}
}

// NewMissingCredentialsError returns a [KindMissingCredentials] error with msg.
func NewMissingCredentialsError(msg string) *ConfigError {
	return &ConfigError{Kind: KindMissingCredentials, Msg: msg}
}

// Error returns Msg, followed by the cause when one is attached.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *ConfigError) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrMissingCredentials:
		return e.Kind == KindMissingCredentials
	default:
		return false
	}
}
