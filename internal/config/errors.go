package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [DecodeClientSettings] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidSourcesConfigs indicates invalid loader settings
	// (for example, an empty environment prefix).
	ErrInvalidSourcesConfigs = errors.New("invalid sources configuration")
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidRemoteConfigs indicates invalid API settings
	// (for example, a negative request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidClientSettings indicates a client section that cannot be
	// decoded into [ClientSettings].
	ErrInvalidClientSettings = errors.New("invalid client settings")
)
