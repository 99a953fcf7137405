package strategy

import "errors"

var (
	// ErrUnsupportedFormat is returned when a configuration file extension has
	// no registered parser.
	ErrUnsupportedFormat = errors.New("unsupported configuration file format")
)

// Messages carried by the configuration errors raised in this package.
const (
	MsgUnableToLoadAPIKey = "Unable to load apiKey id and secret."
)
