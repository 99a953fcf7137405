package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages carried by the configuration errors raised in this package.
const (
	MsgAPIKeyRequired = "API key ID and secret are required."
	MsgSPAViewMissing = "SPA mode is enabled but stormpath.web.spa.view isn't set. " +
		"This needs to be the absolute path to the file that you want to serve as your SPA entry."
)
