package loader

import "github.com/MKhiriev/go-stormpath-config/internal/logger"

// Option configures a ConfigLoader.
type Option func(*ConfigLoader)

// WithLogger sets the logger used to trace strategy execution.
func WithLogger(l *logger.Logger) Option {
	return func(c *ConfigLoader) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPostProcessingPerLoader runs every post-processor after each loader
// instead of once after all of them. A key rewritten by a post-processor
// (such as client.apiKey.file) is then resolved before the next source is
// merged, so a later source can still override the resolved values.
func WithPostProcessingPerLoader() Option {
	return func(c *ConfigLoader) {
		c.perLoader = true
	}
}
