package adapter

import (
	"time"

	"github.com/MKhiriev/go-stormpath-config/internal/config"
	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/models"
)

// NewClientFactory returns a function building an [APIClient] from the
// client section of a resolved configuration. A positive timeout overrides
// client.connectionTimeout.
func NewClientFactory(timeout time.Duration, logger *logger.Logger) func(models.Config) (APIClient, error) {
	return func(cfg models.Config) (APIClient, error) {
		settings, err := config.DecodeClientSettings(cfg)
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			settings.ConnectionTimeout = timeout
		}
		return NewHTTPAPIClient(settings, logger)
	}
}
