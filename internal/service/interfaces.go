package service

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/models"
)

// ResolverService resolves the Stormpath configuration of the current host.
type ResolverService interface {
	// Resolve runs the default loader chain. extend is merged over every
	// other source and may be nil.
	Resolve(ctx context.Context, extend models.Config) (models.Config, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
