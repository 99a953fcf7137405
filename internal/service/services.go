package service

import (
	"github.com/MKhiriev/go-stormpath-config/internal/config"
	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/models"
)

type Services struct {
	ResolverService ResolverService
	AppInfoService  AppInfoService
}

func NewServices(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ResolverService: NewResolverService(cfg, logger),
		AppInfoService:  appInfo,
	}, nil
}
