package strategy

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
)

// ExtendLoader contributes a caller-supplied configuration, typically the
// last loader in a chain so explicit overrides win.
type ExtendLoader struct {
	With models.Config
}

// NewExtendLoader returns a loader for with. with is copied on every Load.
func NewExtendLoader(with models.Config) *ExtendLoader {
	return &ExtendLoader{With: with}
}

func (l *ExtendLoader) Load(ctx context.Context) (models.Config, error) {
	return utils.Clone(l.With), nil
}
