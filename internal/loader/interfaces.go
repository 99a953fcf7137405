package loader

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/models"
)

// Loader produces a configuration fragment from a single source.
type Loader interface {
	Load(ctx context.Context) (models.Config, error)
}

// PostProcessor rewrites the accumulated configuration and returns it.
type PostProcessor interface {
	Process(ctx context.Context, cfg models.Config) (models.Config, error)
}

// Validator checks the final configuration.
type Validator interface {
	Validate(ctx context.Context, cfg models.Config) error
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) (models.Config, error)

func (f LoaderFunc) Load(ctx context.Context) (models.Config, error) { return f(ctx) }

// PostProcessorFunc adapts a function to the PostProcessor interface.
type PostProcessorFunc func(ctx context.Context, cfg models.Config) (models.Config, error)

func (f PostProcessorFunc) Process(ctx context.Context, cfg models.Config) (models.Config, error) {
	return f(ctx, cfg)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, cfg models.Config) error

func (f ValidatorFunc) Validate(ctx context.Context, cfg models.Config) error { return f(ctx, cfg) }
