package strategy

import (
	"context"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/spf13/cast"
)

// MoveAPIKeyToClient relocates a legacy top-level apiKey block
// ({apiKey: {id, secret}}) to client.apiKey. The top-level key is always
// removed; an empty value (null, "", false, 0 or an empty mapping) is
// treated as absent.
type MoveAPIKeyToClient struct{}

func (MoveAPIKeyToClient) Process(ctx context.Context, cfg models.Config) (models.Config, error) {
	if cfg == nil {
		return models.Config{}, nil
	}

	raw, ok := cfg["apiKey"]
	if !ok {
		return cfg, nil
	}

	if !isEmptyValue(raw) {
		apiKey, _ := utils.AsMap(raw)
		id := cast.ToString(apiKey["id"])
		secret := cast.ToString(apiKey["secret"])
		if id == "" || secret == "" {
			return nil, models.NewMissingCredentialsError(MsgUnableToLoadAPIKey)
		}
		utils.SetPath(cfg, PathAPIKeyID, id)
		utils.SetPath(cfg, PathAPIKeySecret, secret)
	}

	delete(cfg, "apiKey")
	return cfg, nil
}

func isEmptyValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case []any:
		return len(x) == 0
	}
	if m, ok := utils.AsMap(v); ok {
		return len(m) == 0
	}
	if n, err := cast.ToFloat64E(v); err == nil {
		return n == 0
	}
	return false
}
