package strategy

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("yaml", func(t *testing.T) {
		cfg, err := NewFileLoader(filepath.Join("testdata", "stormpath.yml")).Load(ctx)
		require.NoError(t, err)

		id, ok := utils.GetPath(cfg, PathAPIKeyID)
		require.True(t, ok)
		assert.Equal(t, "yaml-id", id)

		ttl, _ := utils.GetPath(cfg, "client*cacheManager*defaultTtl")
		assert.Equal(t, 300, ttl)

		produces, _ := utils.GetPath(cfg, "web*produces")
		assert.Equal(t, []any{"application/json", "text/html"}, produces)
	})

	t.Run("json", func(t *testing.T) {
		cfg, err := NewFileLoader(filepath.Join("testdata", "stormpath.json")).Load(ctx)
		require.NoError(t, err)

		secret, _ := utils.GetPath(cfg, PathAPIKeySecret)
		assert.Equal(t, "json-secret", secret)
		timeout, _ := utils.GetPath(cfg, "client*connectionTimeout")
		assert.Equal(t, 30, timeout)
		ratio, _ := utils.GetPath(cfg, "client*ratio")
		assert.Equal(t, 0.5, ratio)
	})

	t.Run("properties", func(t *testing.T) {
		cfg, err := NewFileLoader(filepath.Join("testdata", "apiKey.properties")).Load(ctx)
		require.NoError(t, err)
		id, _ := utils.GetPath(cfg, "apiKey*id")
		assert.Equal(t, "file-id", id)
	})

	t.Run("missing optional file", func(t *testing.T) {
		cfg, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.yml")).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.Config{}, cfg)
	})

	t.Run("missing mandatory file", func(t *testing.T) {
		l := &FileLoader{Path: filepath.Join(t.TempDir(), "nope.yml"), MustExist: true}
		_, err := l.Load(ctx)
		require.ErrorIs(t, err, models.ErrConfiguration)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := NewFileLoader(filepath.Join("testdata", "broken.yml")).Load(ctx)
		require.ErrorIs(t, err, models.ErrConfiguration)
		assert.Contains(t, err.Error(), "broken.yml")
	})

	t.Run("non-mapping document", func(t *testing.T) {
		_, err := NewFileLoader(filepath.Join("testdata", "list.yml")).Load(ctx)
		require.ErrorIs(t, err, models.ErrConfiguration)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewFileLoader(filepath.Join("testdata", "settings.toml")).Load(ctx)
		require.ErrorIs(t, err, ErrUnsupportedFormat)
		require.ErrorIs(t, err, models.ErrConfiguration)
	})

	t.Run("custom filesystem", func(t *testing.T) {
		fsys := fstest.MapFS{"conf/default.yml": {Data: []byte("web:\n  basePath: /app\n")}}
		cfg, err := (&FileLoader{Path: "conf/default.yml", MustExist: true, FS: fsys}).Load(ctx)
		require.NoError(t, err)
		v, _ := utils.GetPath(cfg, "web*basePath")
		assert.Equal(t, "/app", v)
	})

	t.Run("fragments are independent", func(t *testing.T) {
		l := NewFileLoader(filepath.Join("testdata", "stormpath.yml"))
		first, err := l.Load(ctx)
		require.NoError(t, err)
		utils.SetPath(first, PathAPIKeyID, "changed")

		second, err := l.Load(ctx)
		require.NoError(t, err)
		id, _ := utils.GetPath(second, PathAPIKeyID)
		assert.Equal(t, "yaml-id", id)
	})
}

func TestAPIKeyFileLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("id and secret", func(t *testing.T) {
		cfg, err := NewAPIKeyFileLoader(filepath.Join("testdata", "apiKey.properties")).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.Config{
			"client": models.Config{
				"apiKey": models.Config{"id": "file-id", "secret": "file-secret"},
			},
		}, cfg)
	})

	t.Run("only present keys are written", func(t *testing.T) {
		cfg, err := NewAPIKeyFileLoader(filepath.Join("testdata", "partial.properties")).Load(ctx)
		require.NoError(t, err)
		_, ok := utils.GetPath(cfg, PathAPIKeySecret)
		assert.False(t, ok)
		id, _ := utils.GetPath(cfg, PathAPIKeyID)
		assert.Equal(t, "only-id", id)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := NewAPIKeyFileLoader(filepath.Join(t.TempDir(), "apiKey.properties")).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, cfg)
	})

	t.Run("missing mandatory file", func(t *testing.T) {
		l := &APIKeyFileLoader{Path: filepath.Join(t.TempDir(), "apiKey.properties"), MustExist: true}
		_, err := l.Load(ctx)
		require.ErrorIs(t, err, models.ErrConfiguration)
	})

	t.Run("unrelated keys are ignored", func(t *testing.T) {
		fsys := fstest.MapFS{"k.properties": {Data: []byte("foo = bar\n")}}
		cfg, err := (&APIKeyFileLoader{Path: "k.properties", FS: fsys}).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, cfg)
	})
}

func TestExtendLoader_Load(t *testing.T) {
	with := models.Config{"web": map[string]any{"basePath": "/x"}}
	l := NewExtendLoader(with)

	cfg, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Config{"web": models.Config{"basePath": "/x"}}, cfg)

	utils.SetPath(cfg, "web*basePath", "/y")
	assert.Equal(t, "/x", with["web"].(map[string]any)["basePath"])

	empty, err := NewExtendLoader(nil).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
