package strategy

import (
	"testing"

	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParserFor ────────────────────────────────────────────────────────────────

func TestParserFor(t *testing.T) {
	for _, path := range []string{"a.yml", "a.YAML", "dir/a.json", "apiKey.properties"} {
		p, err := ParserFor(path)
		require.NoError(t, err, path)
		assert.NotNil(t, p, path)
	}

	_, err := ParserFor("settings.toml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ParserFor("noext")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

// ── YAML ─────────────────────────────────────────────────────────────────────

func TestParseYAML(t *testing.T) {
	t.Run("nested mappings become Config", func(t *testing.T) {
		cfg, err := ParseYAML([]byte("client:\n  apiKey:\n    id: x\n"))
		require.NoError(t, err)

		client, ok := cfg.Section("client")
		require.True(t, ok)
		apiKey, ok := client.Section("apiKey")
		require.True(t, ok)
		assert.Equal(t, "x", apiKey["id"])
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := ParseYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, models.Config{}, cfg)
	})

	t.Run("non-mapping document", func(t *testing.T) {
		_, err := ParseYAML([]byte("- a\n- b\n"))
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseYAML([]byte("a: [b"))
		require.Error(t, err)
	})
}

// ── JSON ─────────────────────────────────────────────────────────────────────

func TestParseJSON(t *testing.T) {
	t.Run("numbers", func(t *testing.T) {
		cfg, err := ParseJSON([]byte(`{"a": 30, "b": 0.5, "c": [1, 2]}`))
		require.NoError(t, err)
		assert.Equal(t, 30, cfg["a"])
		assert.Equal(t, 0.5, cfg["b"])
		assert.Equal(t, []any{1, 2}, cfg["c"])
	})

	t.Run("nested objects become Config", func(t *testing.T) {
		cfg, err := ParseJSON([]byte(`{"web": {"spa": {"enabled": true}}}`))
		require.NoError(t, err)
		web, ok := cfg.Section("web")
		require.True(t, ok)
		_, ok = web["spa"].(models.Config)
		assert.True(t, ok)
	})

	t.Run("blank input", func(t *testing.T) {
		cfg, err := ParseJSON([]byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, cfg)
	})

	t.Run("array at top level", func(t *testing.T) {
		_, err := ParseJSON([]byte(`[1]`))
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"a":`))
		require.Error(t, err)
	})
}

// ── Properties ───────────────────────────────────────────────────────────────

func TestParseProperties(t *testing.T) {
	cfg, err := ParseProperties([]byte("apiKey.id = abc\napiKey.secret = s=e:c\nplain = ${HOME}\n"))
	require.NoError(t, err)

	assert.Equal(t, models.Config{
		"apiKey": models.Config{"id": "abc", "secret": "s=e:c"},
		"plain":  "${HOME}",
	}, cfg)
}
