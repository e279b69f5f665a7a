package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "croupier", "config.toml"), GetConfigFilePath())
}

func TestLoadMissingConfigReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(GetConfigFilePath())
	assert.True(t, os.IsNotExist(err), "loading must not create a config file")
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("hands = 6\nseed = 42\n"), 0644))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Hands)
	assert.Equal(t, ColorAuto, cfg.Color)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"too many hands": "hands = 11\n",
		"no hands":       "hands = 0\n",
		"bad color":      "color = \"sometimes\"\n",
		"not toml":       "hands = [\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := LoadConfigFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "croupier", "config.toml")

	written, err := WriteDefaultConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), written)

	loaded, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, written, loaded)

	_, err = WriteDefaultConfig(path, false)
	assert.Error(t, err)

	_, err = WriteDefaultConfig(path, true)
	assert.NoError(t, err)
}

func TestEncode(t *testing.T) {
	out, err := Default().Encode()
	require.NoError(t, err)
	assert.Contains(t, out, "hands = 4")
	assert.Contains(t, out, `color = "auto"`)
	assert.NotContains(t, out, "seed")
}
