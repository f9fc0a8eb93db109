package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/taka/internal/model"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 800*time.Millisecond, cfg.ErrorDelay())
	assert.Equal(t, model.Settings{Language: model.Bengali, Theme: model.Light, Currency: "৳"}, cfg.Settings())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taka", "config.toml")
	cfg := DefaultConfig()
	cfg.General.DBPath = "/tmp/ledger.db"
	cfg.Defaults.Language = "en"
	cfg.Lock.ErrorDelayMS = 250

	require.False(t, Exists(path))
	require.NoError(t, Save(path, cfg))
	require.True(t, Exists(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, "/tmp/ledger.db", got.DBPath())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\ntheme = \"dark\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Defaults.Theme)
	assert.Equal(t, "bn", cfg.Defaults.Language)
	assert.Equal(t, 800, cfg.Lock.ErrorDelayMS)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"language", "[defaults]\nlanguage = \"fr\"\n"},
		{"theme", "[defaults]\ntheme = \"sepia\"\n"},
		{"currency", "[defaults]\ncurrency = \"\"\n"},
		{"delay", "[lock]\nerror_delay_ms = -1\n"},
		{"log level", "[general]\nlog_level = \"loud\"\n"},
		{"syntax", "[general\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestConfigDirHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "taka"), ConfigDir())
	assert.Equal(t, filepath.Join(dir, "taka", "config.toml"), ConfigPath())
	assert.Equal(t, filepath.Join(dir, "taka", "taka.db"), DefaultConfig().DBPath())
}

func TestGetPIN(t *testing.T) {
	t.Setenv("TAKA_PIN", "1234")
	assert.Equal(t, "1234", GetPIN())
}
