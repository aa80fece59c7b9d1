package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("ZANAI_API_BASE_URL", "")
	t.Setenv("ZANAI_LISTEN_ADDR", "")
	t.Setenv("ZANAI_PIN", "")
	t.Setenv("ZANAI_JWT_SECRET", "")
	t.Setenv("ZANAI_SEND_TIMEOUT_SECONDS", "")
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateConfigDir(t)

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.SendTimeout)
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "123456", cfg.Pin)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("ZANAI_API_BASE_URL", "https://zanai.example.com")
	t.Setenv("ZANAI_SEND_TIMEOUT_SECONDS", "5")
	t.Setenv("ZANAI_PIN", "654321")

	cfg := LoadConfig()
	assert.Equal(t, "https://zanai.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.SendTimeout)
	assert.Equal(t, "654321", cfg.Pin)
}

func TestLoadConfig_FileThenEnvPrecedence(t *testing.T) {
	dir := isolateConfigDir(t)
	cfgDir := filepath.Join(dir, "zanai")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(
		"api_base_url: https://file.example.com\nsend_timeout_seconds: 10\n",
	), 0o644))

	cfg := LoadConfig()
	assert.Equal(t, "https://file.example.com", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.SendTimeout)

	t.Setenv("ZANAI_API_BASE_URL", "https://env.example.com")
	cfg = LoadConfig()
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.SendTimeout)
}
