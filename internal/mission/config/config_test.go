package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, "/", cfg.Server.BasePath)
	require.Equal(t, "http://localhost:8000/api", cfg.Backend.BaseURL)
	require.False(t, cfg.Backend.DemoMode)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.yaml")
	raw := `
server:
  address: ":9090"
  base_path: /dash
backend:
  base_url: https://backend.internal/api
  timeout: 5s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Server.Address)
	require.Equal(t, "/dash", cfg.Server.BasePath)
	require.Equal(t, "https://backend.internal/api", cfg.Backend.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverridesWin(t *testing.T) {
	t.Setenv("MISSION_HTTP_ADDR", ":7000")
	t.Setenv("MISSION_BACKEND_URL", "http://other:8000/api")
	t.Setenv("MISSION_DEMO_MODE", "true")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":7000", cfg.Server.Address)
	require.Equal(t, "http://other:8000/api", cfg.Backend.BaseURL)
	require.True(t, cfg.Backend.DemoMode)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestPortEnvFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Server.Address)
}

func TestValidateRequiresBackendURLOutsideDemoMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  base_url: \"\"\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "base_url")
}
