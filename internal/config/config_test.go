package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urbansim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.RatePerMinute)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 1000, cfg.Simulation.Population)
	assert.Equal(t, time.Second, cfg.Simulation.PhaseDelay())
	assert.Equal(t, 10, cfg.Simulation.DefaultYears)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "data/urbansim.db", cfg.Storage.Path)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  admin_key: secret
simulation:
  population: 250
  seed: 42
  phase_delay_ms: 10
storage:
  enabled: false
redis:
  addr: localhost:6379
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Server.AdminKey)
	assert.Equal(t, 250, cfg.Simulation.Population)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 10*time.Millisecond, cfg.Simulation.PhaseDelay())
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, 30, cfg.Server.RatePerMinute, "unset fields still get defaults")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [not, a, map"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("URBANSIM_PORT", "7000")
	t.Setenv("URBANSIM_SEED", "99")
	t.Setenv("URBANSIM_ADMIN_KEY", "from-env")
	t.Setenv("URBANSIM_STORAGE", "false")
	t.Setenv("URBANSIM_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("URBANSIM_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.Equal(t, "from-env", cfg.Server.AdminKey)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv("URBANSIM_POPULATION", "lots")
	_, err := LoadFromEnv("")
	assert.ErrorContains(t, err, "URBANSIM_POPULATION")
}
