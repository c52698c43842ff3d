package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home, filepath.Join(home, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, "wallplanner.db"), cfg.Store.Path)
	assert.Equal(t, "127.0.0.1:8421", cfg.Server.Addr)
	assert.Equal(t, domain.PresetLetter, cfg.DefaultPreset)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  backend: file
  dir: /tmp/planner-state
server:
  addr: ":9000"
log:
  level: debug
default_preset: a3
`), 0o644))

	cfg, err := Load(home, path)
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "/tmp/planner-state", cfg.Store.Dir)
	assert.Equal(t, filepath.Join(home, "wallplanner.db"), cfg.Store.Path, "unset keys keep defaults")
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, domain.PresetA3, cfg.DefaultPreset)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: file\n"), 0o644))

	t.Setenv("WALLPLANNER_STORE", "REDIS")
	t.Setenv("WALLPLANNER_REDIS_ADDR", "redis:6380")
	t.Setenv("WALLPLANNER_REDIS_DB", "2")
	t.Setenv("WALLPLANNER_ADDR", ":7000")
	t.Setenv("WALLPLANNER_LOG_LEVEL", "info")
	t.Setenv("WALLPLANNER_PRESET", "A3")
	t.Setenv("WALLPLANNER_DB", "/data/planner.db")

	cfg, err := Load(home, path)
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, domain.PresetA3, cfg.DefaultPreset)
	assert.Equal(t, "/data/planner.db", cfg.Store.Path)
}

func TestLoad_InvalidRedisDBIgnored(t *testing.T) {
	t.Setenv("WALLPLANNER_REDIS_DB", "two")
	home := t.TempDir()

	cfg, err := Load(home, filepath.Join(home, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	home := t.TempDir()

	t.Run("backend", func(t *testing.T) {
		t.Setenv("WALLPLANNER_STORE", "etcd")
		_, err := Load(home, filepath.Join(home, "none.yaml"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("preset", func(t *testing.T) {
		t.Setenv("WALLPLANNER_PRESET", "b5")
		_, err := Load(home, filepath.Join(home, "none.yaml"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, domain.ErrUnknownPreset)
	})
}

func TestLoad_MalformedYAML(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [unclosed"), 0o644))

	_, err := Load(home, path)
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/h", "config.yaml"), Path("/h"))
	t.Setenv("WALLPLANNER_CONFIG", "/etc/wallplanner.yaml")
	assert.Equal(t, "/etc/wallplanner.yaml", Path("/h"))
}
