package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/wallplanner/internal/config"
	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/repository"
	"github.com/alexanderramin/wallplanner/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpenKV_UnopenableSQLiteFallsBackToMemory(t *testing.T) {
	home := t.TempDir()
	notADir := filepath.Join(home, "notadir")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o644))

	cfg := config.DefaultConfig(home)
	cfg.Store.Path = filepath.Join(notADir, "wallplanner.db")

	core, logs := observer.New(zapcore.WarnLevel)
	kv, closer, err := openKV(cfg, zap.New(core))
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &repository.MemoryKVRepo{}, kv)
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "state store unavailable")

	// The session still works for the rest of the run.
	st := store.New(kv, zap.NewNop())
	st.Write(context.Background(), domain.StoredPlannerState{Settings: domain.DefaultSettings(), Year: 2024, Month: 2})
	got := st.Read(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Month)
}

func TestOpenKV_SQLite(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())

	kv, closer, err := openKV(cfg, zap.NewNop())
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &repository.SQLiteKVRepo{}, kv)
	_, err = os.Stat(cfg.Store.Path)
	assert.NoError(t, err)
}

func TestOpenKV_UnknownBackend(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())
	cfg.Store.Backend = "etcd"

	_, _, err := openKV(cfg, zap.NewNop())
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
