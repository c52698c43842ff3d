package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/wallplanner/internal/cli"
	"github.com/alexanderramin/wallplanner/internal/config"
	"github.com/alexanderramin/wallplanner/internal/db"
	"github.com/alexanderramin/wallplanner/internal/logger"
	"github.com/alexanderramin/wallplanner/internal/repository"
	"github.com/alexanderramin/wallplanner/internal/store"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := config.HomeDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(home, config.Path(home))
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	kv, closer, err := openKV(cfg, log)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.Debug("state store ready", zap.String("backend", cfg.Store.Backend))

	app := &cli.App{
		State:  store.New(kv, log),
		Config: cfg,
		Logger: log,
		Now:    time.Now,
	}

	// Detect interactive terminal for the tui and settings edit commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.TermWidth = func() int {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return 0
		}
		return w
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openKV opens the configured state backend. A SQLite file that cannot be
// opened leaves the session in memory for this run; only an unknown backend
// is an error.
func openKV(cfg config.Config, log *zap.Logger) (repository.KVRepo, io.Closer, error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDB(cfg.Store.Path)
		if err != nil {
			log.Warn("state store unavailable, session will not persist",
				zap.String("path", cfg.Store.Path), zap.Error(err))
			return repository.NewMemoryKVRepo(), nopCloser{}, nil
		}
		return repository.NewSQLiteKVRepo(database), database, nil
	case config.BackendFile:
		return repository.NewFileKVRepo(cfg.Store.Dir), nopCloser{}, nil
	case config.BackendMemory:
		return repository.NewMemoryKVRepo(), nopCloser{}, nil
	case config.BackendRedis:
		client := repository.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		return repository.NewRedisKVRepo(client, cfg.Redis.Prefix), client, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown store backend %q", config.ErrInvalidConfig, cfg.Store.Backend)
	}
}
