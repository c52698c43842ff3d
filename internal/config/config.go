// Package config loads wallplanner settings from an optional YAML file and
// WALLPLANNER_* environment variables. Environment values win.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"gopkg.in/yaml.v3"
)

// Storage backends for the local state store.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Redis  RedisConfig  `yaml:"redis"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`

	// DefaultPreset seeds a new session when nothing is stored yet.
	DefaultPreset domain.PaperPreset `yaml:"default_preset"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"`
	// Path is the SQLite database file.
	Path string `yaml:"path"`
	// Dir holds one JSON file per key for the file backend.
	Dir string `yaml:"dir"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// BaseURL prefixes printed links, e.g. http://localhost:8421.
	BaseURL string `yaml:"base_url"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when no file or environment
// override is present. home is the wallplanner data directory.
func DefaultConfig(home string) Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
			Path:    filepath.Join(home, "wallplanner.db"),
			Dir:     filepath.Join(home, "state"),
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "wallplanner:",
		},
		Server: ServerConfig{
			Addr:    "127.0.0.1:8421",
			BaseURL: "http://localhost:8421",
		},
		Log: LogConfig{
			Level: "warn",
		},
		DefaultPreset: domain.PresetLetter,
	}
}

// HomeDir returns ~/.wallplanner.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".wallplanner"), nil
}

// Path returns $WALLPLANNER_CONFIG, or config.yaml inside home.
func Path(home string) string {
	if p := os.Getenv("WALLPLANNER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(home, "config.yaml")
}

// Load builds the configuration: defaults, then the YAML file at path if it
// exists, then environment overrides.
func Load(home, path string) (Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WALLPLANNER_STORE"); v != "" {
		cfg.Store.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("WALLPLANNER_DB"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("WALLPLANNER_STATE_DIR"); v != "" {
		cfg.Store.Dir = v
	}
	if v := os.Getenv("WALLPLANNER_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("WALLPLANNER_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("WALLPLANNER_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Redis.DB = n
		}
	}
	if v := os.Getenv("WALLPLANNER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("WALLPLANNER_BASE_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("WALLPLANNER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("WALLPLANNER_LOG_DEV"); v != "" {
		cfg.Log.Development, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WALLPLANNER_PRESET"); v != "" {
		cfg.DefaultPreset = domain.PaperPreset(strings.ToLower(v))
	}
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendFile, BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, c.Store.Backend)
	}
	if _, err := domain.ParsePaperPreset(string(c.DefaultPreset)); err != nil {
		return fmt.Errorf("%w: default_preset: %w", ErrInvalidConfig, err)
	}
	return nil
}
