package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend names accepted by IDEAINDEX_BACKEND
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

const (
	DefaultBackend      = BackendFile
	DefaultSQLiteDriver = "sqlite"
	DefaultIndexDelay   = time.Second
)

// Config holds runtime settings read from the environment
type Config struct {
	Backend         string
	DataDir         string
	SQLiteDriver    string
	PostgresDSN     string
	IndexDelay      time.Duration
	CancelOnRebuild bool
	Author          string
	LogLevel        slog.Level
}

// Load reads a .env file from the working directory if present, then the
// IDEAINDEX_* environment variables, falling back to defaults
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Backend:      strings.ToLower(envOrDefault("IDEAINDEX_BACKEND", DefaultBackend)),
		DataDir:      envOrDefault("IDEAINDEX_DATA_DIR", DefaultDataDir()),
		SQLiteDriver: envOrDefault("IDEAINDEX_SQLITE_DRIVER", DefaultSQLiteDriver),
		PostgresDSN:  os.Getenv("IDEAINDEX_POSTGRES_DSN"),
		IndexDelay:   DefaultIndexDelay,
		Author:       os.Getenv("IDEAINDEX_AUTHOR"),
		LogLevel:     slog.LevelInfo,
	}

	if v := os.Getenv("IDEAINDEX_INDEX_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("IDEAINDEX_INDEX_DELAY: %w", err)
		}
		cfg.IndexDelay = d
	}

	if v := os.Getenv("IDEAINDEX_CANCEL_ON_REBUILD"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("IDEAINDEX_CANCEL_ON_REBUILD: %w", err)
		}
		cfg.CancelOnRebuild = b
	}

	if v := os.Getenv("IDEAINDEX_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("IDEAINDEX_LOG_LEVEL: %w", err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks that the settings are usable together
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("IDEAINDEX_POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (expected file, sqlite, postgres or memory)", c.Backend)
	}
	if c.IndexDelay < 0 {
		return fmt.Errorf("index delay must not be negative, got %s", c.IndexDelay)
	}
	return nil
}

// DefaultDataDir returns $XDG_DATA_HOME/ideaindex, or
// ~/.local/share/ideaindex when XDG_DATA_HOME is unset
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ideaindex")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
