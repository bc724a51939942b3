package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"IDEAINDEX_BACKEND", "IDEAINDEX_DATA_DIR", "IDEAINDEX_SQLITE_DRIVER",
		"IDEAINDEX_POSTGRES_DSN", "IDEAINDEX_INDEX_DELAY", "IDEAINDEX_CANCEL_ON_REBUILD",
		"IDEAINDEX_AUTHOR", "IDEAINDEX_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	// Keep a stray .env in the package directory out of the way
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Backend != BackendFile {
		t.Errorf("expected file backend, got %s", cfg.Backend)
	}
	if cfg.DataDir != filepath.Join("/data", "ideaindex") {
		t.Errorf("unexpected data dir %s", cfg.DataDir)
	}
	if cfg.IndexDelay != time.Second {
		t.Errorf("expected 1s delay, got %s", cfg.IndexDelay)
	}
	if cfg.CancelOnRebuild {
		t.Error("cancel on rebuild should default to false")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("IDEAINDEX_BACKEND", "SQLite")
	t.Setenv("IDEAINDEX_DATA_DIR", "/tmp/ideas")
	t.Setenv("IDEAINDEX_SQLITE_DRIVER", "sqlite3")
	t.Setenv("IDEAINDEX_INDEX_DELAY", "250ms")
	t.Setenv("IDEAINDEX_CANCEL_ON_REBUILD", "true")
	t.Setenv("IDEAINDEX_AUTHOR", "María Pérez")
	t.Setenv("IDEAINDEX_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Config{
		Backend:         BackendSQLite,
		DataDir:         "/tmp/ideas",
		SQLiteDriver:    "sqlite3",
		IndexDelay:      250 * time.Millisecond,
		CancelOnRebuild: true,
		Author:          "María Pérez",
		LogLevel:        slog.LevelDebug,
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "bad delay", key: "IDEAINDEX_INDEX_DELAY", value: "soon", errMsg: "IDEAINDEX_INDEX_DELAY"},
		{name: "negative delay", key: "IDEAINDEX_INDEX_DELAY", value: "-1s", errMsg: "must not be negative"},
		{name: "bad bool", key: "IDEAINDEX_CANCEL_ON_REBUILD", value: "maybe", errMsg: "IDEAINDEX_CANCEL_ON_REBUILD"},
		{name: "bad level", key: "IDEAINDEX_LOG_LEVEL", value: "loud", errMsg: "IDEAINDEX_LOG_LEVEL"},
		{name: "unknown backend", key: "IDEAINDEX_BACKEND", value: "mongo", errMsg: "unknown backend"},
		{name: "postgres without dsn", key: "IDEAINDEX_BACKEND", value: "postgres", errMsg: "IDEAINDEX_POSTGRES_DSN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}
