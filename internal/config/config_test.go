package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"geomkit/internal/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Logging.Sink != SinkConsole {
		t.Errorf("expected Sink=console, got %s", cfg.Logging.Sink)
	}
	if cfg.Logging.File != logging.DefaultLogFile {
		t.Errorf("expected File=%s, got %s", logging.DefaultLogFile, cfg.Logging.File)
	}
	if cfg.Demo.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", cfg.Demo.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("GEOMKIT_LOG_SINK", "")
	t.Setenv("GEOMKIT_LOG_FILE", "")
	t.Setenv("GEOMKIT_WORKERS", "")

	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Logging.Sink = SinkFile
	cfg.Logging.File = "shapes.log"
	cfg.Demo.Workers = 8

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("config round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GEOMKIT_LOG_SINK", "")
	t.Setenv("GEOMKIT_LOG_FILE", "")
	t.Setenv("GEOMKIT_WORKERS", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GEOMKIT_LOG_SINK", "none")
	t.Setenv("GEOMKIT_LOG_FILE", "override.log")
	t.Setenv("GEOMKIT_WORKERS", "2")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.Logging.Sink != SinkNone {
		t.Errorf("expected Sink=none, got %s", cfg.Logging.Sink)
	}
	if cfg.Logging.File != "override.log" {
		t.Errorf("expected File=override.log, got %s", cfg.Logging.File)
	}
	if cfg.Demo.Workers != 2 {
		t.Errorf("expected Workers=2, got %d", cfg.Demo.Workers)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Sink = "syslog"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown sink")
	}

	cfg = DefaultConfig()
	cfg.Logging.Sink = SinkFile
	cfg.Logging.File = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for file sink without path")
	}

	cfg = DefaultConfig()
	cfg.Demo.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero workers")
	}
}

func TestNewShapeLogger(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		log, closer, err := NewShapeLogger(LoggingConfig{Sink: SinkConsole})
		if err != nil {
			t.Fatalf("NewShapeLogger failed: %v", err)
		}
		if log == nil {
			t.Fatal("expected a logger")
		}
		if closer != nil {
			t.Error("console sink should not need a closer")
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shapes.log")
		log, closer, err := NewShapeLogger(LoggingConfig{Sink: SinkFile, File: path})
		if err != nil {
			t.Fatalf("NewShapeLogger failed: %v", err)
		}
		log.LogInfo("event")
		if closer == nil {
			t.Fatal("file sink must expose a closer")
		}
		if err := closer(); err != nil {
			t.Errorf("closer failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("log file missing: %v", err)
		}
	})

	t.Run("none", func(t *testing.T) {
		log, closer, err := NewShapeLogger(LoggingConfig{Sink: SinkNone})
		if err != nil {
			t.Fatalf("NewShapeLogger failed: %v", err)
		}
		log.LogInfo("discarded")
		if closer != nil {
			t.Error("nop sink should not need a closer")
		}
	})
}
