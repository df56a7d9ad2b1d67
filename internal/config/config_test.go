package config

import (
	"testing"

	"github.com/aurora-pm/aurora/internal/env"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorkDir != env.WorkDir() {
		t.Errorf("WorkDir = %q, want %q", cfg.WorkDir, env.WorkDir())
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %q, want %q", cfg.Host, DefaultHost)
	}
	if cfg.BinDir == "" {
		t.Error("BinDir is empty")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AURORA_HOST", "github.com")
	t.Setenv("AURORA_WORKDIR", "/var/tmp/aurora")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "github.com" {
		t.Errorf("Host = %q, want github.com", cfg.Host)
	}
	if cfg.WorkDir != "/var/tmp/aurora" {
		t.Errorf("WorkDir = %q, want /var/tmp/aurora", cfg.WorkDir)
	}
}
