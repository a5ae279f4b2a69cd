package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.RawBase != "https://raw.githubusercontent.com" {
		t.Errorf("unexpected default raw_base %q", cfg.RawBase)
	}
	if cfg.Prefix != "DEV LOGS - " {
		t.Errorf("unexpected default prefix %q", cfg.Prefix)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.devlog.yml")

	original := DefaultConfig()
	original.Owner = "someone-else"
	original.Repo = "notes"
	original.Port = 9000
	original.AllowAll = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Owner != original.Owner {
		t.Errorf("owner: got %q, want %q", loaded.Owner, original.Owner)
	}
	if loaded.Repo != original.Repo {
		t.Errorf("repo: got %q, want %q", loaded.Repo, original.Repo)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.AllowAll != original.AllowAll {
		t.Errorf("allow_all: got %v, want %v", loaded.AllowAll, original.AllowAll)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load of missing file should not error: %v", err)
	}
	if cfg.Owner != DefaultConfig().Owner {
		t.Errorf("expected default owner, got %q", cfg.Owner)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DEVLOG_OWNER", "override-owner")
	t.Setenv("DEVLOG_REPO", "override-repo")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Owner != "override-owner" {
		t.Errorf("owner: got %q, want env override", cfg.Owner)
	}
	if cfg.Repo != "override-repo" {
		t.Errorf("repo: got %q, want env override", cfg.Repo)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"bad raw base", func(c *Config) { c.RawBase = "not a url" }, "raw_base"},
		{"empty owner", func(c *Config) { c.Owner = "" }, "owner"},
		{"empty repo", func(c *Config) { c.Repo = "" }, "repo"},
		{"bad port", func(c *Config) { c.Port = -1 }, "port"},
		{"empty export dir", func(c *Config) { c.ExportDir = "" }, "export_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestSourceFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	src := cfg.Source()
	if src.Owner != cfg.Owner || src.RawBase != cfg.RawBase || src.Prefix != cfg.Prefix {
		t.Errorf("Source() did not carry config fields: %+v", src)
	}
}
