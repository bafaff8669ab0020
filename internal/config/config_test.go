package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Addr != ":5000" {
		t.Errorf("expected addr :5000, got %s", cfg.Server.Addr)
	}
	if cfg.Canvas.Width != 400 || cfg.Canvas.Height != 400 {
		t.Errorf("expected 400x400 canvas, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pendulum.yaml")
	data := []byte("server:\n  addr: \"127.0.0.1:8080\"\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("expected overridden addr, got %s", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
	if cfg.Canvas.Width != 400 {
		t.Errorf("expected default width kept, got %d", cfg.Canvas.Width)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Canvas.Width = 640
	cfg.Log.Encoding = "json"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", got, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("canvas:\n  width: -1\n"), 0644)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero height", func(c *Config) { c.Canvas.Height = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }},
		{"bad encoding", func(c *Config) { c.Log.Encoding = "xml" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas.Width = 300
	s := cfg.Scene()
	if s.Width != 300 || s.Height != 400 {
		t.Errorf("unexpected scene %+v", s)
	}
}
