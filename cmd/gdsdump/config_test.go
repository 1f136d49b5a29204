package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gdsdump.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDumpConfig(t *testing.T) {
	path := writeConfig(t, `
filter = ["LAYER", " XY ", ""]
color = "Never"
limit = 50
stats = true
`)
	cfg, err := loadDumpConfig(path, defaultDumpConfig())
	if err != nil {
		t.Fatalf("loadDumpConfig: %v", err)
	}
	if len(cfg.Filter) != 2 || cfg.Filter[1] != "XY" {
		t.Errorf("filter: got %q", cfg.Filter)
	}
	if cfg.Color != "never" || cfg.Limit != 50 || !cfg.Stats {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadDumpConfigKeepsUnsetKeys(t *testing.T) {
	path := writeConfig(t, `limit = 7`)
	base := defaultDumpConfig()
	base.Filter = []string{"BOUNDARY"}

	cfg, err := loadDumpConfig(path, base)
	if err != nil {
		t.Fatalf("loadDumpConfig: %v", err)
	}
	if cfg.Color != "auto" || len(cfg.Filter) != 1 || cfg.Limit != 7 {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadDumpConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad color", `color = "sometimes"`},
		{"negative limit", `limit = -1`},
		{"unknown key", `colour = "never"`},
		{"bad syntax", `filter = [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadDumpConfig(writeConfig(t, tt.body), defaultDumpConfig()); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := loadDumpConfig(filepath.Join(t.TempDir(), "missing.toml"), defaultDumpConfig()); err == nil {
		t.Error("expected error for missing file")
	}
}
