package main

import (
	"os"
	"path/filepath"
	"testing"
)

func baseConfig() appConfig {
	return appConfig{
		Format:  defaultFormat,
		SortKey: defaultSortKey,
		OnError: defaultOnError,
		Workers: defaultWorkers,
		MinSize: -1,
	}
}

func TestBuildFilterSpec_FlagsOnly(t *testing.T) {
	cfg := baseConfig()
	cfg.IP = "10.0.0.1"
	cfg.Method = "GET"
	cfg.Status = 404
	cfg.Pattern = "admin"
	cfg.MinSize = 100
	cfg.From = "2020-10-01"
	cfg.To = "2020-10-31"

	spec, err := buildFilterSpec(cfg)
	if err != nil {
		t.Fatalf("buildFilterSpec() error = %v", err)
	}
	if spec.IP != "10.0.0.1" || spec.Method != "GET" || spec.Status != 404 ||
		spec.Pattern != "admin" || spec.MinSize != 100 {
		t.Errorf("spec = %+v", spec)
	}
	if spec.From.IsZero() || spec.To.IsZero() {
		t.Error("boundaries not parsed")
	}
}

func TestBuildFilterSpec_BadBoundary(t *testing.T) {
	cfg := baseConfig()
	cfg.From = "not-a-date"
	if _, err := buildFilterSpec(cfg); err == nil {
		t.Error("buildFilterSpec() accepted a bad boundary")
	}
}

func TestBuildFilterSpec_FlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.yml")
	if err := os.WriteFile(path, []byte("method: POST\nip: 1.1.1.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := baseConfig()
	cfg.FilterFile = path
	cfg.Method = "GET" // explicit value wins over the file

	spec, err := buildFilterSpec(cfg)
	if err != nil {
		t.Fatalf("buildFilterSpec() error = %v", err)
	}
	if spec.Method != "GET" {
		t.Errorf("Method = %q, want flag override GET", spec.Method)
	}
	if spec.IP != "1.1.1.1" {
		t.Errorf("IP = %q, want file value 1.1.1.1", spec.IP)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Format != defaultFormat {
		t.Errorf("Format = %q, want %q", cfg.Format, defaultFormat)
	}
	if cfg.OnError != policyHalt {
		t.Errorf("OnError = %q, want halt", cfg.OnError)
	}
	if cfg.MinSize != -1 {
		t.Errorf("MinSize = %d, want -1", cfg.MinSize)
	}
	if cfg.APIAddr == "" {
		t.Error("APIAddr not derived from defaults")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	doc := "format: json\nsort-key: size\non-error: continue\nworkers: 4\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Format != "json" || cfg.SortKey != "size" || cfg.OnError != "continue" || cfg.Workers != 4 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfig_BadPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("on-error: maybe\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig() accepted an invalid on-error policy")
	}
}
