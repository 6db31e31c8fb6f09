package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type validatedConfig struct {
	Mode string `yaml:"mode"`
}

func (c *validatedConfig) Validate() error {
	if c.Mode == "bad" {
		return fmt.Errorf("mode %q not allowed", c.Mode)
	}
	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "name: nt\nport: 8080\n")
	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "nt" || cfg.Port != 8080 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("NT_TEST_NAME", "expanded")
	path := writeConfig(t, "name: ${NT_TEST_NAME}\n")
	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "expanded" {
		t.Errorf("name = %q, want expanded", cfg.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	if err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRunsValidator(t *testing.T) {
	path := writeConfig(t, "mode: bad\n")
	var cfg validatedConfig
	if err := Load(path, &cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadIfPresent(t *testing.T) {
	cfg := testConfig{Name: "default"}

	found, err := LoadIfPresent(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
	if err != nil {
		t.Fatalf("LoadIfPresent: %v", err)
	}
	if found {
		t.Error("found = true for missing file")
	}
	if cfg.Name != "default" {
		t.Errorf("defaults clobbered: %q", cfg.Name)
	}

	path := writeConfig(t, "name: fromfile\n")
	found, err = LoadIfPresent(path, &cfg)
	if err != nil {
		t.Fatalf("LoadIfPresent: %v", err)
	}
	if !found {
		t.Error("found = false for existing file")
	}
	if cfg.Name != "fromfile" {
		t.Errorf("name = %q, want fromfile", cfg.Name)
	}
}
