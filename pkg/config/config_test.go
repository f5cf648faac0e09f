package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "." {
		t.Fatalf("OutputDir default = %q, want \".\"", cfg.OutputDir)
	}
	if cfg.LastDirectory != "" {
		t.Fatalf("LastDirectory should be empty, got %q", cfg.LastDirectory)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tfc", "config.yaml")

	cfg := &Config{
		LastDirectory: "/home/user/docs",
		OutputDir:     "/home/user/out",
		Debug:         true,
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LastDirectory != cfg.LastDirectory {
		t.Errorf("LastDirectory = %q, want %q", loaded.LastDirectory, cfg.LastDirectory)
	}
	if loaded.OutputDir != cfg.OutputDir {
		t.Errorf("OutputDir = %q, want %q", loaded.OutputDir, cfg.OutputDir)
	}
	if !loaded.Debug {
		t.Errorf("Debug should round-trip as true")
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TFC_TEST_HOME", "/home/tester")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "last_directory: $TFC_TEST_HOME/docs\noutput_dir: $TFC_TEST_HOME/out\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LastDirectory != "/home/tester/docs" {
		t.Errorf("LastDirectory = %q, want /home/tester/docs", cfg.LastDirectory)
	}
	if cfg.OutputDir != "/home/tester/out" {
		t.Errorf("OutputDir = %q, want /home/tester/out", cfg.OutputDir)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: [broken"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
