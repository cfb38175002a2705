package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigPathShowsResolvedLocations(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, out, "config:   "+env.configPath)
	requireContains(t, out, "database: "+env.cfg.Database.Path)
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _, err := runCLI(t, target, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "wrote sample config to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, _, err := runCLI(t, target, "config", "init"); err == nil {
		t.Fatal("second init should refuse to overwrite")
	}
}
