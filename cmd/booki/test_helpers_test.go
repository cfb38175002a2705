package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"booki/internal/catalog"
	"booki/internal/config"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

// setupCLITestEnv writes a config file pointing at a temp database. The
// catalog lock allows one open store at a time, so helpers open and close
// around each use instead of holding a store for the test's duration.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		configPath: filepath.Join(base, "config.toml"),
		baseDir:    base,
	}
	env.setEditor(t, "true")
	return env
}

// setEditor rewrites the config file with a different editor command and
// reloads env.cfg to match.
func (env *cliTestEnv) setEditor(t *testing.T, command string) {
	t.Helper()

	content := fmt.Sprintf("[database]\npath = %q\n\n[editor]\ncommand = %q\n",
		filepath.Join(env.baseDir, "booki.db"), command)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(env.configPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	env.cfg = cfg
}

// seed opens the catalog, runs fn, and closes it again so a following CLI
// invocation can take the lock.
func (env *cliTestEnv) seed(t *testing.T, fn func(store *catalog.Store)) {
	t.Helper()

	store, err := catalog.Open(env.cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	fn(store)
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
}

// editorScript writes an executable script that replaces the form file with
// the given content, standing in for an interactive editor session.
func editorScript(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "editor.sh")
	script := "#!/bin/sh\ncat > \"$1\" <<'FORM'\n" + content + "FORM\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write editor script: %v", err)
	}
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
