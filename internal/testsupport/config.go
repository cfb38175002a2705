package testsupport

import (
	"path/filepath"
	"testing"

	"booki/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose database lives in a unique temp
// directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(base, "booki.db")
	cfg.Editor.Command = "true"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithSkipDuplicates enables the duplicate-book rejection policy.
func WithSkipDuplicates() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.SkipDuplicateBooks = true
	}
}
