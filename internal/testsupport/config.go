// Package testsupport provides shared fixtures for coresheet tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"coresheet/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.OutputDir = filepath.Join(base, "output")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithPrintCommand sets the external print command on the test config.
func WithPrintCommand(command string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Print.Command = command
	}
}
