package testsupport

import (
	"path/filepath"
	"testing"

	"hexctl/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.BackupDir = filepath.Join(base, "backups")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Client.Lockfile = filepath.Join(base, "lockfile")
	cfg.Client.InstallDirs = nil

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithLockfile overrides the lockfile path on the test config.
func WithLockfile(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Client.Lockfile = path
	}
}

// WithKeepShards sets the disenchant keep count on the test config.
func WithKeepShards(keep int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Loot.KeepShards = keep
	}
}
