package testsupport

import (
	"path/filepath"
	"testing"

	"padhost/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ProfilePath = filepath.Join(base, "profiles", "Profiles.xml")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithoutLogDir disables the log file so only the console handler is used.
func WithoutLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = ""
	}
}

// WithBackupOnSave toggles profile backups on the test config.
func WithBackupOnSave(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Profile.BackupOnSave = enabled
	}
}

// WithProfile writes content to the profile path before the test runs.
func WithProfile(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteProfile(b.t, b.cfg.Paths.ProfilePath, content)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Paths.ProfilePath))
}
