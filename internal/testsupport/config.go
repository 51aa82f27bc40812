package testsupport

import (
	"path/filepath"
	"testing"

	"imagemap/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// The catalog source points at catalog.csv inside that directory, which is
// not created unless WithCatalogCSV is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Catalog.Source = filepath.Join(base, "catalog.csv")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalogCSV writes content to the configured catalog path.
func WithCatalogCSV(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Catalog.Source, content)
	}
}

// WithMinScore overrides the fuzzy acceptance threshold.
func WithMinScore(score int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.MinScore = score
	}
}
