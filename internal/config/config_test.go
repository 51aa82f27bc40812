package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"imagemap/internal/config"
)

func TestLoadDefaultConfigUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "imagemap", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Catalog.Source != "" {
		t.Fatalf("expected empty catalog source, got %q", cfg.Catalog.Source)
	}
	if cfg.Matching.MinScore != 4 {
		t.Fatalf("expected min score 4, got %d", cfg.Matching.MinScore)
	}
	if cfg.Page.ImagesRoot != "images/" {
		t.Fatalf("unexpected images root: %q", cfg.Page.ImagesRoot)
	}
	if len(cfg.Page.Placeholders) != 1 || cfg.Page.Placeholders[0] != "placeholder.svg" {
		t.Fatalf("unexpected placeholders: %v", cfg.Page.Placeholders)
	}
	if cfg.Page.MaxHops != 6 || cfg.Page.MaxChars != 480 {
		t.Fatalf("unexpected extraction bounds: hops=%d chars=%d", cfg.Page.MaxHops, cfg.Page.MaxChars)
	}
	if !cfg.Catalog.HasHeader {
		t.Fatal("expected CSV header handling enabled by default")
	}
	if cfg.CatalogTimeout().Seconds() != 30 {
		t.Fatalf("unexpected catalog timeout: %v", cfg.CatalogTimeout())
	}
	if err := cfg.RequireCatalogSource(); err == nil {
		t.Fatal("expected missing catalog source to be reported")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "imagemap.toml")

	type payload struct {
		Catalog struct {
			Source string `toml:"source"`
			Format string `toml:"format"`
		} `toml:"catalog"`
		Matching struct {
			MinScore       int      `toml:"min_score"`
			ExtraStopwords []string `toml:"extra_stopwords"`
		} `toml:"matching"`
		Page struct {
			ImagesRoot string `toml:"images_root"`
		} `toml:"page"`
	}
	custom := payload{}
	custom.Catalog.Source = "https://example.com/catalog.json"
	custom.Catalog.Format = "JSON"
	custom.Matching.MinScore = 6
	custom.Matching.ExtraStopwords = []string{" Gorge ", "gorge", "", "Scenic  Area"}
	custom.Page.ImagesRoot = "./assets/img"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Catalog.Source != "https://example.com/catalog.json" {
		t.Fatalf("expected URL source untouched, got %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.Format != "json" {
		t.Fatalf("expected format lowercased, got %q", cfg.Catalog.Format)
	}
	if cfg.Matching.MinScore != 6 {
		t.Fatalf("expected min score 6, got %d", cfg.Matching.MinScore)
	}
	want := []string{"gorge", "scenic area"}
	if strings.Join(cfg.Matching.ExtraStopwords, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected stopwords: %v", cfg.Matching.ExtraStopwords)
	}
	if cfg.Page.ImagesRoot != "assets/img/" {
		t.Fatalf("expected normalized images root, got %q", cfg.Page.ImagesRoot)
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "imagemap.toml")
	content := "[catalog]\nsource = \"file.csv\"\n\n[logging]\nlevel = \"info\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	envCatalog := filepath.Join(tempDir, "env.csv")
	t.Setenv("IMAGEMAP_CATALOG", envCatalog)
	t.Setenv("IMAGEMAP_LOG_LEVEL", "DEBUG")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog.Source != envCatalog {
		t.Errorf("expected catalog from env, got %q", cfg.Catalog.Source)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestDotEnvFileNextToConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(t.TempDir())
	configPath := filepath.Join(tempDir, "imagemap.toml")
	if err := os.WriteFile(configPath, []byte("[matching]\nmin_score = 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	catalogPath := filepath.Join(tempDir, "dotenv.csv")
	if err := os.WriteFile(filepath.Join(tempDir, ".env"), []byte("IMAGEMAP_CATALOG="+catalogPath+"\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// t.Setenv registers cleanup; the empty value is ignored by Load and then
	// replaced by godotenv because the variable is unset below.
	t.Setenv("IMAGEMAP_CATALOG", "")
	if err := os.Unsetenv("IMAGEMAP_CATALOG"); err != nil {
		t.Fatalf("unset env: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog.Source != catalogPath {
		t.Fatalf("expected catalog from .env, got %q", cfg.Catalog.Source)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "images_attribution.csv") {
		t.Fatalf("sample config missing catalog source: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Matching.MinScore != 4 {
		t.Fatalf("expected sample min score 4, got %d", cfg.Matching.MinScore)
	}
	if cfg.Page.MaxHops != 6 {
		t.Fatalf("expected sample max hops 6, got %d", cfg.Page.MaxHops)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"format", func(c *config.Config) { c.Catalog.Format = "xml" }},
		{"timeout", func(c *config.Config) { c.Catalog.TimeoutSeconds = -1 }},
		{"remote sqlite", func(c *config.Config) {
			c.Catalog.Format = "sqlite"
			c.Catalog.Source = "https://example.com/images.db"
		}},
		{"min score", func(c *config.Config) { c.Matching.MinScore = 0 }},
		{"images root", func(c *config.Config) { c.Page.ImagesRoot = "" }},
		{"absolute root", func(c *config.Config) { c.Page.ImagesRoot = "/images/" }},
		{"placeholders", func(c *config.Config) { c.Page.Placeholders = nil }},
		{"max hops", func(c *config.Config) { c.Page.MaxHops = 0 }},
		{"max chars", func(c *config.Config) { c.Page.MaxChars = 0 }},
		{"log level", func(c *config.Config) { c.Logging.Level = "verbose" }},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestEnsureDirectoriesCreatesLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Logging.Dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestIsRemoteSource(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/a.csv": true,
		"HTTP://example.com/a.csv":  true,
		"/srv/catalog.csv":          false,
		"catalog.json":              false,
		"":                          false,
	}
	for source, want := range tests {
		if got := config.IsRemoteSource(source); got != want {
			t.Errorf("IsRemoteSource(%q) = %v, want %v", source, got, want)
		}
	}
}
