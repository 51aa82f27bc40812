package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imagemap/internal/testsupport"
)

type cliTestEnv struct {
	baseDir     string
	configPath  string
	catalogPath string
	pagePath    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("IMAGEMAP_CATALOG", "")
	t.Setenv("IMAGEMAP_LOG_LEVEL", "")
	t.Chdir(base)

	env := &cliTestEnv{
		baseDir:     base,
		configPath:  filepath.Join(base, "imagemap.toml"),
		catalogPath: filepath.Join(base, "images_attribution.csv"),
		pagePath:    filepath.Join(base, "index.html"),
	}
	testsupport.WriteFile(t, env.catalogPath, testsupport.CatalogCSV)
	testsupport.WriteFile(t, env.pagePath, testsupport.CardsPage)
	testsupport.WriteFile(t, env.configPath, fmt.Sprintf("[catalog]\nsource = %q\n\n[logging]\nlevel = \"debug\"\n", env.catalogPath))
	return env
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if env != nil {
		args = append([]string{"--config", env.configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
