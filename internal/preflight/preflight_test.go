package preflight

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"imagemap/internal/config"
	"imagemap/internal/services"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckReadableFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "index.html")
	if err := os.WriteFile(f, []byte("<p>x</p>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckReadableFile("Page", f); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result := CheckReadableFile("Page", dir); result.Passed {
		t.Fatal("expected failure for directory")
	}
	if result := CheckReadableFile("Page", filepath.Join(dir, "missing.html")); result.Passed || !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("expected missing-file failure, got %+v", result)
	}
}

func TestCheckCatalogSource_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/catalog.csv":
			if r.Method != http.MethodHead {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
		case "/nohead.csv":
			w.WriteHeader(http.StatusMethodNotAllowed)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	if result := CheckCatalogSource(context.Background(), srv.URL+"/catalog.csv", time.Second); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result := CheckCatalogSource(context.Background(), srv.URL+"/nohead.csv", time.Second); !result.Passed {
		t.Fatalf("expected 405 to count as reachable, got: %s", result.Detail)
	}
	if result := CheckCatalogSource(context.Background(), srv.URL+"/missing.csv", time.Second); result.Passed {
		t.Fatal("expected failure for 404")
	}
}

func TestCheckCatalogSource_Empty(t *testing.T) {
	if result := CheckCatalogSource(context.Background(), " ", 0); result.Passed {
		t.Fatal("expected failure for empty source")
	}
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.csv")
	pagePath := filepath.Join(dir, "index.html")
	for _, p := range []string{catalogPath, pagePath} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Default()
	cfg.Catalog.Source = catalogPath

	results := RunAll(context.Background(), &cfg, Plan{PagePath: pagePath, OutputPath: filepath.Join(dir, "out.html")})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if err := FirstFailure(results); err != nil {
		t.Fatalf("expected all checks to pass, got %v", err)
	}
	if got := Summary(results); got != "3/3 passed" {
		t.Fatalf("unexpected summary %q", got)
	}

	results = RunAll(context.Background(), &cfg, Plan{OutputPath: filepath.Join(dir, "missing", "out.html")})
	err := FirstFailure(results)
	if !errors.Is(err, services.ErrPreflight) {
		t.Fatalf("expected ErrPreflight, got %v", err)
	}
	if !strings.Contains(err.Error(), "Output directory") {
		t.Fatalf("expected failing check named in error, got %v", err)
	}

	if RunAll(context.Background(), nil, Plan{}) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
