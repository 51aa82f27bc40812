package preflight

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"imagemap/internal/config"
	"imagemap/internal/services"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Plan lists the paths one run touches. Empty fields are not checked.
type Plan struct {
	PagePath   string
	OutputPath string
}

// RunAll executes all applicable preflight checks for the given config and
// plan.
func RunAll(ctx context.Context, cfg *config.Config, plan Plan) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckCatalogSource(ctx, cfg.Catalog.Source, cfg.CatalogTimeout()))

	if plan.PagePath != "" {
		results = append(results, CheckReadableFile("Page", plan.PagePath))
	}
	if plan.OutputPath != "" {
		results = append(results, CheckDirectoryAccess("Output directory", filepath.Dir(plan.OutputPath)))
	}
	if strings.TrimSpace(cfg.Logging.Dir) != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.Dir))
	}

	return results
}

// FirstFailure returns an ErrPreflight error for the first failed result, or
// nil when every check passed.
func FirstFailure(results []Result) error {
	for _, r := range results {
		if !r.Passed {
			return services.Wrap(services.ErrPreflight, "preflight", r.Name, r.Detail, nil)
		}
	}
	return nil
}

// Summary returns "n/m passed".
func Summary(results []Result) string {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d passed", passed, len(results))
}
