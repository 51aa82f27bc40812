package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"imagemap/internal/config"
	"imagemap/internal/logging"
	"imagemap/internal/services"
)

// Load reads a catalog from a local path or http(s) URL. Every failure,
// including a source with no usable entries, is tagged with
// services.ErrCatalogUnavailable.
func Load(ctx context.Context, source string, opts Options) (*Catalog, LoadStats, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, LoadStats{}, services.Wrap(services.ErrCatalogUnavailable, "catalog", "load", "no catalog source configured", nil)
	}
	opts.Source = source
	logger := opts.logger()

	format, err := DetectFormat(source, opts.Format)
	if err != nil {
		return nil, LoadStats{}, services.Wrap(services.ErrCatalogUnavailable, "catalog", "load", source, err)
	}

	start := time.Now()
	var (
		cat   *Catalog
		stats LoadStats
	)
	if format == FormatSQLite {
		cat, stats, err = LoadSQLite(ctx, source, opts)
	} else {
		cat, stats, err = readSource(ctx, source, format, opts)
	}
	if err != nil {
		return nil, LoadStats{}, services.Wrap(services.ErrCatalogUnavailable, "catalog", "load", source, err)
	}
	if cat.Len() == 0 {
		return nil, stats, services.Wrap(services.ErrCatalogUnavailable, "catalog", "load",
			fmt.Sprintf("%s: no usable entries (%d rows skipped)", source, stats.Skipped), nil)
	}

	logger.Info("catalog loaded",
		logging.String("source", source),
		logging.String("format", format),
		logging.Int("entries", stats.Entries),
		logging.Int("skipped", stats.Skipped),
		logging.Duration("elapsed", time.Since(start)))
	return cat, stats, nil
}

func readSource(ctx context.Context, source, format string, opts Options) (*Catalog, LoadStats, error) {
	body, err := openSource(ctx, source, opts)
	if err != nil {
		return nil, LoadStats{}, err
	}
	defer body.Close()

	if format == FormatJSON {
		return ParseJSON(body, opts)
	}
	return ParseCSV(body, opts)
}

func openSource(ctx context.Context, source string, opts Options) (io.ReadCloser, error) {
	if !config.IsRemoteSource(source) {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		return file, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "text/csv, application/json;q=0.9, */*;q=0.5")

	resp, err := opts.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// DetectFormat resolves the catalog format. An explicit format other than
// auto wins; otherwise the extension of the path (or URL path) decides and
// unknown extensions read as CSV.
func DetectFormat(source, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	remote := config.IsRemoteSource(source)
	switch format {
	case "", FormatAuto:
	case FormatCSV, FormatJSON:
		return format, nil
	case FormatSQLite:
		if remote {
			return "", errors.New("sqlite catalogs must be local files")
		}
		return format, nil
	default:
		return "", fmt.Errorf("unsupported catalog format %q", format)
	}

	ext := strings.ToLower(filepath.Ext(source))
	if remote {
		if parsed, err := url.Parse(source); err == nil {
			ext = strings.ToLower(path.Ext(parsed.Path))
		}
	}
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		if remote {
			return "", errors.New("sqlite catalogs must be local files")
		}
		return FormatSQLite, nil
	default:
		return FormatCSV, nil
	}
}
