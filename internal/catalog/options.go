package catalog

import (
	"log/slog"
	"net/http"
	"time"

	"imagemap/internal/config"
	"imagemap/internal/logging"
	"imagemap/internal/textutil"
)

// Supported catalog formats.
const (
	FormatAuto   = "auto"
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// DefaultSQLiteQuery reads name and file columns in insertion order.
const DefaultSQLiteQuery = "SELECT name, file FROM images ORDER BY rowid"

// Options controls how a catalog source is read.
type Options struct {
	// Source names the input in logs. Load fills it in.
	Source      string
	Format      string
	HasHeader   bool
	SQLiteQuery string
	// Timeout bounds remote fetches. Zero means no timeout.
	Timeout    time.Duration
	Normalizer *textutil.Normalizer
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// OptionsFromConfig builds loader options from the [catalog] section.
func OptionsFromConfig(cfg *config.Config, normalizer *textutil.Normalizer, logger *slog.Logger) Options {
	if cfg == nil {
		return Options{Normalizer: normalizer, Logger: logger, HasHeader: true}
	}
	return Options{
		Source:      cfg.Catalog.Source,
		Format:      cfg.Catalog.Format,
		HasHeader:   cfg.Catalog.HasHeader,
		SQLiteQuery: cfg.Catalog.SQLiteQuery,
		Timeout:     cfg.CatalogTimeout(),
		Normalizer:  normalizer,
		Logger:      logger,
	}
}

func (o Options) normalizer() *textutil.Normalizer {
	if o.Normalizer != nil {
		return o.Normalizer
	}
	return textutil.NewNormalizer()
}

func (o Options) logger() *slog.Logger {
	return logging.NewComponentLogger(o.Logger, "catalog")
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return &http.Client{Timeout: o.Timeout}
}

func (o Options) sqliteQuery() string {
	if o.SQLiteQuery != "" {
		return o.SQLiteQuery
	}
	return DefaultSQLiteQuery
}
