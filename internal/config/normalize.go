package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizePage()
	return c.normalizeLogging()
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv("IMAGEMAP_CATALOG"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.Source = value
	}
	var err error
	if c.Catalog.Source, err = ExpandSource(c.Catalog.Source); err != nil {
		return fmt.Errorf("catalog.source: %w", err)
	}
	c.Catalog.Format = strings.ToLower(strings.TrimSpace(c.Catalog.Format))
	if c.Catalog.Format == "" {
		c.Catalog.Format = defaultCatalogFormat
	}
	c.Catalog.SQLiteQuery = strings.TrimSpace(c.Catalog.SQLiteQuery)
	if c.Catalog.SQLiteQuery == "" {
		c.Catalog.SQLiteQuery = defaultSQLiteQuery
	}
	if c.Catalog.TimeoutSeconds == 0 {
		c.Catalog.TimeoutSeconds = defaultCatalogTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if len(c.Matching.ExtraStopwords) == 0 {
		return
	}
	words := make([]string, 0, len(c.Matching.ExtraStopwords))
	seen := make(map[string]struct{}, len(c.Matching.ExtraStopwords))
	for _, word := range c.Matching.ExtraStopwords {
		normalized := strings.Join(strings.Fields(strings.ToLower(word)), " ")
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		words = append(words, normalized)
	}
	c.Matching.ExtraStopwords = words
}

func (c *Config) normalizePage() {
	root := strings.TrimSpace(c.Page.ImagesRoot)
	root = strings.TrimPrefix(root, "./")
	if root != "" && !strings.HasSuffix(root, "/") {
		root += "/"
	}
	c.Page.ImagesRoot = root

	placeholders := make([]string, 0, len(c.Page.Placeholders))
	for _, name := range c.Page.Placeholders {
		if name = strings.TrimSpace(name); name != "" {
			placeholders = append(placeholders, name)
		}
	}
	c.Page.Placeholders = placeholders
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("IMAGEMAP_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
