package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validatePage(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Format {
	case "auto", "csv", "json", "sqlite":
	default:
		return fmt.Errorf("catalog.format: unsupported value %q (want auto, csv, json, or sqlite)", c.Catalog.Format)
	}
	if c.Catalog.TimeoutSeconds <= 0 {
		return errors.New("catalog.timeout_seconds must be positive")
	}
	if c.Catalog.Format == "sqlite" && IsRemoteSource(c.Catalog.Source) {
		return errors.New("catalog.source must be a local file when catalog.format is sqlite")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.MinScore < 1 {
		return errors.New("matching.min_score must be >= 1")
	}
	return nil
}

func (c *Config) validatePage() error {
	if strings.TrimSpace(c.Page.ImagesRoot) == "" {
		return errors.New("page.images_root must be set")
	}
	if strings.HasPrefix(c.Page.ImagesRoot, "/") {
		return errors.New("page.images_root must be a relative path")
	}
	if len(c.Page.Placeholders) == 0 {
		return errors.New("page.placeholders must include at least one placeholder name")
	}
	return ensurePositiveMap(map[string]int{
		"page.max_hops":  c.Page.MaxHops,
		"page.max_chars": c.Page.MaxChars,
	})
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

// RequireCatalogSource returns an error when no catalog source is configured.
func (c *Config) RequireCatalogSource() error {
	if strings.TrimSpace(c.Catalog.Source) != "" {
		return nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/imagemap/config.toml"
	}
	return fmt.Errorf("catalog source is required. Pass --catalog, set IMAGEMAP_CATALOG, or edit %s (create with 'imagemap config init')", defaultPath)
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
