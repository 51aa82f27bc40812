package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"imagemap/internal/catalog"
	"imagemap/internal/config"
	"imagemap/internal/logging"
	"imagemap/internal/match"
	"imagemap/internal/page"
	"imagemap/internal/services"
	"imagemap/internal/textutil"
)

type globalFlags struct {
	config    string
	catalog   string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		if err := c.applyFlagOverrides(cfg); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "flags", "", err)
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// applyFlagOverrides lets global flags win over file and environment values.
func (c *commandContext) applyFlagOverrides(cfg *config.Config) error {
	if source := strings.TrimSpace(c.flags.catalog); source != "" {
		expanded, err := config.ExpandSource(source)
		if err != nil {
			return fmt.Errorf("--catalog: %w", err)
		}
		cfg.Catalog.Source = expanded
	}
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if format := strings.TrimSpace(c.flags.logFormat); format != "" {
		cfg.Logging.Format = strings.ToLower(format)
	}
	return cfg.Validate()
}

func (c *commandContext) loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	})
	return c.logger, c.loggerErr
}

// session bundles what every matching command builds from config.
type session struct {
	cfg        *config.Config
	logger     *slog.Logger
	normalizer *textutil.Normalizer
}

func (c *commandContext) newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.loggerFor(cmd)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:        cfg,
		logger:     logger,
		normalizer: textutil.NewNormalizer(cfg.Matching.ExtraStopwords...),
	}, nil
}

func (r *session) loadCatalog(ctx context.Context) (*catalog.Catalog, catalog.LoadStats, error) {
	if err := r.cfg.RequireCatalogSource(); err != nil {
		return nil, catalog.LoadStats{}, services.Wrap(services.ErrCatalogUnavailable, "catalog", "load", "", err)
	}
	opts := catalog.OptionsFromConfig(r.cfg, r.normalizer, r.logger)
	return catalog.Load(ctx, r.cfg.Catalog.Source, opts)
}

func (r *session) matcher(cat *catalog.Catalog) *match.Matcher {
	return match.New(cat,
		match.WithNormalizer(r.normalizer),
		match.WithMinScore(r.cfg.Matching.MinScore))
}

func (r *session) extractor() page.HTMLExtractor {
	return page.HTMLExtractor{MaxHops: r.cfg.Page.MaxHops, MaxChars: r.cfg.Page.MaxChars}
}

func (r *session) patcher() page.HTMLPatcher {
	return page.HTMLPatcher{ImagesRoot: r.cfg.Page.ImagesRoot, Placeholders: r.cfg.Page.Placeholders}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
