package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"imagemap/internal/config"
	"imagemap/internal/fileutil"
	"imagemap/internal/logging"
	"imagemap/internal/mapper"
	"imagemap/internal/page"
	"imagemap/internal/preflight"
	"imagemap/internal/services"
)

type applyOptions struct {
	output  string
	inPlace bool
	backup  bool
	dryRun  bool
	json    bool
}

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var opts applyOptions

	cmd := &cobra.Command{
		Use:   "apply PAGE",
		Short: "Rewrite placeholder images in an HTML page to matching catalog files",
		Long: `Load the catalog, find every image or CSS background in PAGE, match the
text around it against catalog names and point placeholders at the matched
file under the images root.

Without --output or --in-place the rewritten page is written to stdout and the
report goes to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.inPlace && strings.TrimSpace(opts.output) != "" {
				return errors.New("--output and --in-place are mutually exclusive")
			}
			return runApply(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the rewritten page to this file")
	cmd.Flags().BoolVarP(&opts.inPlace, "in-place", "i", false, "Rewrite PAGE in place")
	cmd.Flags().BoolVar(&opts.backup, "backup", false, "Keep PAGE.bak before rewriting in place (overrides page.backup)")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Report matches without writing anything")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the report as JSON")
	return cmd
}

func runApply(cmd *cobra.Command, ctx *commandContext, pageArg string, opts applyOptions) error {
	s, err := ctx.newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.cfg.RequireCatalogSource(); err != nil {
		return services.Wrap(services.ErrConfiguration, "catalog", "source", "", err)
	}

	pagePath, err := config.ExpandPath(strings.TrimSpace(pageArg))
	if err != nil {
		return fmt.Errorf("resolve page path: %w", err)
	}
	outputPath := ""
	switch {
	case opts.dryRun:
	case opts.inPlace:
		outputPath = pagePath
	case strings.TrimSpace(opts.output) != "":
		if outputPath, err = config.ExpandPath(strings.TrimSpace(opts.output)); err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
	}

	runID := uuid.NewString()
	runCtx := services.WithRunID(cmd.Context(), runID)
	runCtx = services.WithPage(runCtx, pagePath)
	logger := logging.WithContext(runCtx, s.logger)

	results := preflight.RunAll(runCtx, s.cfg, preflight.Plan{PagePath: pagePath, OutputPath: outputPath})
	if err := preflight.FirstFailure(results); err != nil {
		return err
	}

	cat, _, err := s.loadCatalog(runCtx)
	if err != nil {
		logging.ErrorWithContext(logger, "catalog unavailable", services.EventType(err),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check catalog.source or --catalog"))
		return err
	}

	pipeline := mapper.New(s.matcher(cat), s.extractor(), s.patcher(),
		mapper.WithLogger(s.logger),
		mapper.WithDryRun(opts.dryRun))

	var report *mapper.Report
	process := func() error {
		doc, err := readPage(pagePath)
		if err != nil {
			return err
		}
		report, err = pipeline.Run(runCtx, doc.Elements())
		if err != nil {
			return err
		}
		if opts.dryRun {
			return nil
		}
		return writePage(cmd, doc, report, outputPath, opts.inPlace, opts.backup || s.cfg.Page.Backup, logger)
	}

	if opts.inPlace && !opts.dryRun {
		err = fileutil.WithFileLock(runCtx, pagePath, process)
	} else {
		err = process()
	}
	if err != nil {
		return err
	}

	reportOut := cmd.OutOrStdout()
	if outputPath == "" && !opts.dryRun {
		reportOut = cmd.ErrOrStderr()
	}
	if opts.json {
		return encodeJSON(reportOut, report)
	}
	renderReport(reportOut, report)
	return nil
}

func readPage(path string) (*page.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrPreflight, "page", "open", path, err)
	}
	defer file.Close()

	doc, err := page.Parse(file)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "page", "parse", path, err)
	}
	return doc, nil
}

func writePage(cmd *cobra.Command, doc *page.Document, report *mapper.Report, outputPath string, inPlace, backup bool, logger *slog.Logger) error {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return services.Wrap(services.ErrValidation, "page", "render", "", err)
	}

	if outputPath == "" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	if inPlace && !report.Changed() {
		logger.Info("page unchanged; nothing written", logging.String("path", outputPath))
		return nil
	}
	if inPlace && backup {
		backupPath, err := fileutil.Backup(outputPath)
		if err != nil {
			return err
		}
		logger.Info("backup written", logging.String("path", backupPath))
	}
	if err := fileutil.WriteFileAtomic(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	logger.Info("page written", logging.String("path", outputPath), logging.Int("updated", report.Counts.Updated))
	return nil
}
