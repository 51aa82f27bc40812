package mapper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"imagemap/internal/logging"
	"imagemap/internal/match"
	"imagemap/internal/page"
	"imagemap/internal/services"
)

// Resolver resolves extracted text to a catalog entry.
type Resolver interface {
	Match(text string) match.Result
}

// Pipeline wires an extractor, a resolver and a patcher.
type Pipeline struct {
	resolver  Resolver
	extractor page.TextExtractor
	patcher   page.Patcher
	logger    *slog.Logger
	dryRun    bool
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger; a no-op logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logging.NewComponentLogger(logger, "mapper")
	}
}

// WithDryRun resolves every element without rewriting any of them.
func WithDryRun(dryRun bool) Option {
	return func(p *Pipeline) {
		p.dryRun = dryRun
	}
}

// New constructs a pipeline.
func New(resolver Resolver, extractor page.TextExtractor, patcher page.Patcher, opts ...Option) *Pipeline {
	p := &Pipeline{
		resolver:  resolver,
		extractor: extractor,
		patcher:   patcher,
		logger:    logging.NewComponentLogger(nil, "mapper"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes elements in order. Ineligible elements are skipped before
// any text is extracted. Cancellation stops the run between elements and
// returns the partial report with ctx's error.
func (p *Pipeline) Run(ctx context.Context, elements []*page.Element) (*Report, error) {
	start := time.Now()
	logger := logging.WithContext(ctx, p.logger)
	report := &Report{DryRun: p.dryRun, Outcomes: make([]Outcome, 0, len(elements))}
	if id, ok := services.RunIDFromContext(ctx); ok {
		report.RunID = id
	}
	if path, ok := services.PageFromContext(ctx); ok {
		report.Page = path
	}

	for _, el := range elements {
		if err := ctx.Err(); err != nil {
			report.Elapsed = time.Since(start)
			return report, fmt.Errorf("run interrupted after %d of %d elements: %w", report.Counts.Elements, len(elements), err)
		}
		report.add(p.process(logger, el))
	}

	report.Elapsed = time.Since(start)
	logger.Info("page processed",
		logging.Int("elements", report.Counts.Elements),
		logging.Int("updated", report.Counts.Updated),
		logging.Int("matched", report.Counts.Matched),
		logging.Int("no_match", report.Counts.NoMatch),
		logging.Int("ineligible", report.Counts.Ineligible),
		logging.Bool("dry_run", p.dryRun),
		logging.Duration("elapsed", report.Elapsed))
	return report, nil
}

func (p *Pipeline) process(logger *slog.Logger, el *page.Element) Outcome {
	out := Outcome{
		Index:     el.Index(),
		Element:   el.Describe(),
		Kind:      el.Kind().String(),
		Reference: el.Reference(),
	}
	elLogger := logger.With(logging.String("element", out.Element))

	if !p.patcher.Eligible(el) {
		out.Status = StatusIneligible
		elLogger.Debug("element skipped", logging.String("reference", out.Reference))
		return out
	}

	out.Text = p.extractor.Extract(el)
	if out.Text == "" {
		out.Status = StatusEmptyText
		elLogger.Debug("element has no text")
		return out
	}

	res := p.resolver.Match(out.Text)
	out.Tier = res.Tier
	out.Score = res.Score
	if !res.Matched() {
		out.Status = StatusNoMatch
		elLogger.Debug("no catalog match",
			logging.Args(append(logging.DecisionAttrs("match", "none", "below threshold"),
				logging.String("normalized", res.NormalizedText),
				logging.Int("best_score", res.Score))...)...)
		return out
	}

	out.Name = res.Entry.OriginalName
	out.Ties = res.Ties
	if res.Ties > 0 {
		elLogger.Debug("ambiguous match resolved by catalog order",
			logging.Args(append(logging.DecisionAttrs("match_tie", out.Name, "first catalog entry wins"),
				logging.Int("ties", res.Ties),
				logging.Int("score", res.Score))...)...)
	}

	if p.dryRun {
		out.Status = StatusMatched
		out.Target = p.patcher.TargetPath(res.Target())
		return out
	}

	target, err := p.patcher.Apply(el, res.Target())
	if err != nil {
		out.Status = StatusFailed
		out.Error = err.Error()
		logging.WarnWithContext(elLogger, "element not rewritten", "patch_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the element's current reference"),
			logging.String(logging.FieldImpact, "element left unchanged"))
		return out
	}
	out.Status = StatusUpdated
	out.Target = target
	elLogger.Info("element updated",
		logging.String("tier", res.Tier.String()),
		logging.String("name", out.Name),
		logging.Int("score", res.Score),
		logging.String("target", target))
	return out
}
