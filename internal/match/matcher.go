package match

import (
	"strings"
	"unicode/utf8"

	"imagemap/internal/catalog"
	"imagemap/internal/textutil"
)

// DefaultMinScore is the lowest fuzzy score accepted as a match.
const DefaultMinScore = 4

// ScoreFunc scores normalized page text against a catalog key.
type ScoreFunc func(text, key string) int

// Option customizes a Matcher.
type Option func(*Matcher)

// WithMinScore sets the fuzzy acceptance threshold. Values below 1 keep the
// default.
func WithMinScore(score int) Option {
	return func(m *Matcher) {
		if score >= 1 {
			m.minScore = score
		}
	}
}

// WithNormalizer sets the normalizer applied to page text in the fuzzy pass.
// It should be the one the catalog keys were built with.
func WithNormalizer(n *textutil.Normalizer) Option {
	return func(m *Matcher) {
		if n != nil {
			m.normalizer = n
		}
	}
}

// WithScorer replaces textutil.Score.
func WithScorer(fn ScoreFunc) Option {
	return func(m *Matcher) {
		if fn != nil {
			m.score = fn
		}
	}
}

// Matcher resolves text against an immutable catalog.
type Matcher struct {
	catalog    *catalog.Catalog
	normalizer *textutil.Normalizer
	score      ScoreFunc
	minScore   int
}

// New constructs a matcher over cat.
func New(cat *catalog.Catalog, opts ...Option) *Matcher {
	m := &Matcher{
		catalog:    cat,
		normalizer: textutil.NewNormalizer(),
		score:      textutil.Score,
		minScore:   DefaultMinScore,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MinScore returns the fuzzy acceptance threshold.
func (m *Matcher) MinScore() int {
	return m.minScore
}

// Normalize applies the matcher's normalizer.
func (m *Matcher) Normalize(text string) string {
	return m.normalizer.Normalize(text)
}

// Match resolves text to a catalog entry. An exact name hit returns without
// scoring. Entries without a display name, such as bare keys from a key-value
// catalog, only take part in the fuzzy pass.
func (m *Matcher) Match(text string) Result {
	if res, ok := m.exact(text); ok {
		return res
	}
	return m.fuzzy(text)
}

func (m *Matcher) exact(text string) (Result, bool) {
	if strings.TrimSpace(text) == "" {
		return Result{}, false
	}
	haystack := strings.ToLower(text)

	var (
		best    Result
		bestLen int
	)
	for i := range m.catalog.Len() {
		entry := m.catalog.At(i)
		if !entry.HasDisplayName() {
			continue
		}
		name := strings.TrimSpace(entry.OriginalName)
		if !strings.Contains(haystack, strings.ToLower(name)) {
			continue
		}
		n := utf8.RuneCountInString(name)
		switch {
		case n > bestLen:
			bestLen = n
			best = Result{Tier: TierExact, Entry: entry, Score: n}
		case n == bestLen:
			best.Ties++
		}
	}
	return best, bestLen > 0
}

func (m *Matcher) fuzzy(text string) Result {
	key := m.normalizer.Normalize(text)
	if key == "" {
		return Result{}
	}

	var (
		best      catalog.Entry
		bestScore int
		ties      int
	)
	for i := range m.catalog.Len() {
		entry := m.catalog.At(i)
		if entry.Key == "" {
			continue
		}
		s := m.score(key, entry.Key)
		switch {
		case s > bestScore:
			best, bestScore, ties = entry, s, 0
		case s == bestScore && s > 0:
			ties++
		}
	}

	if bestScore < m.minScore {
		return Result{Score: bestScore, NormalizedText: key}
	}
	return Result{Tier: TierFuzzy, Entry: best, Score: bestScore, Ties: ties, NormalizedText: key}
}

// Rank scores text against every catalog key and returns the n best
// candidates with a positive score, best first. n <= 0 returns all of them.
func (m *Matcher) Rank(text string, n int) CandidateList {
	key := m.normalizer.Normalize(text)
	if key == "" {
		return nil
	}
	var candidates CandidateList
	for i := range m.catalog.Len() {
		entry := m.catalog.At(i)
		if entry.Key == "" {
			continue
		}
		if s := m.score(key, entry.Key); s > 0 {
			candidates = append(candidates, Candidate{Entry: entry, Index: i, Score: s})
		}
	}
	return candidates.Sorted().Top(n)
}
