package textutil

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultStopwords are high-frequency words in waterfall listings that carry
// no identity on their own.
var DefaultStopwords = []string{
	"upper", "lower",
	"fall", "falls", "waterfall",
	"michigan", "wisconsin",
	"state", "park", "county",
	"river", "creek", "branch", "fork",
}

var nonKeyPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Normalizer canonicalizes text into a matching key. A Normalizer holds only
// immutable data and is safe for concurrent use.
type Normalizer struct {
	stopwords *regexp.Regexp
	// collapsed forms of every stopword; a key equal to one of these is dropped
	reserved map[string]struct{}
}

var defaultNormalizer = NewNormalizer()

// NewNormalizer builds a Normalizer that removes DefaultStopwords plus extra.
// Extra entries may contain several words ("scenic area").
func NewNormalizer(extra ...string) *Normalizer {
	words := make([]string, 0, len(DefaultStopwords)+len(extra))
	seen := make(map[string]struct{}, cap(words))
	reserved := make(map[string]struct{}, cap(words))
	for _, word := range append(append([]string{}, DefaultStopwords...), extra...) {
		word = strings.Join(strings.Fields(strings.ToLower(foldMarks(word))), " ")
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
		if collapsed := nonKeyPattern.ReplaceAllString(word, ""); collapsed != "" {
			reserved[collapsed] = struct{}{}
		}
	}

	// longest first so "waterfall" is tried before "fall"
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(word), " ", `\s+`)
	}
	return &Normalizer{
		stopwords: regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`),
		reserved:  reserved,
	}
}

// Normalize applies the default normalizer.
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

// Normalize folds diacritics, lowercases, removes stopwords, and strips every
// character outside [a-z0-9]. The result may be empty. Normalize is
// idempotent: a key that collapses into a stopword (for example "Fal ls")
// yields "".
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(foldMarks(text))
	s = n.stopwords.ReplaceAllString(s, "")
	s = nonKeyPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if _, ok := n.reserved[s]; ok {
		return ""
	}
	return s
}

// foldMarks decomposes text and drops combining marks so "Chûte" and "Chute"
// collapse to the same letters.
func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
