package match

import (
	"fmt"

	"imagemap/internal/catalog"
)

// Tier records which pass produced a result.
type Tier int

const (
	TierNone Tier = iota
	TierExact
	TierFuzzy
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// MarshalText renders the tier by name in JSON output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a tier name.
func (t *Tier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "exact":
		*t = TierExact
	case "fuzzy":
		*t = TierFuzzy
	case "none", "":
		*t = TierNone
	default:
		return fmt.Errorf("unknown match tier %q", text)
	}
	return nil
}

// Result is the outcome of one Match call. The zero value means no match.
type Result struct {
	Tier  Tier          `json:"tier"`
	Entry catalog.Entry `json:"entry"`
	// Score is the matched name length for exact hits and the run score for
	// fuzzy ones. For misses it holds the best score seen, if any.
	Score int `json:"score"`
	// Ties counts other entries that reached the same score and lost on
	// catalog order.
	Ties           int    `json:"ties"`
	NormalizedText string `json:"normalized_text"`
}

// Matched reports whether the result resolved to an entry.
func (r Result) Matched() bool {
	return r.Tier != TierNone
}

// Target returns the matched file, or "" on a miss.
func (r Result) Target() string {
	if !r.Matched() {
		return ""
	}
	return r.Entry.Target
}
