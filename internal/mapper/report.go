package mapper

import (
	"time"

	"imagemap/internal/match"
)

// Status is the per-element outcome of a run.
type Status string

const (
	StatusUpdated    Status = "updated"
	StatusMatched    Status = "matched"
	StatusNoMatch    Status = "no_match"
	StatusIneligible Status = "ineligible"
	StatusEmptyText  Status = "empty_text"
	StatusFailed     Status = "failed"
)

// Outcome records how one element was handled.
type Outcome struct {
	Index     int        `json:"index"`
	Element   string     `json:"element"`
	Kind      string     `json:"kind"`
	Reference string     `json:"reference"`
	Status    Status     `json:"status"`
	Text      string     `json:"text,omitempty"`
	Tier      match.Tier `json:"tier"`
	Name      string     `json:"name,omitempty"`
	Score     int        `json:"score,omitempty"`
	Ties      int        `json:"ties,omitempty"`
	Target    string     `json:"target,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Counts tallies outcomes by status.
type Counts struct {
	Elements   int `json:"elements"`
	Updated    int `json:"updated"`
	Matched    int `json:"matched"`
	NoMatch    int `json:"no_match"`
	Ineligible int `json:"ineligible"`
	EmptyText  int `json:"empty_text"`
	Failed     int `json:"failed"`
}

// Report is the result of one Run.
type Report struct {
	RunID    string        `json:"run_id,omitempty"`
	Page     string        `json:"page,omitempty"`
	DryRun   bool          `json:"dry_run"`
	Counts   Counts        `json:"counts"`
	Outcomes []Outcome     `json:"outcomes"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Changed reports whether any element was rewritten.
func (r *Report) Changed() bool {
	return r != nil && r.Counts.Updated > 0
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Counts.Elements++
	switch o.Status {
	case StatusUpdated:
		r.Counts.Updated++
	case StatusMatched:
		r.Counts.Matched++
	case StatusNoMatch:
		r.Counts.NoMatch++
	case StatusIneligible:
		r.Counts.Ineligible++
	case StatusEmptyText:
		r.Counts.EmptyText++
	case StatusFailed:
		r.Counts.Failed++
	}
}
