package match

import (
	"sort"

	"imagemap/internal/catalog"
)

// Candidate is one scored catalog entry.
type Candidate struct {
	Entry catalog.Entry `json:"entry"`
	// Index is the entry's position in the catalog.
	Index int `json:"index"`
	Score int `json:"score"`
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less orders by score descending, then by catalog position.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}
	return c[i].Index < c[j].Index
}

// Sorted returns a ranked copy of the list.
func (c CandidateList) Sorted() CandidateList {
	out := make(CandidateList, len(c))
	copy(out, c)
	sort.Sort(out)
	return out
}

// Top returns the first n candidates, or all of them when n <= 0.
func (c CandidateList) Top(n int) CandidateList {
	if n <= 0 || n >= len(c) {
		return c
	}
	return c[:n]
}
