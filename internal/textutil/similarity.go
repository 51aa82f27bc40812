package textutil

import "strings"

// Score rates how well a normalized catalog key matches normalized page text.
//
// When either string contains the other the score is the length of the
// shorter one. Otherwise it is the longest run of consecutive key bytes that
// each appear somewhere in text. The fallback is not symmetric, so the
// argument order is fixed: page text first, catalog key second.
func Score(text, key string) int {
	if text == "" || key == "" {
		return 0
	}
	if strings.Contains(text, key) || strings.Contains(key, text) {
		return min(len(text), len(key))
	}
	best, run := 0, 0
	for i := 0; i < len(key); i++ {
		if strings.IndexByte(text, key[i]) < 0 {
			run = 0
			continue
		}
		run++
		best = max(best, run)
	}
	return best
}
