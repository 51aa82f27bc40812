package textutil

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want int
	}{
		{"both empty", "", "", 0},
		{"empty text", "", "munising", 0},
		{"empty key", "munising", "", 0},
		{"identical", "bond", "bond", 4},
		{"text contains key", "visittahquamenontoday", "tahquamenon", 11},
		{"key contains text", "bond", "bondmi", 4},
		{"missing letter", "munisng", "munising", 8},
		{"unrelated", "zzqx", "munising", 0},
		{"run resets", "abc", "abxab", 2},
		{"partial run", "sable", "sablex", 5},
		{"no shared letters", "xyz", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.text, tt.key); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.text, tt.key, got, tt.want)
			}
		})
	}
}

func TestScoreSelfContainment(t *testing.T) {
	for _, s := range normalizeSamples {
		key := Normalize(s)
		if key == "" {
			continue
		}
		if got := Score(key, key); got != len(key) {
			t.Errorf("Score(%q, %q) = %d, want %d", key, key, got, len(key))
		}
	}
}

func TestScoreAsymmetricFallback(t *testing.T) {
	text, key := "xa", "aaay"
	if got := Score(text, key); got != 3 {
		t.Fatalf("Score(%q, %q) = %d, want 3", text, key, got)
	}
	if got := Score(key, text); got != 1 {
		t.Fatalf("Score(%q, %q) = %d, want 1", key, text, got)
	}
}
