package textutil

import (
	"regexp"
	"testing"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9]*$`)

var normalizeSamples = []string{
	"",
	"Tahquamenon Falls",
	"Upper Tahquamenon Falls",
	"Bond Falls, MI",
	"Chûte de la Rivière-du-Loup",
	"Ōhiʻa Creek — North Branch",
	"Fal ls",
	"UPPER",
	"  Munising   Falls  ",
	"Sable Falls (Pictured Rocks)",
	"Agate Falls Scenic Site #2",
	"État de l'Île",
	"waterfall waterfalls",
	"Niagará",
	"\xff\xfe broken",
	"Straße",
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Tahquamenon Falls", "tahquamenon"},
		{"Upper Tahquamenon Falls", "tahquamenon"},
		{"Tahquamenon", "tahquamenon"},
		{"Bond Falls, MI", "bondmi"},
		{"Tahquamenon Falls State Park", "tahquamenon"},
		{"Munising Falls", "munising"},
		{"Chûte de la Rivière", "chutedelariviere"},
		{"Black River Falls", "black"},
		{"Presque Isle River", "presqueisle"},
		{"Sturgeon Falls (Ontonagon County)", "sturgeonontonagon"},
		{"Fallsburg", "fallsburg"},
		{"Lower  Falls", ""},
		{"Fal ls", ""},
		{"Upper-Falls 2", "2"},
		{"Dead River Falls #3", "dead3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeStopwordEquivalence(t *testing.T) {
	if Normalize("Upper Tahquamenon Falls") != Normalize("Tahquamenon") {
		t.Fatalf("expected stopwords to collapse: %q vs %q", Normalize("Upper Tahquamenon Falls"), Normalize("Tahquamenon"))
	}
	if Normalize("Tahquaménon") != Normalize("Tahquamenon") {
		t.Fatal("expected accented and plain forms to share a key")
	}
	if Normalize("Bond  Falls") != Normalize("bond-falls") {
		t.Fatal("expected spacing and punctuation differences to collapse")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range normalizeSamples {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestNormalizeAlphabet(t *testing.T) {
	for _, s := range normalizeSamples {
		if got := Normalize(s); !keyPattern.MatchString(got) {
			t.Errorf("Normalize(%q) = %q contains characters outside [a-z0-9]", s, got)
		}
	}
}

func TestNewNormalizerExtraStopwords(t *testing.T) {
	n := NewNormalizer("Gorge", "scenic area", "")
	tests := []struct {
		input    string
		expected string
	}{
		{"Presque Isle Gorge", "presqueisle"},
		{"Agate Falls Scenic   Area", "agate"},
		{"Scenic Area", ""},
		{"scenicarea", ""},
		{"Gorgeous", "gorgeous"},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
	if Normalize("Presque Isle Gorge") != "presqueislegorge" {
		t.Fatal("extra stopwords must not leak into the default normalizer")
	}
}

func FuzzNormalize(f *testing.F) {
	for _, s := range normalizeSamples {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		if !keyPattern.MatchString(once) {
			t.Fatalf("Normalize(%q) = %q outside [a-z0-9]", s, once)
		}
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	})
}
