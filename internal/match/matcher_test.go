package match_test

import (
	"sync"
	"testing"

	"imagemap/internal/catalog"
	"imagemap/internal/match"
	"imagemap/internal/textutil"
)

func newCatalog(pairs ...string) *catalog.Catalog {
	entries := make([]catalog.Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, catalog.NewEntry(pairs[i], pairs[i+1], nil))
	}
	return catalog.New(entries)
}

func TestMatchExactSkipsScorer(t *testing.T) {
	cat := newCatalog("Tahquamenon Falls", "tq.jpg")
	scorer := func(text, key string) int {
		t.Fatalf("scorer called for %q/%q after exact hit", text, key)
		return 0
	}
	m := match.New(cat, match.WithScorer(scorer))

	res := m.Match("Visit Tahquamenon Falls today")
	if res.Tier != match.TierExact || res.Target() != "tq.jpg" {
		t.Fatalf("expected exact hit on tq.jpg, got %+v", res)
	}
}

func TestMatchExactIsCaseInsensitive(t *testing.T) {
	m := match.New(newCatalog("Bond Falls", "bond.jpg"))
	if got := m.Match("BOND FALLS, MI").Target(); got != "bond.jpg" {
		t.Fatalf("expected bond.jpg, got %q", got)
	}
}

func TestMatchExactPrefersLongestName(t *testing.T) {
	cat := newCatalog(
		"Tahquamenon Falls", "tq-generic.jpg",
		"Tahquamenon Falls State Park", "tq.jpg",
	)
	res := match.New(cat).Match("Tahquamenon Falls State Park")
	if res.Target() != "tq.jpg" {
		t.Fatalf("expected longest name to win, got %+v", res)
	}
	if res.Score != len("Tahquamenon Falls State Park") {
		t.Fatalf("expected score to be name length, got %d", res.Score)
	}
}

func TestMatchBareKeysSkipExactPass(t *testing.T) {
	m := match.New(newCatalog("au", "au.jpg"))
	if res := m.Match("Bond Falls near Paulding"); res.Matched() {
		t.Fatalf("short bare key matched inside another word: %+v", res)
	}

	res := match.New(newCatalog("bond", "bond.jpg")).Match("Vagabond Falls")
	if res.Tier != match.TierFuzzy || res.Score != 4 {
		t.Fatalf("expected bare key to be scored by the fuzzy pass, got %+v", res)
	}
}

func TestMatchExactTieGoesToFirstEntry(t *testing.T) {
	cat := newCatalog("Bond Falls", "first.jpg", "bond falls", "second.jpg")
	res := match.New(cat).Match("bond falls")
	if res.Target() != "first.jpg" || res.Ties != 1 {
		t.Fatalf("expected first entry with one tie, got %+v", res)
	}
}

func TestMatchFuzzyAcceptsNearMiss(t *testing.T) {
	m := match.New(newCatalog("Munising Falls", "munising.jpg"))
	res := m.Match("Munisng")
	if res.Tier != match.TierFuzzy || res.Target() != "munising.jpg" {
		t.Fatalf("expected fuzzy hit, got %+v", res)
	}
	if res.Score < match.DefaultMinScore {
		t.Fatalf("expected score >= %d, got %d", match.DefaultMinScore, res.Score)
	}
	if res.NormalizedText != "munisng" {
		t.Fatalf("unexpected normalized text %q", res.NormalizedText)
	}
}

func TestMatchFuzzyRejectsBelowThreshold(t *testing.T) {
	m := match.New(newCatalog("Munising Falls", "munising.jpg"))
	res := m.Match("zzqx")
	if res.Matched() || res.Target() != "" {
		t.Fatalf("expected no match, got %+v", res)
	}
	if res.Tier != match.TierNone {
		t.Fatalf("expected TierNone, got %v", res.Tier)
	}
}

func TestMatchFuzzyTieGoesToFirstSeen(t *testing.T) {
	cat := newCatalog("Sable", "first.jpg", "Sablx", "second.jpg")
	res := match.New(cat).Match("sablz")
	if res.Target() != "first.jpg" {
		t.Fatalf("expected first-seen entry, got %+v", res)
	}
	if res.Ties != 1 {
		t.Fatalf("expected one tie, got %d", res.Ties)
	}
}

func TestMatchFuzzyStrictlyHigherWins(t *testing.T) {
	cat := newCatalog("Sable Lake", "lake.jpg", "Sable Dunes", "dunes.jpg")
	res := match.New(cat).Match("Sable Dunez")
	if res.Target() != "dunes.jpg" {
		t.Fatalf("expected dunes.jpg, got %+v", res)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	m := match.New(newCatalog("Bond Falls", "bond.jpg"))
	for _, text := range []string{"", "   ", "Falls", "Upper State Park"} {
		if res := m.Match(text); res.Matched() {
			t.Fatalf("expected no match for %q, got %+v", text, res)
		}
	}

	empty := match.New(catalog.New(nil))
	if res := empty.Match("Bond Falls"); res.Matched() {
		t.Fatalf("expected no match against empty catalog, got %+v", res)
	}
}

func TestMatchHonorsMinScore(t *testing.T) {
	cat := newCatalog("Munising Falls", "munising.jpg")
	if res := match.New(cat, match.WithMinScore(9)).Match("Munisng"); res.Matched() {
		t.Fatalf("expected threshold 9 to reject score %d", res.Score)
	}
	if res := match.New(cat, match.WithMinScore(0)).Match("zzqx"); res.Matched() {
		t.Fatalf("expected invalid threshold to keep default, got %+v", res)
	}
}

func TestMatchUsesConfiguredNormalizer(t *testing.T) {
	n := textutil.NewNormalizer("cascade")
	cat := catalog.New([]catalog.Entry{catalog.NewEntry("Sable Cascade", "sable.jpg", n)})
	m := match.New(cat, match.WithNormalizer(n))
	res := m.Match("Cascade of Sable")
	if res.Tier != match.TierFuzzy || res.NormalizedText != "ofsable" {
		t.Fatalf("expected fuzzy hit on normalized text, got %+v", res)
	}
}

func TestRankOrdersByScoreThenCatalogOrder(t *testing.T) {
	cat := newCatalog(
		"Bond Falls", "bond.jpg",
		"Sable Falls", "sable.jpg",
		"Sable Dunes", "dunes.jpg",
	)
	ranked := match.New(cat).Rank("sable", 0)
	if len(ranked) < 2 {
		t.Fatalf("expected at least two candidates, got %+v", ranked)
	}
	if ranked[0].Entry.Target != "sable.jpg" || ranked[0].Score != 5 {
		t.Fatalf("unexpected top candidate %+v", ranked[0])
	}
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if prev.Score < cur.Score || (prev.Score == cur.Score && prev.Index > cur.Index) {
			t.Fatalf("candidates out of order: %+v", ranked)
		}
	}
	if top := match.New(cat).Rank("sable", 1); len(top) != 1 {
		t.Fatalf("expected Top(1) to return one candidate, got %d", len(top))
	}
	if none := match.New(cat).Rank("", 3); none != nil {
		t.Fatalf("expected nil for empty text, got %+v", none)
	}
}

func TestMatcherConcurrentUse(t *testing.T) {
	m := match.New(newCatalog("Bond Falls", "bond.jpg", "Munising Falls", "munising.jpg"))
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := m.Match("munisng").Target(); got != "munising.jpg" {
					t.Errorf("unexpected target %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestTierText(t *testing.T) {
	for _, tier := range []match.Tier{match.TierNone, match.TierExact, match.TierFuzzy} {
		text, err := tier.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		var parsed match.Tier
		if err := parsed.UnmarshalText(text); err != nil || parsed != tier {
			t.Fatalf("round trip %v -> %q -> %v (%v)", tier, text, parsed, err)
		}
	}
	var bad match.Tier
	if err := bad.UnmarshalText([]byte("maybe")); err == nil {
		t.Fatal("expected error for unknown tier")
	}
}
