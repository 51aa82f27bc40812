package catalog

import (
	"strings"

	"imagemap/internal/textutil"
)

// Entry maps a catalog name to the image file it resolves to.
type Entry struct {
	Key          string `json:"key"`
	OriginalName string `json:"name"`
	Target       string `json:"file"`
}

// NewEntry builds an entry whose key is the normalized name. A nil normalizer
// uses the default stopword set.
func NewEntry(name, target string, n *textutil.Normalizer) Entry {
	key := textutil.Normalize(name)
	if n != nil {
		key = n.Normalize(name)
	}
	return Entry{Key: key, OriginalName: name, Target: target}
}

// HasDisplayName reports whether the entry carries a literal name apart from
// its key. Key-value catalogs map keys straight to files and carry none.
func (e Entry) HasDisplayName() bool {
	name := strings.TrimSpace(e.OriginalName)
	return name != "" && name != e.Key
}

// Catalog is an immutable, ordered collection of entries. Keys may repeat.
type Catalog struct {
	entries []Entry
}

// New returns a catalog holding a copy of entries in the given order.
func New(entries []Entry) *Catalog {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Catalog{entries: cp}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the entry at position i in source order.
func (c *Catalog) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all entries in source order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// Lookup returns the first entry whose normalized key equals key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	if c == nil || key == "" {
		return Entry{}, false
	}
	for _, entry := range c.entries {
		if entry.Key == key {
			return entry, true
		}
	}
	return Entry{}, false
}

// LoadStats summarizes how a source was read.
type LoadStats struct {
	Rows    int `json:"rows"`
	Entries int `json:"entries"`
	Skipped int `json:"skipped"`
}
