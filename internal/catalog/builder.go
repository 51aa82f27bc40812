package catalog

import (
	"log/slog"
	"strings"

	"imagemap/internal/logging"
	"imagemap/internal/services"
	"imagemap/internal/textutil"
)

type builder struct {
	normalizer *textutil.Normalizer
	logger     *slog.Logger
	source     string
	entries    []Entry
	stats      LoadStats
}

func newBuilder(source string, opts Options) *builder {
	return &builder{
		normalizer: opts.normalizer(),
		logger:     opts.logger(),
		source:     source,
	}
}

// add records one row. Rows with an empty name or file are skipped.
func (b *builder) add(row int, name, file string) {
	b.stats.Rows++
	name = strings.TrimSpace(name)
	file = strings.TrimSpace(file)
	if name == "" || file == "" {
		b.skip(row, services.Wrap(services.ErrMalformedEntry, "catalog", "parse", "empty name or file", nil))
		return
	}
	b.entries = append(b.entries, NewEntry(name, file, b.normalizer))
}

func (b *builder) skip(row int, err error) {
	b.stats.Skipped++
	b.logger.Debug("catalog row skipped",
		logging.String(logging.FieldEventType, services.EventType(err)),
		logging.String("source", b.source),
		logging.Int("row", row),
		logging.Error(err))
}

func (b *builder) build() (*Catalog, LoadStats) {
	b.stats.Entries = len(b.entries)
	return &Catalog{entries: b.entries}, b.stats
}
