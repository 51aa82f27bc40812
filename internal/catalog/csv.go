package catalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"imagemap/internal/services"
)

const maxCSVLine = 1 << 20

// ParseCSV reads name,file rows. Each line is parsed on its own so a broken
// row (too few cells, unbalanced quotes) only loses that row. Extra cells
// such as attribution HTML are ignored.
func ParseCSV(r io.Reader, opts Options) (*Catalog, LoadStats, error) {
	b := newBuilder(opts.Source, opts)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxCSVLine)

	lineNo := 0
	headerPending := opts.HasHeader
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" {
			continue
		}
		if headerPending {
			headerPending = false
			continue
		}
		name, file, err := parseRow(line)
		if err != nil {
			b.stats.Rows++
			b.skip(lineNo, err)
			continue
		}
		b.add(lineNo, name, file)
	}
	if err := scanner.Err(); err != nil {
		return nil, LoadStats{}, fmt.Errorf("read csv: %w", err)
	}

	cat, stats := b.build()
	return cat, stats, nil
}

func parseRow(line string) (string, string, error) {
	cells := splitCells(line)
	if len(cells) < 2 {
		return "", "", services.Wrap(services.ErrMalformedEntry, "catalog", "parse",
			fmt.Sprintf("want at least 2 cells, got %d", len(cells)), nil)
	}
	return cleanCell(cells[0]), cleanCell(cells[1]), nil
}

func splitCells(line string) []string {
	reader := csv.NewReader(strings.NewReader(line))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	cells, err := reader.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return cells
}

// cleanCell trims whitespace and one leading and one trailing double quote.
func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	cell = strings.TrimPrefix(cell, `"`)
	cell = strings.TrimSuffix(cell, `"`)
	return strings.TrimSpace(cell)
}
