package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"imagemap/internal/services"
)

// ParseJSON reads either an object mapping name to file or an array of
// [name, file, ...] rows. Object members are read in document order, which
// decides ties. Keys are normalized again on load.
func ParseJSON(r io.Reader, opts Options) (*Catalog, LoadStats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("read json: %w", err)
	}
	data = bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(data) == 0 {
		return nil, LoadStats{}, errors.New("decode json: empty document")
	}

	b := newBuilder(opts.Source, opts)
	switch data[0] {
	case '{':
		err = parseJSONObject(data, b)
	case '[':
		err = parseJSONRows(data, b)
	default:
		err = fmt.Errorf("decode json: want object or array, got %q", data[0])
	}
	if err != nil {
		return nil, LoadStats{}, err
	}

	cat, stats := b.build()
	return cat, stats, nil
}

func parseJSONObject(data []byte, b *builder) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	for row := 1; dec.More(); row++ {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
		name, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
		var file string
		if err := json.Unmarshal(raw, &file); err != nil {
			b.stats.Rows++
			b.skip(row, services.Wrap(services.ErrMalformedEntry, "catalog", "parse", "file is not a string", err))
			continue
		}
		b.add(row, name, file)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decode json: trailing data after object")
	}
	return nil
}

func parseJSONRows(data []byte, b *builder) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	for i, raw := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(raw, &cells); err != nil || len(cells) < 2 {
			b.stats.Rows++
			b.skip(i+1, services.Wrap(services.ErrMalformedEntry, "catalog", "parse", "row is not a [name, file] array", err))
			continue
		}
		var name, file string
		if json.Unmarshal(cells[0], &name) != nil || json.Unmarshal(cells[1], &file) != nil {
			b.stats.Rows++
			b.skip(i+1, services.Wrap(services.ErrMalformedEntry, "catalog", "parse", "name and file must be strings", nil))
			continue
		}
		b.add(i+1, name, file)
	}
	return nil
}
