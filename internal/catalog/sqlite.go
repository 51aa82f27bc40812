package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"imagemap/internal/services"
)

// LoadSQLite reads entries from an existing SQLite database. The query must
// return the name in its first column and the file in its second; NULL values
// count as malformed rows. The database is opened read-only.
func LoadSQLite(ctx context.Context, path string, opts Options) (*Catalog, LoadStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("stat sqlite catalog: %w", err)
	}
	if info.IsDir() {
		return nil, LoadStats{}, fmt.Errorf("sqlite catalog %s is a directory", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open sqlite catalog: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, LoadStats{}, fmt.Errorf("configure sqlite catalog: %w", err)
	}

	rows, err := db.QueryContext(ctx, opts.sqliteQuery())
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("query sqlite catalog: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("read sqlite columns: %w", err)
	}
	if len(columns) < 2 {
		return nil, LoadStats{}, fmt.Errorf("sqlite query returns %d columns, want at least 2", len(columns))
	}

	b := newBuilder(path, opts)
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	row := 0
	for rows.Next() {
		row++
		if err := rows.Scan(dest...); err != nil {
			return nil, LoadStats{}, fmt.Errorf("scan sqlite row %d: %w", row, err)
		}
		if !values[0].Valid || !values[1].Valid {
			b.stats.Rows++
			b.skip(row, services.Wrap(services.ErrMalformedEntry, "catalog", "parse", "null name or file", nil))
			continue
		}
		b.add(row, values[0].String, values[1].String)
	}
	if err := rows.Err(); err != nil {
		return nil, LoadStats{}, fmt.Errorf("iterate sqlite rows: %w", err)
	}

	cat, stats := b.build()
	return cat, stats, nil
}
