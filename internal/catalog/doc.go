// Package catalog loads the ordered list of known names and their image files.
//
// A Catalog is built once per run and never mutated afterwards; entry order
// follows the source and decides ties during matching. Sources may be CSV
// (name, file, ignored extra cells), JSON (an object of name to file or an
// array of [name, file] pairs), or an existing SQLite database, read from a
// local path or fetched over HTTP.
//
// Malformed rows are skipped and counted. Any failure to read or parse the
// source as a whole is reported as services.ErrCatalogUnavailable so callers
// can abandon the run before touching a page.
package catalog
