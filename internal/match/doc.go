// Package match resolves a blob of page text to a catalog entry.
//
// Matching runs two passes. The exact pass looks for any catalog name as a
// case-insensitive literal substring of the raw text and prefers the longest
// name. When nothing matches literally, the fuzzy pass normalizes the text
// and scores it against every catalog key with textutil.Score; the strictly
// highest score wins if it reaches the configured minimum. Ties in either
// pass go to the entry that appears first in the catalog.
//
// A Matcher holds no mutable state and is safe for concurrent use.
package match
