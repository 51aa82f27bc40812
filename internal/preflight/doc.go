// Package preflight checks the filesystem paths and catalog source a run
// depends on before any page is parsed or written.
//
// The apply command calls RunAll and aborts on the first failed result so a
// doomed run never leaves a half-written page. The check command prints every
// result.
package preflight
