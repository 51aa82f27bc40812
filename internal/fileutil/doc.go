// Package fileutil writes rewritten pages safely: a verified backup copy of
// the original, atomic replacement through a temp file in the same directory,
// and an advisory lock that keeps two runs from rewriting one page at once.
package fileutil
