// Package main hosts the imagemap CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration once, builds the catalog,
// matcher, extractor and patcher from it, and hands them to the internal
// packages. Reports go to stdout; logs go to stderr and, when configured, a
// log file.
//
// Keep this package lean: add behaviour to the internal packages first, then
// surface it through commands or flags here.
package main
