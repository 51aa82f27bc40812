// Package mapper runs extraction, matching and patching over every image
// element of a page and records what happened to each one.
package mapper
