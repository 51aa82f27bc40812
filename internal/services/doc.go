// Package services defines shared helpers consumed by the catalog loader,
// page pipeline, and CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, page paths, and stage names for
//     logging.
//   - Structured error markers plus the Wrap helper so callers can tell a
//     fatal catalog failure from a configuration or access problem.
//
// Use these helpers when wiring new pipeline code so failures and log fields
// stay uniform across commands.
package services
