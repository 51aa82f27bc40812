// Package config loads, normalizes, and validates imagemap configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// environment overrides such as IMAGEMAP_CATALOG. The Config type centralizes
// every knob the CLI needs: where the catalog lives and how to parse it, the
// matching threshold and extra stopwords, page rewrite rules, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
