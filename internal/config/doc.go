// Package config loads, normalizes, and validates coresheet configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: where the worksheet database and print artifacts live, how
// logs are formatted, and which external command receives the printed sheet.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
