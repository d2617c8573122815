// Package config loads, normalizes, and validates hexctl configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// HEXCTL_LOCKFILE. The Config type centralizes every knob the CLI needs,
// allowing data directories and client discovery settings to be found in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
