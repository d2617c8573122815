// Package logging builds the slog loggers used across hexctl.
//
// It provides a human-oriented console handler for interactive runs, a JSON
// handler for machine consumption, typed attribute helpers, and component
// loggers so every package tags its output consistently.
package logging
