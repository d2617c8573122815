// Package history persists a local record of hexctl runs in SQLite.
//
// Each stats or mutation command appends one row: what ran, when, a one-line
// summary, and how many items or essence it touched. The history command
// reads it back newest first.
package history
