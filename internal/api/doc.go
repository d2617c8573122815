// Package api assembles the CLI-facing workflows: each command calls one
// function here, which drives the client, the pure aggregation packages, and
// the local stores, then returns a result struct the command renders.
//
// Workflows take their dependencies through request structs so tests can wire
// a fake client and a temp-dir history store.
package api
