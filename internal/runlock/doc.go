// Package runlock serializes mutating hexctl runs.
//
// Disenchanting, restoring settings, and icon changes hold a file lock under
// the data dir so two concurrent invocations cannot interleave mutations
// against the same account.
package runlock
