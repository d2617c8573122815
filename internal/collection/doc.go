// Package collection computes per-champion skin collection statistics, the
// numbers behind the skin-collection challenges.
//
// Skin permanents are disregarded: the client redeems them automatically when
// the skin is unowned, so only partial shards count as unowned progress.
package collection
