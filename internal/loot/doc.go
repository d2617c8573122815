// Package loot computes shard statistics and disenchant plans from the
// player's loot inventory.
//
// All functions are pure over decoded API records; nothing here talks to the
// client. Commands fetch loot once, aggregate locally, then issue any
// mutations from the resulting plan.
package loot
