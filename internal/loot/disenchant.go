package loot

import (
	"sort"
	"strings"

	"hexctl/internal/lcu"
)

// PlanEntry is one champion shard line in a disenchant plan.
type PlanEntry struct {
	LootID     string `json:"loot_id"`
	Champion   string `json:"champion"`
	Owned      bool   `json:"owned"`
	Count      int    `json:"count"`
	Keep       int    `json:"keep"`
	Disenchant int    `json:"disenchant"`
	EssencePer int    `json:"essence_per"`
	Essence    int    `json:"essence"`
}

// Plan lists the disenchant calls a run would issue and their essence payout.
type Plan struct {
	Entries         []PlanEntry `json:"entries"`
	TotalShards     int         `json:"total_shards"`
	TotalDisenchant int         `json:"total_disenchant"`
	TotalEssence    int         `json:"total_essence"`
}

// PlanOptions control which shard copies a plan selects.
type PlanOptions struct {
	// KeepShards retains this many redeemable copies per unowned champion.
	KeepShards int
	// DisenchantAll ignores ownership and keep counts entirely.
	DisenchantAll bool
}

// BuildPlan selects duplicate champion shards to disenchant. Shards of owned
// champions are disenchanted fully; unowned champions retain KeepShards
// redeemable copies unless DisenchantAll is set.
func BuildPlan(items []lcu.LootItem, opts PlanOptions) Plan {
	keep := opts.KeepShards
	if keep < 0 {
		keep = 0
	}

	var plan Plan
	for _, item := range items {
		if item.Type != lcu.TypeChampionRental || item.Count <= 0 {
			continue
		}

		owned := item.ItemStatus == lcu.ItemStatusOwned
		retained := 0
		if !opts.DisenchantAll && !owned {
			retained = keep
		}
		disenchant := item.Count - retained
		if disenchant < 0 {
			disenchant = 0
		}

		entry := PlanEntry{
			LootID:     item.LootID,
			Champion:   championName(item),
			Owned:      owned,
			Count:      item.Count,
			Keep:       item.Count - disenchant,
			Disenchant: disenchant,
			EssencePer: item.DisenchantValue,
			Essence:    disenchant * item.DisenchantValue,
		}

		plan.TotalShards += item.Count
		plan.TotalDisenchant += entry.Disenchant
		plan.TotalEssence += entry.Essence
		plan.Entries = append(plan.Entries, entry)
	}

	sort.Slice(plan.Entries, func(i, j int) bool {
		return plan.Entries[i].Champion < plan.Entries[j].Champion
	})
	return plan
}

// championName extracts a display name for a champion shard. The client puts
// the champion's name in itemDesc; fall back to the loot id suffix when blank.
func championName(item lcu.LootItem) string {
	if name := strings.TrimSpace(item.ItemDesc); name != "" {
		return name
	}
	if idx := strings.LastIndex(item.LootID, "_"); idx >= 0 && idx+1 < len(item.LootID) {
		return item.LootID[idx+1:]
	}
	return item.LootID
}
