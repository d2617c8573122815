package loot

import (
	"sort"

	"hexctl/internal/lcu"
)

// TierStat counts skin shards of one price tier.
type TierStat struct {
	Tier     int `json:"tier"`
	Owned    int `json:"owned"`
	NotOwned int `json:"not_owned"`
}

// TierStats is the per-tier breakdown of the skin shards in the loot tab.
type TierStats struct {
	Tiers       []TierStat `json:"tiers"`
	TotalShards int        `json:"total_shards"`
}

// SkinShardTiers buckets skin shards by price tier, splitting each tier into
// owned and not-owned counts. A shard whose skin is already owned counts fully
// as owned; a redeemable shard counts once as not-owned with any extra copies
// as owned.
func SkinShardTiers(items []lcu.LootItem) TierStats {
	byTier := make(map[int]*TierStat)
	total := 0

	for _, item := range items {
		if item.DisplayCategories != lcu.CategorySkin {
			continue
		}
		stat, ok := byTier[item.Value]
		if !ok {
			stat = &TierStat{Tier: item.Value}
			byTier[item.Value] = stat
		}
		total += item.Count
		if item.ItemStatus == lcu.ItemStatusOwned {
			stat.Owned += item.Count
		} else {
			stat.NotOwned++
			stat.Owned += item.Count - 1
		}
	}

	tiers := make([]TierStat, 0, len(byTier))
	for _, stat := range byTier {
		tiers = append(tiers, *stat)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Tier < tiers[j].Tier })

	return TierStats{Tiers: tiers, TotalShards: total}
}
