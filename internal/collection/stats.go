package collection

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"hexctl/internal/lcu"
	"hexctl/internal/meraki"
)

// ChampionStat is one champion's skin-collection progress.
type ChampionStat struct {
	Champion      string `json:"champion"`
	Skins         int    `json:"skins"`
	OwnedSkins    int    `json:"owned_skins"`
	UnownedShards int    `json:"unowned_shards"`
	// Total is owned skins plus unique unowned shards, the sum the
	// collection challenges grade against.
	Total int `json:"total"`
}

// Stats joins champion reference data with the player's loot and skin
// inventory into per-champion collection rows sorted by champion name.
func Stats(champions meraki.Champions, lootItems []lcu.LootItem, ownedSkins []lcu.InventoryItem) []ChampionStat {
	unownedShards := unownedShardsByChampionID(lootItems)

	ownedSkinIDs := make(map[int]struct{}, len(ownedSkins))
	for _, item := range ownedSkins {
		ownedSkinIDs[item.ItemID] = struct{}{}
	}

	stats := make([]ChampionStat, 0, len(champions))
	for _, champion := range champions {
		skins := champion.NonBaseSkins()

		owned := 0
		for _, skin := range skins {
			if _, ok := ownedSkinIDs[skin.ID]; ok {
				owned++
			}
		}
		shards := unownedShards[champion.ID]

		stats = append(stats, ChampionStat{
			Champion:      champion.Name,
			Skins:         len(skins),
			OwnedSkins:    owned,
			UnownedShards: shards,
			Total:         owned + shards,
		})
	}

	collator := collate.New(language.English)
	sort.Slice(stats, func(i, j int) bool {
		return collator.CompareString(stats[i].Champion, stats[j].Champion) < 0
	})
	return stats
}

// unownedShardsByChampionID counts redeemable partial skin shards per champion.
func unownedShardsByChampionID(items []lcu.LootItem) map[int]int {
	counts := make(map[int]int)
	for _, item := range items {
		if item.ItemStatus == lcu.ItemStatusOwned {
			continue
		}
		if item.DisenchantRecipeName != lcu.RecipeSkinShard {
			continue
		}
		counts[item.ParentStoreItemID]++
	}
	return counts
}
