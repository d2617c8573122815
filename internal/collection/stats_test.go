package collection_test

import (
	"testing"

	"hexctl/internal/collection"
	"hexctl/internal/lcu"
	"hexctl/internal/meraki"
)

func testChampions() meraki.Champions {
	return meraki.Champions{
		"Aatrox": {
			ID: 266, Key: "Aatrox", Name: "Aatrox",
			Skins: []meraki.Skin{
				{ID: 266000, IsBase: true},
				{ID: 266001, Name: "Justicar Aatrox"},
				{ID: 266002, Name: "Mecha Aatrox"},
			},
		},
		"Ahri": {
			ID: 103, Key: "Ahri", Name: "Ahri",
			Skins: []meraki.Skin{
				{ID: 103000, IsBase: true},
				{ID: 103001, Name: "Dynasty Ahri"},
			},
		},
	}
}

func TestStatsJoinsLootAndInventory(t *testing.T) {
	lootItems := []lcu.LootItem{
		// Two redeemable partial shards for Aatrox skins.
		{ItemStatus: lcu.ItemStatusFree, DisenchantRecipeName: lcu.RecipeSkinShard, ParentStoreItemID: 266},
		{ItemStatus: lcu.ItemStatusFree, DisenchantRecipeName: lcu.RecipeSkinShard, ParentStoreItemID: 266},
		// Owned shards do not count as unowned progress.
		{ItemStatus: lcu.ItemStatusOwned, DisenchantRecipeName: lcu.RecipeSkinShard, ParentStoreItemID: 103},
		// Champion shards are not skin shards.
		{ItemStatus: lcu.ItemStatusFree, DisenchantRecipeName: lcu.RecipeChampionShard, ParentStoreItemID: 103},
	}
	ownedSkins := []lcu.InventoryItem{
		{ItemID: 103001, Owned: true},
	}

	stats := collection.Stats(testChampions(), lootItems, ownedSkins)

	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].Champion != "Aatrox" || stats[1].Champion != "Ahri" {
		t.Fatalf("rows not sorted by name: %+v", stats)
	}

	aatrox := stats[0]
	if aatrox.Skins != 2 || aatrox.OwnedSkins != 0 || aatrox.UnownedShards != 2 || aatrox.Total != 2 {
		t.Fatalf("unexpected Aatrox row: %+v", aatrox)
	}

	ahri := stats[1]
	if ahri.Skins != 1 || ahri.OwnedSkins != 1 || ahri.UnownedShards != 0 || ahri.Total != 1 {
		t.Fatalf("unexpected Ahri row: %+v", ahri)
	}
}

func TestStatsEmptyInputs(t *testing.T) {
	stats := collection.Stats(testChampions(), nil, nil)
	for _, row := range stats {
		if row.OwnedSkins != 0 || row.UnownedShards != 0 || row.Total != 0 {
			t.Fatalf("expected zeroed row, got %+v", row)
		}
	}
}
