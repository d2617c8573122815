package loot_test

import (
	"testing"

	"hexctl/internal/lcu"
	"hexctl/internal/loot"
)

func champShard(id, name, status string, count, value int) lcu.LootItem {
	return lcu.LootItem{
		LootID:               id,
		ItemDesc:             name,
		Type:                 lcu.TypeChampionRental,
		ItemStatus:           status,
		Count:                count,
		DisenchantValue:      value,
		DisenchantRecipeName: lcu.RecipeChampionShard,
	}
}

func TestBuildPlanKeepsOneUnownedCopy(t *testing.T) {
	items := []lcu.LootItem{
		champShard("CHAMPION_RENTAL_266", "Aatrox", lcu.ItemStatusFree, 3, 90),
		champShard("CHAMPION_RENTAL_103", "Ahri", lcu.ItemStatusOwned, 2, 90),
		champShard("CHAMPION_RENTAL_84", "Akali", lcu.ItemStatusFree, 1, 90),
		{LootID: "CHEST_1", Type: "CHEST", Count: 5},
	}

	plan := loot.BuildPlan(items, loot.PlanOptions{KeepShards: 1})

	if len(plan.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(plan.Entries))
	}
	// Sorted by champion name.
	if plan.Entries[0].Champion != "Aatrox" || plan.Entries[1].Champion != "Ahri" || plan.Entries[2].Champion != "Akali" {
		t.Fatalf("entries not sorted by champion: %+v", plan.Entries)
	}

	aatrox := plan.Entries[0]
	if aatrox.Disenchant != 2 || aatrox.Keep != 1 || aatrox.Essence != 180 {
		t.Fatalf("unexpected Aatrox entry: %+v", aatrox)
	}

	// Owned champion: every copy goes.
	ahri := plan.Entries[1]
	if ahri.Disenchant != 2 || ahri.Keep != 0 {
		t.Fatalf("unexpected Ahri entry: %+v", ahri)
	}

	// Single unowned copy is retained.
	akali := plan.Entries[2]
	if akali.Disenchant != 0 || akali.Keep != 1 {
		t.Fatalf("unexpected Akali entry: %+v", akali)
	}

	if plan.TotalShards != 6 || plan.TotalDisenchant != 4 || plan.TotalEssence != 360 {
		t.Fatalf("unexpected totals: %+v", plan)
	}
}

func TestBuildPlanDisenchantAll(t *testing.T) {
	items := []lcu.LootItem{
		champShard("CHAMPION_RENTAL_266", "Aatrox", lcu.ItemStatusFree, 3, 90),
	}

	plan := loot.BuildPlan(items, loot.PlanOptions{KeepShards: 1, DisenchantAll: true})
	if plan.TotalDisenchant != 3 || plan.Entries[0].Keep != 0 {
		t.Fatalf("expected all copies selected: %+v", plan)
	}
}

func TestBuildPlanKeepTwo(t *testing.T) {
	items := []lcu.LootItem{
		champShard("CHAMPION_RENTAL_266", "Aatrox", lcu.ItemStatusFree, 5, 90),
		champShard("CHAMPION_RENTAL_84", "Akali", lcu.ItemStatusFree, 2, 90),
	}

	plan := loot.BuildPlan(items, loot.PlanOptions{KeepShards: 2})
	if plan.Entries[0].Disenchant != 3 || plan.Entries[0].Keep != 2 {
		t.Fatalf("unexpected Aatrox entry: %+v", plan.Entries[0])
	}
	if plan.Entries[1].Disenchant != 0 {
		t.Fatalf("unexpected Akali entry: %+v", plan.Entries[1])
	}
}

func TestBuildPlanFallsBackToLootIDName(t *testing.T) {
	items := []lcu.LootItem{
		champShard("CHAMPION_RENTAL_266", "", lcu.ItemStatusFree, 2, 90),
	}

	plan := loot.BuildPlan(items, loot.PlanOptions{KeepShards: 1})
	if plan.Entries[0].Champion != "266" {
		t.Fatalf("expected loot id suffix fallback, got %q", plan.Entries[0].Champion)
	}
}
