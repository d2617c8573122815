package api

import (
	"context"
	"fmt"
	"log/slog"

	"hexctl/internal/collection"
	"hexctl/internal/history"
	"hexctl/internal/lcu"
	"hexctl/internal/logging"
	"hexctl/internal/meraki"
)

// CollectionStatsRequest carries dependencies for the challenge collection
// statistics workflow.
type CollectionStatsRequest struct {
	Client  *lcu.Client
	Meraki  *meraki.Client
	History *history.Store
	Logger  *slog.Logger
}

// CollectionStatsResult is the per-champion table plus summary totals.
type CollectionStatsResult struct {
	Rows       []collection.ChampionStat
	TotalOwned int
	TotalSum   int
	Summary    string
}

// CollectionStats joins CDN champion data with loot and inventory into
// per-champion skin collection rows.
func CollectionStats(ctx context.Context, req CollectionStatsRequest) (CollectionStatsResult, error) {
	logger := logging.NewComponentLogger(req.Logger, "collection")

	champions, err := req.Meraki.Champions(ctx)
	if err != nil {
		return CollectionStatsResult{}, err
	}

	lootItems, err := req.Client.PlayerLoot(ctx)
	if err != nil {
		return CollectionStatsResult{}, fmt.Errorf("fetch player loot: %w", err)
	}

	ownedSkins, err := req.Client.Inventory(ctx, "CHAMPION_SKIN")
	if err != nil {
		return CollectionStatsResult{}, fmt.Errorf("fetch skin inventory: %w", err)
	}

	rows := collection.Stats(champions, lootItems, ownedSkins)

	result := CollectionStatsResult{Rows: rows}
	for _, row := range rows {
		result.TotalOwned += row.OwnedSkins
		result.TotalSum += row.Total
	}
	result.Summary = fmt.Sprintf("%d champions, %d owned skins, %d total with shards",
		len(rows), result.TotalOwned, result.TotalSum)

	logger.Info("collection stats computed",
		logging.Int("champions", len(rows)),
		logging.Int("owned_skins", result.TotalOwned))

	recordRun(ctx, req.History, logger, history.Run{
		Command:       "collection",
		Summary:       result.Summary,
		ItemsAffected: result.TotalSum,
	})

	return result, nil
}
