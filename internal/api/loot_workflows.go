package api

import (
	"context"
	"fmt"
	"log/slog"

	"hexctl/internal/history"
	"hexctl/internal/lcu"
	"hexctl/internal/logging"
	"hexctl/internal/loot"
)

// LootStatsRequest carries dependencies for the skin shard statistics workflow.
type LootStatsRequest struct {
	Client  *lcu.Client
	History *history.Store
	Logger  *slog.Logger
}

// LootStatsResult is the tier breakdown plus the run summary line.
type LootStatsResult struct {
	Stats   loot.TierStats
	Summary string
}

// LootStats fetches the player's loot and buckets skin shards by price tier.
func LootStats(ctx context.Context, req LootStatsRequest) (LootStatsResult, error) {
	logger := logging.NewComponentLogger(req.Logger, "loot")

	items, err := req.Client.PlayerLoot(ctx)
	if err != nil {
		return LootStatsResult{}, fmt.Errorf("fetch player loot: %w", err)
	}

	stats := loot.SkinShardTiers(items)
	summary := fmt.Sprintf("%d skin shards across %d tiers", stats.TotalShards, len(stats.Tiers))
	logger.Info("skin shard stats computed",
		logging.Int("shards", stats.TotalShards),
		logging.Int("tiers", len(stats.Tiers)))

	recordRun(ctx, req.History, logger, history.Run{
		Command:       "loot stats",
		Summary:       summary,
		ItemsAffected: stats.TotalShards,
	})

	return LootStatsResult{Stats: stats, Summary: summary}, nil
}

// DisenchantRequest carries dependencies and options for disenchant planning
// and execution.
type DisenchantRequest struct {
	Client  *lcu.Client
	History *history.Store
	Logger  *slog.Logger

	KeepShards    int
	DisenchantAll bool
}

// PlanDisenchant computes the disenchant plan without mutating anything.
func PlanDisenchant(ctx context.Context, req DisenchantRequest) (loot.Plan, error) {
	items, err := req.Client.PlayerLoot(ctx)
	if err != nil {
		return loot.Plan{}, fmt.Errorf("fetch player loot: %w", err)
	}
	return loot.BuildPlan(items, loot.PlanOptions{
		KeepShards:    req.KeepShards,
		DisenchantAll: req.DisenchantAll,
	}), nil
}

// DisenchantFailure records one shard the client refused to disenchant.
type DisenchantFailure struct {
	LootID   string `json:"loot_id"`
	Champion string `json:"champion"`
	Err      string `json:"error"`
}

// DisenchantResult summarizes an executed plan.
type DisenchantResult struct {
	Plan          loot.Plan           `json:"plan"`
	Disenchanted  int                 `json:"disenchanted"`
	EssenceGained int                 `json:"essence_gained"`
	Failures      []DisenchantFailure `json:"failures,omitempty"`
}

// ExecuteDisenchant issues the disenchant calls from a plan sequentially. A
// failed call is recorded and execution continues with the remaining entries.
func ExecuteDisenchant(ctx context.Context, req DisenchantRequest, plan loot.Plan) (DisenchantResult, error) {
	logger := logging.NewComponentLogger(req.Logger, "loot")
	result := DisenchantResult{Plan: plan}

	for _, entry := range plan.Entries {
		if entry.Disenchant == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := req.Client.Disenchant(ctx, lcu.RecipeChampionShard, entry.LootID, entry.Disenchant)
		if err != nil {
			logger.Warn("disenchant failed",
				logging.String("loot_id", entry.LootID),
				logging.String("champion", entry.Champion),
				logging.Error(err))
			result.Failures = append(result.Failures, DisenchantFailure{
				LootID:   entry.LootID,
				Champion: entry.Champion,
				Err:      err.Error(),
			})
			continue
		}

		result.Disenchanted += entry.Disenchant
		result.EssenceGained += entry.Essence
		logger.Debug("shards disenchanted",
			logging.String("champion", entry.Champion),
			logging.Int("count", entry.Disenchant),
			logging.Int("essence", entry.Essence))
	}

	summary := fmt.Sprintf("disenchanted %d shards for %d essence", result.Disenchanted, result.EssenceGained)
	if len(result.Failures) > 0 {
		summary = fmt.Sprintf("%s (%d failed)", summary, len(result.Failures))
	}
	logger.Info("disenchant run complete",
		logging.Int("disenchanted", result.Disenchanted),
		logging.Int("essence", result.EssenceGained),
		logging.Int("failures", len(result.Failures)))

	recordRun(ctx, req.History, logger, history.Run{
		Command:       "loot disenchant",
		Summary:       summary,
		ItemsAffected: result.Disenchanted,
		EssenceGained: result.EssenceGained,
	})

	return result, nil
}

// recordRun appends to history when a store is configured. History is
// bookkeeping; failures are logged, never surfaced as command errors.
func recordRun(ctx context.Context, store *history.Store, logger *slog.Logger, run history.Run) {
	if store == nil {
		return
	}
	if _, err := store.Record(ctx, run); err != nil {
		logger.Warn("run not recorded in history", logging.Error(err))
	}
}
