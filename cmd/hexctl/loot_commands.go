package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"hexctl/internal/api"
	"hexctl/internal/lcu"
	"hexctl/internal/loot"
	"hexctl/internal/runlock"
)

func newLootCommand(ctx *commandContext) *cobra.Command {
	lootCmd := &cobra.Command{
		Use:   "loot",
		Short: "Inspect and disenchant loot",
	}

	lootCmd.AddCommand(newLootStatsCommand(ctx))
	lootCmd.AddCommand(newLootDisenchantCommand(ctx))

	return lootCmd
}

func newLootStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show skin shards grouped by price tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *lcu.Client, _ lcu.Credentials) error {
				store := ctx.openHistory(cmd)
				if store != nil {
					defer store.Close()
				}

				result, err := api.LootStats(cmd.Context(), api.LootStatsRequest{
					Client:  client,
					History: store,
					Logger:  ctx.ensureLogger(cmd),
				})
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, result.Stats)
				}

				out := cmd.OutOrStdout()
				if len(result.Stats.Tiers) == 0 {
					fmt.Fprintln(out, "No skin shards in loot")
					return nil
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Tier (RP)", "Owned", "Not Owned", "Total"},
					buildTierRows(result.Stats),
					[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
				))
				fmt.Fprintln(out, result.Summary)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newLootDisenchantCommand(ctx *commandContext) *cobra.Command {
	var keepShards int
	var disenchantAll bool
	var confirm bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "disenchant",
		Short: "Disenchant duplicate champion shards into blue essence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("keep") {
				keepShards = cfg.Loot.KeepShards
			}
			if keepShards < 0 {
				return fmt.Errorf("--keep must be zero or greater, got %d", keepShards)
			}

			return ctx.withClient(cmd, func(client *lcu.Client, _ lcu.Credentials) error {
				store := ctx.openHistory(cmd)
				if store != nil {
					defer store.Close()
				}

				req := api.DisenchantRequest{
					Client:        client,
					History:       store,
					Logger:        ctx.ensureLogger(cmd),
					KeepShards:    keepShards,
					DisenchantAll: disenchantAll,
				}

				plan, err := api.PlanDisenchant(cmd.Context(), req)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if plan.TotalDisenchant == 0 {
					if jsonOutput {
						return writeJSON(cmd, plan)
					}
					fmt.Fprintln(out, "Nothing to disenchant")
					return nil
				}

				if !confirm {
					if jsonOutput {
						return writeJSON(cmd, plan)
					}
					printDisenchantPlan(out, plan)
					fmt.Fprintln(out, "Dry run only; re-run with --yes to disenchant")
					return nil
				}

				guard, err := runlock.Acquire(cfg)
				if err != nil {
					return err
				}
				defer guard.Release()

				result, err := api.ExecuteDisenchant(cmd.Context(), req, plan)
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, result)
				}
				printDisenchantPlan(out, result.Plan)
				fmt.Fprintf(out, "Disenchanted %d shards for %d blue essence\n", result.Disenchanted, result.EssenceGained)
				for _, failure := range result.Failures {
					fmt.Fprintf(out, "Failed %s (%s): %s\n", failure.Champion, failure.LootID, failure.Err)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&keepShards, "keep", 0, "Redeemable shard copies to keep per unowned champion (default from config)")
	cmd.Flags().BoolVar(&disenchantAll, "all", false, "Disenchant every champion shard regardless of ownership")
	cmd.Flags().BoolVarP(&confirm, "yes", "y", false, "Perform the disenchants instead of printing the plan")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func printDisenchantPlan(out io.Writer, plan loot.Plan) {
	fmt.Fprintln(out, renderTable(out,
		[]string{"Champion", "Owned", "Shards", "Keep", "Disenchant", "Essence"},
		buildPlanRows(plan),
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
	))
	fmt.Fprintf(out, "Plan: %d of %d shards -> %d blue essence\n", plan.TotalDisenchant, plan.TotalShards, plan.TotalEssence)
}

func buildTierRows(stats loot.TierStats) [][]string {
	rows := make([][]string, 0, len(stats.Tiers))
	for _, tier := range stats.Tiers {
		rows = append(rows, []string{
			strconv.Itoa(tier.Tier),
			strconv.Itoa(tier.Owned),
			strconv.Itoa(tier.NotOwned),
			strconv.Itoa(tier.Owned + tier.NotOwned),
		})
	}
	return rows
}

func buildPlanRows(plan loot.Plan) [][]string {
	rows := make([][]string, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		rows = append(rows, []string{
			entry.Champion,
			yesNo(entry.Owned),
			strconv.Itoa(entry.Count),
			strconv.Itoa(entry.Keep),
			strconv.Itoa(entry.Disenchant),
			strconv.Itoa(entry.Essence),
		})
	}
	return rows
}
