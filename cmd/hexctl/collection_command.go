package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hexctl/internal/api"
	"hexctl/internal/collection"
	"hexctl/internal/lcu"
	"hexctl/internal/meraki"
)

func newCollectionCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Show skin-collection progress per champion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			return ctx.withClient(cmd, func(client *lcu.Client, _ lcu.Credentials) error {
				store := ctx.openHistory(cmd)
				if store != nil {
					defer store.Close()
				}

				result, err := api.CollectionStats(cmd.Context(), api.CollectionStatsRequest{
					Client:  client,
					Meraki:  meraki.NewClient(cfg, ctx.ensureLogger(cmd)),
					History: store,
					Logger:  ctx.ensureLogger(cmd),
				})
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(out,
					[]string{"Champion", "Skins", "Owned", "Unowned Shards", "Total"},
					buildCollectionRows(result.Rows),
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
				))
				fmt.Fprintln(out, result.Summary)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func buildCollectionRows(stats []collection.ChampionStat) [][]string {
	rows := make([][]string, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, []string{
			stat.Champion,
			strconv.Itoa(stat.Skins),
			strconv.Itoa(stat.OwnedSkins),
			strconv.Itoa(stat.UnownedShards),
			strconv.Itoa(stat.Total),
		})
	}
	return rows
}
