package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hexctl/internal/api"
	"hexctl/internal/lcu"
	"hexctl/internal/runlock"
)

func newRandomizeCommand(ctx *commandContext) *cobra.Command {
	randomizeCmd := &cobra.Command{
		Use:   "randomize",
		Short: "Randomize cosmetic account state",
	}

	randomizeCmd.AddCommand(newRandomizeIconCommand(ctx))

	return randomizeCmd
}

func newRandomizeIconCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Switch to a random owned profile icon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			return ctx.withClient(cmd, func(client *lcu.Client, _ lcu.Credentials) error {
				guard, err := runlock.Acquire(cfg)
				if err != nil {
					return err
				}
				defer guard.Release()

				store := ctx.openHistory(cmd)
				if store != nil {
					defer store.Close()
				}

				result, err := api.RandomizeIcon(cmd.Context(), api.RandomizeIconRequest{
					Client:  client,
					History: store,
					Logger:  ctx.ensureLogger(cmd),
				})
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, result)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Profile icon changed %d -> %d (picked from %d owned)\n",
					result.OldIcon, result.NewIcon, result.Owned)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}
