package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hexctl/internal/api"
	"hexctl/internal/lcu"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the connected client and logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *lcu.Client, creds lcu.Credentials) error {
				result, err := api.Status(cmd.Context(), api.StatusRequest{
					Client: client,
					Creds:  creds,
					Logger: ctx.ensureLogger(cmd),
				})
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, result)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Client: pid %d, port %d\n", result.PID, result.Port)
				fmt.Fprintf(out, "Summoner: %s (level %d, icon %d)\n", result.Summoner, result.Level, result.IconID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}
