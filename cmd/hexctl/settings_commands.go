package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hexctl/internal/api"
	"hexctl/internal/lcu"
	"hexctl/internal/runlock"
	"hexctl/internal/settings"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Back up and restore client settings",
	}

	settingsCmd.AddCommand(newSettingsBackupCommand(ctx))
	settingsCmd.AddCommand(newSettingsRestoreCommand(ctx))
	settingsCmd.AddCommand(newSettingsListCommand(ctx))

	return settingsCmd
}

func newSettingsBackupCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Save the current game and input settings to a snapshot",
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

				snapshot, err := api.BackupSettings(cmd.Context(), api.SettingsRequest{
					Client:  client,
					Store:   settings.NewStore(cfg.Paths.BackupDir),
					History: store,
					Logger:  ctx.ensureLogger(cmd),
				})
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, snapshot)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Saved snapshot %s (%s)\n", snapshot.ID, strings.Join(snapshot.Documents, ", "))
				fmt.Fprintf(out, "Location: %s\n", snapshot.Dir)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}

func newSettingsRestoreCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "restore [snapshot]",
		Short: "Push a saved snapshot back into the client",
		Long: "Push a saved snapshot back into the client. The snapshot may be " +
			"named by id prefix, directory name, or path; with no argument the " +
			"most recent snapshot is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ref := ""
			if len(args) == 1 {
				ref = strings.TrimSpace(args[0])
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

				result, err := api.RestoreSettings(cmd.Context(), api.SettingsRequest{
					Client:  client,
					Store:   settings.NewStore(cfg.Paths.BackupDir),
					History: store,
					Logger:  ctx.ensureLogger(cmd),
				}, ref)
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Restoring snapshot %s taken %s\n", result.Snapshot.ID, result.Snapshot.TakenAt.Format(time.RFC3339))
				for _, doc := range result.Documents {
					if doc.OK() {
						fmt.Fprintf(out, "  %s: restored\n", doc.Document)
						continue
					}
					if doc.Err != "" {
						fmt.Fprintf(out, "  %s: %s\n", doc.Document, doc.Err)
						continue
					}
					fmt.Fprintf(out, "  %s: rejected (%s)\n", doc.Document, api.StatusText(doc.Status))
				}
				if failed := result.Failed(); failed > 0 {
					return fmt.Errorf("%d of %d documents were not restored", failed, len(result.Documents))
				}
				fmt.Fprintln(out, "Restart the client for every setting to take effect")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}

func newSettingsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved settings snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			snapshots, err := settings.NewStore(cfg.Paths.BackupDir).List()
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, snapshots)
			}

			out := cmd.OutOrStdout()
			if len(snapshots) == 0 {
				fmt.Fprintln(out, "No snapshots saved")
				return nil
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"ID", "Taken", "Summoner", "Documents"},
				buildSnapshotRows(snapshots),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func buildSnapshotRows(snapshots []settings.Snapshot) [][]string {
	rows := make([][]string, 0, len(snapshots))
	for _, snap := range snapshots {
		rows = append(rows, []string{
			snap.ShortID(),
			snap.TakenAt.Local().Format("2006-01-02 15:04:05"),
			snap.Summoner,
			strings.Join(snap.Documents, ", "),
		})
	}
	return rows
}
