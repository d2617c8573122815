package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON emits the --json form of a command result: indented, with HTML
// escaping off so champion and summoner names print as typed.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
