package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the moodboard as JSON",
	Long: `Print the full moodboard as JSON, in the same format as the persisted
slot. Useful for piping into jq or diffing against a backup.

Example:
  mb dump | jq '.clusters[].title'`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	m := store.Board()
	if m == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize moodboard: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
