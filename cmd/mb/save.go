package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a backup snapshot",
	Long: `Write the current moodboard to the backup slot (.mb/backup.json).
The backup is independent of the primary slot and only ever restored
explicitly with ` + "`mb restore`" + `.

Example:
  mb save`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the backup snapshot",
	Long: `Replace the current moodboard with the backup slot's contents.

Example:
  mb restore`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(restoreCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	if err := store.SaveBackup(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Backup saved")
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	if err := store.RestoreBackup(); err != nil {
		return err
	}

	m := store.Board()
	fmt.Fprintf(os.Stdout, "Restored moodboard %q (%d clusters, %d posts)\n",
		m.Title, len(m.Clusters), len(m.Posts))
	return nil
}
