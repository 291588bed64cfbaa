package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify moodboard integrity",
	Long: `Verify the moodboard's integrity rules: cluster post counts match the
posts that reference them, no post points at a missing cluster, and ids
are unique.

With --fix, repairable issues (stale counts, dangling references) are
corrected in place.

Examples:
  mb check
  mb check --fix`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var checkFix bool

func init() {
	checkCmd.Flags().BoolVar(&checkFix, "fix", false, "repair fixable issues")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	issues := store.Check()
	if len(issues) == 0 {
		fmt.Fprintln(os.Stdout, cli.Green("✓")+" moodboard is consistent")
		return nil
	}

	for _, issue := range issues {
		fmt.Fprintln(os.Stdout, cli.Red("✗")+" "+issue.String())
	}

	if !checkFix {
		return fmt.Errorf("found %d issues (use --fix to repair)", len(issues))
	}

	fixed := store.Repair()
	fmt.Fprintf(os.Stdout, "Applied %d fixes\n", fixed)

	if remaining := store.Check(); len(remaining) > 0 {
		return fmt.Errorf("%d issues could not be repaired", len(remaining))
	}
	return nil
}
