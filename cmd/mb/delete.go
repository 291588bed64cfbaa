package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the moodboard",
	Long: `Delete the moodboard, its clusters, and its posts. The persisted slot
is cleared; there is no recovery short of restoring a backup made with
` + "`mb save`" + `.

Examples:
  mb delete
  mb delete --force`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "skip confirmation")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	m := store.Board()
	if m == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}

	if !deleteForce {
		fmt.Fprintf(os.Stdout, "Delete moodboard %q with %d clusters and %d posts? [y/N] ",
			m.Title, len(m.Clusters), len(m.Posts))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(os.Stdout, "Aborted.")
			return nil
		}
	}

	if err := store.DeleteBoard(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Deleted moodboard %q\n", m.Title)
	return nil
}
