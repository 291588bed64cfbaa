package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "List clusters",
	Args:  cobra.NoArgs,
	RunE:  runClusters,
}

func init() {
	rootCmd.AddCommand(clustersCmd)
}

func runClusters(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	m := store.Board()
	if m == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}

	if len(m.Clusters) == 0 {
		fmt.Fprintln(os.Stdout, "No clusters.")
		return nil
	}

	t := cli.NewTable()
	t.SetMaxWidth(2, cli.DefaultMaxTitleWidth)
	t.SetMaxWidth(3, cli.DefaultMaxTitleWidth)
	for _, c := range m.Clusters {
		t.AddRow(
			cli.Gray(c.ID),
			c.Icon,
			cli.Swatch(c.Color, c.Title),
			cli.Gray(c.Description),
			strconv.Itoa(c.PostCount)+" posts",
		)
	}
	t.Render(os.Stdout)
	return nil
}
