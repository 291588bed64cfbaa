package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the moodboard summary",
	Long: `Show the moodboard's title, clusters, and post totals.

Example:
  mb show`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	m := store.Board()
	if m == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}

	fmt.Fprintf(os.Stdout, "%s\n", m.Title)
	if m.Description != "" {
		fmt.Fprintf(os.Stdout, "%s\n", cli.Gray(m.Description))
	}
	fmt.Fprintf(os.Stdout, "Created %s\n\n", m.CreatedAt.Format("2006-01-02"))

	if len(m.Clusters) == 0 {
		fmt.Fprintln(os.Stdout, "No clusters yet. Add one with `mb cluster add <title>`.")
	} else {
		t := cli.NewTable()
		t.SetMaxWidth(2, cli.DefaultMaxTitleWidth)
		for _, c := range m.Clusters {
			t.AddRow(
				cli.Gray(c.ID),
				c.Icon,
				cli.Swatch(c.Color, c.Title),
				strconv.Itoa(c.PostCount)+" posts",
			)
		}
		t.Render(os.Stdout)
	}

	unassigned := 0
	for _, p := range m.Posts {
		if p.ClusterID == "" {
			unassigned++
		}
	}
	fmt.Fprintf(os.Stdout, "\n%d posts total, %d unassigned\n", len(m.Posts), unassigned)
	return nil
}
