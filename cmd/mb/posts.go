package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List posts",
	Long: `List posts, optionally filtered to one cluster.

Examples:
  mb posts
  mb posts --cluster=3f1a...`,
	Args: cobra.NoArgs,
	RunE: runPosts,
}

var postsCluster string

func init() {
	postsCmd.Flags().StringVar(&postsCluster, "cluster", "", "only posts in this cluster")

	rootCmd.AddCommand(postsCmd)
}

func runPosts(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	m := store.Board()
	if m == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}
	if postsCluster != "" && m.Cluster(postsCluster) == nil {
		return &cli.NotFoundError{Type: "cluster", ID: postsCluster}
	}

	posts := store.FilteredPosts(postsCluster)
	if len(posts) == 0 {
		fmt.Fprintln(os.Stdout, "No posts.")
		return nil
	}

	t := cli.NewTable()
	t.SetMaxWidth(1, cli.DefaultMaxTitleWidth)
	for _, p := range posts {
		clusterName := cli.Gray("unassigned")
		if c := m.Cluster(p.ClusterID); c != nil {
			clusterName = cli.Swatch(c.Color, c.Title)
		}
		t.AddRow(
			cli.Gray(p.ID),
			p.Title,
			clusterName,
			"by "+p.Author.Name,
		)
	}
	t.Render(os.Stdout)
	return nil
}
