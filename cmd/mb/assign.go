package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var assignCmd = &cobra.Command{
	Use:   "assign <post-id> [cluster-id]",
	Short: "Assign a post to a cluster",
	Long: `Assign a post to a cluster, or unassign it when cluster-id is omitted.
Post counts on both the old and new cluster are kept in step.

Examples:
  mb assign 9c42... 3f1a...
  mb assign 9c42...`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAssign,
}

func init() {
	rootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	postID := args[0]
	clusterID := ""
	if len(args) == 2 {
		clusterID = args[1]
	}

	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	m := store.Board()
	if m == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}
	if m.Post(postID) == nil {
		return &cli.NotFoundError{Type: "post", ID: postID}
	}
	if clusterID != "" && m.Cluster(clusterID) == nil {
		return &cli.NotFoundError{Type: "cluster", ID: clusterID}
	}

	store.AssignPost(postID, clusterID)

	if clusterID == "" {
		fmt.Fprintln(os.Stdout, "Post removed from cluster")
	} else {
		fmt.Fprintf(os.Stdout, "Post assigned to %q\n", m.Cluster(clusterID).Title)
	}
	return nil
}
