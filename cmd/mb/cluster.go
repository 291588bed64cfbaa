package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/mb/internal/board"
	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Manage clusters",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var clusterAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new cluster",
	Long: `Add a cluster to the moodboard. The fallback color is assigned from
the fixed palette by creation order.

Examples:
  mb cluster add "Food"
  mb cluster add "Sunset view" --icon=🌅 --description="Golden hour spots"
  mb cluster add "Lodging" --gradient-from=#f59e0b --gradient-to=#b45309`,
	Args: cobra.ExactArgs(1),
	RunE: runClusterAdd,
}

var clusterEditCmd = &cobra.Command{
	Use:   "edit <cluster-id>",
	Short: "Edit a cluster",
	Long: `Edit a cluster's title or display attributes. Only the flags you pass
are changed.

Examples:
  mb cluster edit 3f1a... --title="Street Food"
  mb cluster edit 3f1a... --icon=🍜 --description=""`,
	Args: cobra.ExactArgs(1),
	RunE: runClusterEdit,
}

var clusterRmCmd = &cobra.Command{
	Use:   "rm <cluster-id>",
	Short: "Delete a cluster",
	Long: `Delete a cluster. Its posts are kept but become unassigned.

Example:
  mb cluster rm 3f1a...`,
	Args: cobra.ExactArgs(1),
	RunE: runClusterRm,
}

var (
	clusterAddDescription  string
	clusterAddIcon         string
	clusterAddGradientFrom string
	clusterAddGradientTo   string

	clusterEditTitle        string
	clusterEditDescription  string
	clusterEditIcon         string
	clusterEditGradientFrom string
	clusterEditGradientTo   string
)

func init() {
	clusterAddCmd.Flags().StringVar(&clusterAddDescription, "description", "", "cluster description")
	clusterAddCmd.Flags().StringVar(&clusterAddIcon, "icon", "", "cluster icon (emoji)")
	clusterAddCmd.Flags().StringVar(&clusterAddGradientFrom, "gradient-from", "", "gradient start color")
	clusterAddCmd.Flags().StringVar(&clusterAddGradientTo, "gradient-to", "", "gradient end color")

	clusterEditCmd.Flags().StringVar(&clusterEditTitle, "title", "", "new title")
	clusterEditCmd.Flags().StringVar(&clusterEditDescription, "description", "", "new description")
	clusterEditCmd.Flags().StringVar(&clusterEditIcon, "icon", "", "new icon")
	clusterEditCmd.Flags().StringVar(&clusterEditGradientFrom, "gradient-from", "", "new gradient start color")
	clusterEditCmd.Flags().StringVar(&clusterEditGradientTo, "gradient-to", "", "new gradient end color")

	clusterCmd.AddCommand(clusterAddCmd)
	clusterCmd.AddCommand(clusterEditCmd)
	clusterCmd.AddCommand(clusterRmCmd)
	rootCmd.AddCommand(clusterCmd)
}

func runClusterAdd(cmd *cobra.Command, args []string) error {
	title := args[0]

	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	c, err := store.CreateCluster(title, board.ClusterOptions{
		Description:  clusterAddDescription,
		Icon:         clusterAddIcon,
		GradientFrom: clusterAddGradientFrom,
		GradientTo:   clusterAddGradientTo,
	})
	if err != nil {
		return err
	}
	if c == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}

	fmt.Fprintf(os.Stdout, "Created cluster %s %s (%s)\n", c.Icon, cli.Swatch(c.Color, c.Title), c.ID)
	return nil
}

func runClusterEdit(cmd *cobra.Command, args []string) error {
	clusterID := args[0]

	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	m := store.Board()
	if m == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}
	if m.Cluster(clusterID) == nil {
		return &cli.NotFoundError{Type: "cluster", ID: clusterID}
	}

	var ch board.ClusterChanges
	if cmd.Flags().Changed("title") {
		ch.Title = &clusterEditTitle
	}
	if cmd.Flags().Changed("description") {
		ch.Description = &clusterEditDescription
	}
	if cmd.Flags().Changed("icon") {
		ch.Icon = &clusterEditIcon
	}
	if cmd.Flags().Changed("gradient-from") {
		ch.GradientFrom = &clusterEditGradientFrom
	}
	if cmd.Flags().Changed("gradient-to") {
		ch.GradientTo = &clusterEditGradientTo
	}

	if ch == (board.ClusterChanges{}) {
		return &cli.ValidationError{Message: "nothing to change: pass at least one flag"}
	}

	if err := store.UpdateCluster(clusterID, ch); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Updated cluster")
	return nil
}

func runClusterRm(cmd *cobra.Command, args []string) error {
	clusterID := args[0]

	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	m := store.Board()
	if m == nil {
		return &cli.NotFoundError{Type: "moodboard"}
	}
	c := m.Cluster(clusterID)
	if c == nil {
		return &cli.NotFoundError{Type: "cluster", ID: clusterID}
	}

	store.DeleteCluster(clusterID)
	fmt.Fprintf(os.Stdout, "Deleted cluster %q (%d posts kept, now unassigned)\n", c.Title, c.PostCount)
	return nil
}
