package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/mb/internal/cli"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <cluster-id> [query]",
	Short: "Fetch photo posts into a cluster",
	Long: `Search the configured photo source and append the results to a cluster
as posts. When query is omitted, the cluster's lowercased title is used.

The photo source is chosen by photo_source in .mbconfig.yaml: "mock"
(offline generator, the default) or "pexels" (requires pexels_api_key
or the PEXELS_API_KEY environment variable).

Examples:
  mb generate 3f1a... food
  mb generate 3f1a... "sunset view" --count=5
  mb generate 3f1a...`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

var generateCount int

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 0, "number of posts to fetch (default from config)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	clusterID := args[0]

	_, store, cfg, err := openStore()
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

	query := strings.ToLower(c.Title)
	if len(args) == 2 {
		query = args[1]
	}

	count := generateCount
	if count == 0 {
		count = cfg.DefaultPostCount
	}
	if count < 1 {
		return &cli.ValidationError{Field: "count", Message: "must be at least 1"}
	}

	added, err := store.Generate(cmdContext(cmd), clusterID, query, count)
	if err != nil {
		return fmt.Errorf("%s: %w", cli.Red("generation failed"), err)
	}

	fmt.Fprintf(os.Stdout, "%s Added %d posts to %q\n", cli.Green("✓"), added, c.Title)
	return nil
}
