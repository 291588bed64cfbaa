// Package main is the entry point for the mb CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacksmith/mb/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mb",
	Short: "mb - a local moodboard organizer",
	Long: `mb is a single-user moodboard organizer. It keeps one moodboard per
directory: a collection of photo posts grouped into named, colored,
icon-tagged clusters.

Posts are fetched from a photo source (an offline mock generator or the
Pexels API) and assigned to clusters. All state lives in the local .mb/
directory; there is no server.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.SetVersionTemplate("mb version {{.Version}}\n")
}
