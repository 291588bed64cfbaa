package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jacksmith/mb/internal/model"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow external changes to the moodboard",
	Long: `Watch the persisted slot for changes made by other processes (another
terminal, a sync tool) and print the updated summary for each one.
Changes made by this process are not echoed back.

Runs until interrupted.

Example:
  mb watch`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	store.Subscribe(func(m *model.Moodboard) {
		fmt.Fprintf(os.Stdout, "moodboard %q updated: %d clusters, %d posts\n",
			m.Title, len(m.Clusters), len(m.Posts))
	})

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
	defer stop()

	fmt.Fprintln(os.Stdout, "Watching for changes (ctrl-c to stop)...")
	if err := store.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
