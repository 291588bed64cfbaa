package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/mb/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <title>",
	Short: "Create a moodboard in the current directory",
	Long: `Create a .mb/ directory (if needed) and a new moodboard.

Replacing an existing moodboard discards its clusters and posts, so it
requires --force.

Examples:
  mb init "London Trip"
  mb init "London Trip" --description="Places to eat and see"
  mb init "Fresh Start" --force`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

var (
	initDescription string
	initForce       bool
)

func init() {
	initCmd.Flags().StringVar(&initDescription, "description", "", "moodboard description")
	initCmd.Flags().BoolVar(&initForce, "force", false, "replace an existing moodboard")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	title := args[0]

	s, err := storage.Open(".")
	if err != nil {
		s, err = storage.Init(".")
		if err != nil {
			return err
		}
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}
	store := newStore(s, cfg)

	if store.Board() != nil && !initForce {
		return fmt.Errorf("a moodboard already exists here (use --force to replace it)")
	}

	m, err := store.CreateBoard(title, initDescription)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Created moodboard %q\n", m.Title)
	return nil
}
