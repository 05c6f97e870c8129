package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aucoeur/love-arcade/internal/platform/tui"
	"github.com/aucoeur/love-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start a full arcade session in interactive menu mode.

Points, level, streak, and achievements carry across every game you
play in the session. Tab opens the score history.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Score history
  Q            - Quit

Examples:
  lovearcade menu
  lovearcade menu --name "Chérie"
  lovearcade menu --db ./history.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
