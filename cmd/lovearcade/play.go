package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aucoeur/love-arcade/internal/core"
	"github.com/aucoeur/love-arcade/internal/games/canvas"
	"github.com/aucoeur/love-arcade/internal/games/memory"
	"github.com/aucoeur/love-arcade/internal/games/messages"
	"github.com/aucoeur/love-arcade/internal/games/quiz"
	"github.com/aucoeur/love-arcade/internal/platform/tui"
	"github.com/aucoeur/love-arcade/internal/registry"
	"github.com/aucoeur/love-arcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game directly, without the menu.

Controls:
  Arrows       - Navigate / move
  Enter        - Confirm / flip / stamp
  1-4          - Difficulty, quiz answer, or message category
  P            - Pause
  R            - Restart (after game over) / rotate canvas element
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Examples:
  lovearcade play memory
  lovearcade play quiz --fps 30
  lovearcade play canvas --config ./my-palette.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game YAML config")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lovearcade list' to see available games.")
		os.Exit(1)
	}

	// Set custom config path before creation
	if flagConfig != "" {
		switch gameID {
		case "memory":
			memory.SetConfigPath(flagConfig)
		case "quiz":
			quiz.SetConfigPath(flagConfig)
		case "messages":
			messages.SetConfigPath(flagConfig)
		case "canvas":
			canvas.SetConfigPath(flagConfig)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig assembles the shared runtime config from terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if flagName != "" {
		cfg.PlayerName = flagName
	}
	return cfg
}
