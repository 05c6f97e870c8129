// lovearcade is a terminal love arcade: four mini-games wrapped in a shared
// points/level/streak progression, playable locally or over SSH.
//
// Usage:
//
//	lovearcade list              - List available games
//	lovearcade play <game>       - Play a single game
//	lovearcade menu              - Full session with the game picker
//	lovearcade serve             - Start SSH server for remote play
//	lovearcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lovearcade/history.db)
//	--name <name>   - Player display name used in messages and records
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/aucoeur/love-arcade/internal/games/canvas"
	_ "github.com/aucoeur/love-arcade/internal/games/memory"
	_ "github.com/aucoeur/love-arcade/internal/games/messages"
	_ "github.com/aucoeur/love-arcade/internal/games/quiz"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagName   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lovearcade",
	Short: "Love Arcade - Romantic mini-games in your terminal",
	Long: `Love Arcade is a terminal mini-game collection for couples: a memory
match, a timed quiz, a love message gallery, and a creative canvas, all
feeding one points/level/streak progression.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker with shared progression
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  lovearcade list
  lovearcade play memory
  lovearcade menu --name "Chérie"
  lovearcade serve --ssh :2222
  lovearcade scores quiz`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lovearcade/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player display name")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
