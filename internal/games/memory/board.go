package memory

import (
	"math/rand"

	"github.com/aucoeur/love-arcade/internal/config"
)

// Difficulty selects a board-size/scoring tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Card is a single board position. The ID is its stable index for the
// session; Matched flips to true permanently once its pair is found.
type Card struct {
	ID      int
	Symbol  string
	Matched bool
}

// tierFor returns the config tier for a difficulty.
func tierFor(cfg config.MemoryConfig, d Difficulty) config.MemoryTier {
	switch d {
	case DifficultyMedium:
		return cfg.Medium
	case DifficultyHard:
		return cfg.Hard
	default:
		return cfg.Easy
	}
}

// columnsFor returns the grid column count used for cursor navigation
// and rendering.
func columnsFor(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return 4
	case DifficultyHard:
		return 5
	default:
		return 4
	}
}

// buildBoard creates a shuffled board of pairs*2 cards: two copies of the
// tier's first `pairs` symbols, uniformly shuffled with the given RNG.
func buildBoard(tier config.MemoryTier, rng *rand.Rand) []Card {
	symbols := tier.Symbols[:tier.Pairs]

	cards := make([]Card, 0, tier.Pairs*2)
	for _, s := range symbols {
		cards = append(cards, Card{Symbol: s}, Card{Symbol: s})
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	// IDs are board positions, assigned after the shuffle.
	for i := range cards {
		cards[i].ID = i
	}
	return cards
}
