// Package config provides YAML-based content and configuration loading
// for the arcade. Question sets, message categories, memory difficulty
// tiers and the canvas palette are all data, not code, so they can be
// overridden per user without rebuilding.
package config

import "fmt"

// MemoryTier defines one difficulty tier of the memory game.
type MemoryTier struct {
	Pairs   int      `yaml:"pairs"`
	Symbols []string `yaml:"symbols"`
	Points  int      `yaml:"points"` // Award per matched pair
}

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Easy   MemoryTier `yaml:"easy"`
	Medium MemoryTier `yaml:"medium"`
	Hard   MemoryTier `yaml:"hard"`
}

// Validate checks that every tier has enough symbols for its pair count.
func (c MemoryConfig) Validate() error {
	for name, tier := range map[string]MemoryTier{"easy": c.Easy, "medium": c.Medium, "hard": c.Hard} {
		if tier.Pairs <= 0 {
			return fmt.Errorf("memory config: tier %s has no pairs", name)
		}
		if len(tier.Symbols) < tier.Pairs {
			return fmt.Errorf("memory config: tier %s has %d symbols for %d pairs",
				name, len(tier.Symbols), tier.Pairs)
		}
	}
	return nil
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Prompt   string   `yaml:"prompt"`
	Options  []string `yaml:"options"`
	Correct  int      `yaml:"correct"` // Index into Options
	Feedback string   `yaml:"feedback"`
}

// QuizConfig contains both question sets.
type QuizConfig struct {
	Romantic []QuizQuestion `yaml:"romantic"`
	Fun      []QuizQuestion `yaml:"fun"`
}

// Validate checks that every question has exactly four options and a
// correct index in range.
func (c QuizConfig) Validate() error {
	for setName, set := range map[string][]QuizQuestion{"romantic": c.Romantic, "fun": c.Fun} {
		if len(set) == 0 {
			return fmt.Errorf("quiz config: set %s is empty", setName)
		}
		for i, q := range set {
			if len(q.Options) != 4 {
				return fmt.Errorf("quiz config: %s question %d has %d options, want 4",
					setName, i, len(q.Options))
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return fmt.Errorf("quiz config: %s question %d correct index %d out of range",
					setName, i, q.Correct)
			}
		}
	}
	return nil
}

// MessagesConfig contains the built-in message lists per category.
// Messages may contain a {name} placeholder expanded at display time.
type MessagesConfig struct {
	Morning  []string `yaml:"morning"`
	Romantic []string `yaml:"romantic"`
	Evening  []string `yaml:"evening"`
	Funny    []string `yaml:"funny"`
}

// Validate checks that no category is empty.
func (c MessagesConfig) Validate() error {
	for name, list := range map[string][]string{
		"morning": c.Morning, "romantic": c.Romantic,
		"evening": c.Evening, "funny": c.Funny,
	} {
		if len(list) == 0 {
			return fmt.Errorf("messages config: category %s is empty", name)
		}
	}
	return nil
}

// CanvasConfig contains the emoji palette and text color choices for the
// creative canvas.
type CanvasConfig struct {
	Emojis []string `yaml:"emojis"`
	Colors []string `yaml:"colors"` // Hex strings, e.g. "#FF69B4"
}

// Validate checks that the palettes are non-empty.
func (c CanvasConfig) Validate() error {
	if len(c.Emojis) == 0 {
		return fmt.Errorf("canvas config: emoji palette is empty")
	}
	if len(c.Colors) == 0 {
		return fmt.Errorf("canvas config: color palette is empty")
	}
	return nil
}
