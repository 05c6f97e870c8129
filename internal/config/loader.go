package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validatable is satisfied by every config type in this package.
type validatable interface {
	Validate() error
}

// load fills out from the first source that parses and validates.
// Search order: customPath -> ~/.lovearcade/configs/<name> -> ./configs/<name> -> embedded default.
// A custom path that fails is an error; the fallback chain is best-effort.
func load(customPath, filename string, embedded []byte, out validatable) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := out.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil && out.Validate() == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil && out.Validate() == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("failed to parse embedded default %s: %w", filename, err)
	}
	return out.Validate()
}

// LoadMemory loads the memory game difficulty tiers.
func LoadMemory(customPath string) (MemoryConfig, error) {
	var cfg MemoryConfig
	err := load(customPath, "memory.yaml", defaultMemoryYAML, &cfg)
	return cfg, err
}

// LoadQuiz loads both quiz question sets.
func LoadQuiz(customPath string) (QuizConfig, error) {
	var cfg QuizConfig
	err := load(customPath, "quiz.yaml", defaultQuizYAML, &cfg)
	return cfg, err
}

// LoadMessages loads the built-in message categories.
func LoadMessages(customPath string) (MessagesConfig, error) {
	var cfg MessagesConfig
	err := load(customPath, "messages.yaml", defaultMessagesYAML, &cfg)
	return cfg, err
}

// LoadCanvas loads the canvas emoji and color palettes.
func LoadCanvas(customPath string) (CanvasConfig, error) {
	var cfg CanvasConfig
	err := load(customPath, "canvas.yaml", defaultCanvasYAML, &cfg)
	return cfg, err
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lovearcade", "configs", filename)
}
