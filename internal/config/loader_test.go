package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsAreValid(t *testing.T) {
	if _, err := LoadMemory(""); err != nil {
		t.Errorf("LoadMemory default: %v", err)
	}
	if _, err := LoadQuiz(""); err != nil {
		t.Errorf("LoadQuiz default: %v", err)
	}
	if _, err := LoadMessages(""); err != nil {
		t.Errorf("LoadMessages default: %v", err)
	}
	if _, err := LoadCanvas(""); err != nil {
		t.Errorf("LoadCanvas default: %v", err)
	}
}

func TestDefaultMemoryTiers(t *testing.T) {
	cfg, err := LoadMemory("")
	if err != nil {
		t.Fatalf("LoadMemory: %v", err)
	}

	tests := []struct {
		name   string
		tier   MemoryTier
		pairs  int
		points int
	}{
		{"easy", cfg.Easy, 6, 10},
		{"medium", cfg.Medium, 8, 15},
		{"hard", cfg.Hard, 10, 20},
	}

	for _, tt := range tests {
		if tt.tier.Pairs != tt.pairs {
			t.Errorf("%s pairs = %d, want %d", tt.name, tt.tier.Pairs, tt.pairs)
		}
		if tt.tier.Points != tt.points {
			t.Errorf("%s points = %d, want %d", tt.name, tt.tier.Points, tt.points)
		}
		if len(tt.tier.Symbols) != tt.pairs {
			t.Errorf("%s has %d symbols, want %d", tt.name, len(tt.tier.Symbols), tt.pairs)
		}
	}
}

func TestDefaultQuizSets(t *testing.T) {
	cfg, err := LoadQuiz("")
	if err != nil {
		t.Fatalf("LoadQuiz: %v", err)
	}

	if len(cfg.Romantic) != 5 {
		t.Errorf("romantic set has %d questions, want 5", len(cfg.Romantic))
	}
	if len(cfg.Fun) != 5 {
		t.Errorf("fun set has %d questions, want 5", len(cfg.Fun))
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memory.yaml")

	custom := `
easy:
  pairs: 2
  points: 5
  symbols: ["A", "B"]
medium:
  pairs: 2
  points: 7
  symbols: ["C", "D"]
hard:
  pairs: 2
  points: 9
  symbols: ["E", "F"]
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMemory(path)
	if err != nil {
		t.Fatalf("LoadMemory(%s): %v", path, err)
	}
	if cfg.Easy.Pairs != 2 || cfg.Easy.Points != 5 {
		t.Errorf("custom easy tier = %+v", cfg.Easy)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := LoadQuiz(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.yaml")

	// Three options instead of four must be rejected.
	bad := `
romantic:
  - prompt: "?"
    options: ["a", "b", "c"]
    correct: 0
    feedback: "!"
fun:
  - prompt: "?"
    options: ["a", "b", "c", "d"]
    correct: 0
    feedback: "!"
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadQuiz(path); err == nil {
		t.Error("expected validation error for 3-option question")
	}
}
