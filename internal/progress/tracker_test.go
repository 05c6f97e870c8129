package progress

import (
	"strings"
	"testing"
	"time"
)

var day0 = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestAwardAccumulates(t *testing.T) {
	tr := NewTracker("Mon Amour", day0)

	tr.Award(10, day0)
	tr.Award(25, day0)

	if tr.Points() != 35 {
		t.Errorf("Points = %d, want 35", tr.Points())
	}
}

func TestAwardIgnoresNonPositive(t *testing.T) {
	tr := NewTracker("Mon Amour", day0)
	tr.Award(50, day0)

	tr.Award(0, day0)
	tr.Award(-10, day0)

	if tr.Points() != 50 {
		t.Errorf("Points = %d, want 50 (non-positive deltas must be ignored)", tr.Points())
	}
}

func TestLevelDerivation(t *testing.T) {
	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{950, 10},
	}

	for _, tt := range tests {
		tr := NewTracker("Mon Amour", day0)
		tr.Award(tt.points, day0)
		if tr.Level() != tt.level {
			t.Errorf("Level after %d points = %d, want %d", tt.points, tr.Level(), tt.level)
		}
	}
}

func TestLevelUpFiresExactlyOncePerCrossing(t *testing.T) {
	tr := NewTracker("Mon Amour", day0)

	tr.Award(100, day0) // crosses into level 2
	if got := countLevelToasts(tr); got != 1 {
		t.Fatalf("level toasts after crossing = %d, want 1", got)
	}

	tr.Award(10, day0) // still level 2, must not re-fire
	if got := countLevelToasts(tr); got != 1 {
		t.Errorf("level toasts after non-crossing award = %d, want 1", got)
	}

	tr.Award(90, day0) // crosses into level 3
	if got := countLevelToasts(tr); got != 2 {
		t.Errorf("level toasts after second crossing = %d, want 2", got)
	}
}

func countLevelToasts(tr *Tracker) int {
	n := 0
	for _, a := range tr.Toasts().Items() {
		if strings.HasPrefix(a.Text, "Level ") {
			n++
		}
	}
	return n
}

func TestRecordVisitSameDay(t *testing.T) {
	tr := NewTracker("Mon Amour", day0)

	tr.RecordVisit(day0.Add(5 * time.Hour))

	if tr.Streak() != 0 {
		t.Errorf("Streak = %d, want 0 after same-day visit", tr.Streak())
	}
	if tr.Toasts().Len() != 0 {
		t.Errorf("same-day visit should not push a toast, got %d", tr.Toasts().Len())
	}
}

func TestRecordVisitNextDayIncrements(t *testing.T) {
	tr := NewTracker("Mon Amour", day0)

	tr.RecordVisit(day0.AddDate(0, 0, 1))
	if tr.Streak() != 1 {
		t.Fatalf("Streak = %d, want 1", tr.Streak())
	}

	tr.RecordVisit(day0.AddDate(0, 0, 2))
	if tr.Streak() != 2 {
		t.Errorf("Streak = %d, want 2 after second consecutive day", tr.Streak())
	}
}

func TestRecordVisitGapResets(t *testing.T) {
	tr := NewTracker("Mon Amour", day0)

	tr.RecordVisit(day0.AddDate(0, 0, 1))
	tr.RecordVisit(day0.AddDate(0, 0, 2))
	if tr.Streak() != 2 {
		t.Fatalf("Streak = %d, want 2", tr.Streak())
	}

	// Three-day gap resets to 1.
	tr.RecordVisit(day0.AddDate(0, 0, 5))
	if tr.Streak() != 1 {
		t.Errorf("Streak = %d, want 1 after gap", tr.Streak())
	}
}

func TestLevelProgress(t *testing.T) {
	tr := NewTracker("Mon Amour", day0)
	tr.Award(150, day0)

	if got := tr.LevelProgress(); got != 0.5 {
		t.Errorf("LevelProgress = %v, want 0.5", got)
	}
}
