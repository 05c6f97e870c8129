// Package progress implements the shared progression layer: the player
// profile (points, level, daily streak) and the transient achievement
// toast queue. All methods take explicit timestamps so the engine never
// reads the wall clock itself; the platform passes time.Now() per tick.
package progress

import (
	"fmt"
	"time"
)

// PointsPerLevel is how many points each level spans.
const PointsPerLevel = 100

// Tracker is the single source of truth for the player profile.
// It is owned by the shell; games report point deltas through events
// and never mutate the tracker directly.
type Tracker struct {
	name      string
	points    int
	level     int
	streak    int
	lastVisit time.Time // only the calendar date is meaningful
	toasts    *Toasts
}

// NewTracker creates a tracker for the named player.
// The creation time counts as the first visit, so a RecordVisit on the
// same day is a no-op.
func NewTracker(name string, now time.Time) *Tracker {
	return &Tracker{
		name:      name,
		level:     1,
		lastVisit: now,
		toasts:    NewToasts(),
	}
}

// Name returns the player display name.
func (t *Tracker) Name() string { return t.name }

// Points returns the running point total. Never negative.
func (t *Tracker) Points() int { return t.points }

// Level returns the current level, derived from points. Never decreases.
func (t *Tracker) Level() int { return t.level }

// Streak returns the count of consecutive daily visits.
func (t *Tracker) Streak() int { return t.streak }

// Toasts returns the achievement toast queue.
func (t *Tracker) Toasts() *Toasts { return t.toasts }

// LevelProgress returns how far into the current level the player is,
// as a fraction in [0, 1].
func (t *Tracker) LevelProgress() float64 {
	return float64(t.points%PointsPerLevel) / float64(PointsPerLevel)
}

// Award adds points to the running total and recomputes the level.
// Negative deltas are ignored: points never decrease. A level-up toast
// fires only when the new level strictly exceeds the stored level, so
// recomputation at an already-crossed threshold never re-fires.
func (t *Tracker) Award(points int, now time.Time) {
	if points <= 0 {
		return
	}
	t.points += points

	newLevel := t.points/PointsPerLevel + 1
	if newLevel > t.level {
		t.level = newLevel
		t.toasts.Push(fmt.Sprintf("Level %d reached! 🎉", newLevel), now)
	}
}

// RecordVisit updates the daily streak based on the calendar date of now:
// same day as the last visit leaves the streak unchanged; exactly one day
// later increments it; any other gap (including the first visit after a
// break) resets it to 1. Each transition pushes an achievement toast.
func (t *Tracker) RecordVisit(now time.Time) {
	today := dateOf(now)
	last := dateOf(t.lastVisit)

	if today.Equal(last) {
		return
	}

	if today.Equal(last.AddDate(0, 0, 1)) {
		t.streak++
		suffix := ""
		if t.streak > 1 {
			suffix = "s"
		}
		t.toasts.Push(fmt.Sprintf("%d consecutive day%s! 🔥", t.streak, suffix), now)
	} else {
		t.streak = 1
		t.toasts.Push("Welcome back! Streak reset to 1 day 🌟", now)
	}

	t.lastVisit = now
}

// dateOf truncates a timestamp to its calendar date in its own location.
func dateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
