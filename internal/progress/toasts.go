package progress

import (
	"time"

	"github.com/google/uuid"
)

// Toast retention limits.
const (
	MaxToasts = 5
	ToastTTL  = 5 * time.Second
)

// Achievement is a transient award notification. It expires ToastTTL
// after creation and is identified by a unique ID so removal is keyed
// to the achievement itself, never to its list position.
type Achievement struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// Toasts is the bounded queue of recent achievements, newest first.
// There are no timers inside: the owner calls Expire with the current
// time on every tick, so a discarded queue can never fire late.
type Toasts struct {
	items []Achievement
}

// NewToasts creates an empty toast queue.
func NewToasts() *Toasts {
	return &Toasts{}
}

// Push prepends a new achievement and truncates the queue to MaxToasts,
// dropping the oldest entries.
func (q *Toasts) Push(text string, now time.Time) Achievement {
	a := Achievement{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: now,
	}

	q.items = append([]Achievement{a}, q.items...)
	if len(q.items) > MaxToasts {
		q.items = q.items[:MaxToasts]
	}
	return a
}

// Expire drops every achievement older than ToastTTL as of now.
func (q *Toasts) Expire(now time.Time) {
	kept := q.items[:0]
	for _, a := range q.items {
		if now.Sub(a.CreatedAt) < ToastTTL {
			kept = append(kept, a)
		}
	}
	q.items = kept
}

// Items returns the live achievements, newest first.
func (q *Toasts) Items() []Achievement {
	return q.items
}

// Len returns the number of live achievements.
func (q *Toasts) Len() int {
	return len(q.items)
}
