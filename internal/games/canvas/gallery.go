package canvas

import (
	"time"

	"github.com/google/uuid"
)

// MaxCreations is how many saved snapshots are retained, oldest dropped.
const MaxCreations = 10

// Creation is an immutable saved copy of the canvas.
type Creation struct {
	ID        uuid.UUID
	Title     string
	CreatedAt time.Time
	Elements  []Element
	Count     int
}

// snapshot deep-copies the element list into a new Creation.
func snapshot(elements []Element, now time.Time) Creation {
	copied := make([]Element, len(elements))
	copy(copied, elements)

	return Creation{
		ID:        uuid.New(),
		Title:     "Creation of " + now.Format("Jan 2"),
		CreatedAt: now,
		Elements:  copied,
		Count:     len(copied),
	}
}

// retain prepends the newest creation and drops beyond the cap.
func retain(gallery []Creation, c Creation) []Creation {
	gallery = append([]Creation{c}, gallery...)
	if len(gallery) > MaxCreations {
		gallery = gallery[:MaxCreations]
	}
	return gallery
}
