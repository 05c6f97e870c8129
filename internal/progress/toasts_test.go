package progress

import (
	"fmt"
	"testing"
	"time"
)

func TestToastsNewestFirst(t *testing.T) {
	q := NewToasts()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	q.Push("first", now)
	q.Push("second", now.Add(time.Second))

	items := q.Items()
	if len(items) != 2 {
		t.Fatalf("Len = %d, want 2", len(items))
	}
	if items[0].Text != "second" || items[1].Text != "first" {
		t.Errorf("order = [%s, %s], want newest first", items[0].Text, items[1].Text)
	}
}

func TestToastsTruncateToMax(t *testing.T) {
	q := NewToasts()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < MaxToasts+3; i++ {
		q.Push(fmt.Sprintf("toast %d", i), now)
	}

	if q.Len() != MaxToasts {
		t.Fatalf("Len = %d, want %d", q.Len(), MaxToasts)
	}
	// Oldest dropped first: the newest push must survive.
	if q.Items()[0].Text != fmt.Sprintf("toast %d", MaxToasts+2) {
		t.Errorf("newest toast = %q", q.Items()[0].Text)
	}
}

func TestToastsExpire(t *testing.T) {
	q := NewToasts()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	q.Push("old", now)
	q.Push("fresh", now.Add(3*time.Second))

	q.Expire(now.Add(ToastTTL))

	if q.Len() != 1 {
		t.Fatalf("Len after expire = %d, want 1", q.Len())
	}
	if q.Items()[0].Text != "fresh" {
		t.Errorf("surviving toast = %q, want \"fresh\"", q.Items()[0].Text)
	}
}

func TestToastsUniqueIDs(t *testing.T) {
	q := NewToasts()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := q.Push("one", now)
	b := q.Push("two", now)

	if a.ID == b.ID || a.ID == "" {
		t.Errorf("expected unique non-empty IDs, got %q and %q", a.ID, b.ID)
	}
}
