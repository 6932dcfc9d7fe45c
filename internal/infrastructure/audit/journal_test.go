package audit

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "audit.db"), "audit")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestAppendAndRecent(t *testing.T) {
	j := openTestJournal(t)
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		event := Event{
			Kind:    EventCompletionSubmitted,
			ActorID: "nurse-1",
			At:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := j.Append(event); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := j.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if !events[0].At.After(events[1].At) {
		t.Fatalf("recent should be newest first: %v then %v", events[0].At, events[1].At)
	}

	size, err := j.Size()
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != 3 {
		t.Fatalf("size = %d, want 3", size)
	}
}

func TestCleanupRemovesOnlyAgedEvents(t *testing.T) {
	j := openTestJournal(t)
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fresh := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	if err := j.Append(Event{Kind: EventQueryStatusChanged, At: old}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := j.Append(Event{Kind: EventQueryStatusChanged, At: fresh}); err != nil {
		t.Fatalf("append: %v", err)
	}

	removed, err := j.Cleanup(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	size, err := j.Size()
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != 1 {
		t.Fatalf("size = %d, want 1", size)
	}
}
