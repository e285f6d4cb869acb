package ui

import "testing"

func TestTruncateShortValueUnchanged(t *testing.T) {
	if got := truncate("main.next", 40); got != "main.next" {
		t.Fatalf("got %q", got)
	}
}

func TestTruncateLongValueEllipsizes(t *testing.T) {
	got := truncate("a/very/long/path/to/some/source/file.next", 10)
	if len(got) > 10 {
		t.Fatalf("got %q, longer than width 10", got)
	}
}

func TestApplyTracksIndexedFile(t *testing.T) {
	m := NewProgressModel("build", []string{"a.next", "b.next"}, nil).(*progressModel)
	m.apply(Event{File: "a.next", Status: StatusDone})
	if m.items[0].status != StatusDone {
		t.Fatalf("got %v, want done", m.items[0].status)
	}
	if m.items[1].status != StatusQueued {
		t.Fatalf("got %v, want queued (untouched)", m.items[1].status)
	}
}

func TestApplyIgnoresUnknownFile(t *testing.T) {
	m := NewProgressModel("build", []string{"a.next"}, nil).(*progressModel)
	m.apply(Event{File: "nonexistent.next", Status: StatusDone})
	if m.items[0].status != StatusQueued {
		t.Fatal("expected unknown file to leave existing items untouched")
	}
}
