package notice

import (
	"testing"
	"time"

	"github.com/lixenwraith/orchead/loop"
)

func TestNotificationLifecycle(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	b := NewBoard(l)

	b.Notify("My precious...")
	if text, phase := b.Notification(); text != "My precious..." || phase != Visible {
		t.Fatalf("got %q/%v, want visible message", text, phase)
	}

	l.Advance(2500 * time.Millisecond)
	if _, phase := b.Notification(); phase != Fading {
		t.Errorf("expected fading at 2500ms, got %v", phase)
	}

	l.Advance(500 * time.Millisecond)
	if text, phase := b.Notification(); text != "" || phase != Hidden {
		t.Errorf("expected hidden at 3000ms, got %q/%v", text, phase)
	}
	if l.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", l.Pending())
	}
}

func TestNotificationReplacesPrevious(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	b := NewBoard(l)

	b.Notify("first")
	l.Advance(2 * time.Second)
	b.Notify("second")

	// The first message's timers must not touch the second
	l.Advance(time.Second)
	if text, phase := b.Notification(); text != "second" || phase != Visible {
		t.Fatalf("got %q/%v, want second still visible", text, phase)
	}
	if l.Pending() != 1 {
		t.Errorf("expected a single notification timer, got %d", l.Pending())
	}
	if b.Shown() != 2 {
		t.Errorf("expected 2 shown, got %d", b.Shown())
	}
}

func TestQuoteHideOwnedByLatest(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	b := NewBoard(l)

	b.Quote("Fly, you fools!")
	l.Advance(2 * time.Second)
	b.Quote("For Frodo.")

	l.Advance(1500 * time.Millisecond)
	if text, on := b.CurrentQuote(); !on || text != "For Frodo." {
		t.Fatalf("newer quote hidden early: %q/%v", text, on)
	}

	l.Advance(1500 * time.Millisecond)
	if _, on := b.CurrentQuote(); on {
		t.Error("quote still visible after its duration")
	}
}
