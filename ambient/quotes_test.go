package ambient

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/orchead/effect/effecttest"
	"github.com/lixenwraith/orchead/loop"
)

func TestQuotesTick(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	rec := effecttest.New()
	q := NewQuotes(l, rand.New(rand.NewSource(3)), rec, nil)

	q.Start()
	q.Start()
	if l.Pending() != 1 {
		t.Fatalf("expected one pending quote, got %d", l.Pending())
	}

	l.Advance(14 * time.Second)
	if len(rec.Quotes) != 0 {
		t.Fatal("quote shown before the minimum delay")
	}
	l.Advance(31 * time.Second)
	shown := len(rec.Quotes)
	if shown == 0 {
		t.Fatal("no quote by the maximum delay")
	}

	q.Stop()
	l.Advance(time.Hour)
	if len(rec.Quotes) != shown {
		t.Error("stopped ticker kept quoting")
	}
}

func TestQuotesCustomPool(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	rec := effecttest.New()
	q := NewQuotes(l, rand.New(rand.NewSource(3)), rec, []string{"Nine for Mortal Men"})

	if got := q.ShowRandom(); got != "Nine for Mortal Men" {
		t.Errorf("unexpected quote %q", got)
	}
}
