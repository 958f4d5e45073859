package detect

import (
	"testing"
	"time"

	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/effect/effecttest"
	"github.com/lixenwraith/orchead/loop"
)

func TestHoverGlow(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	rec := effecttest.New()
	d := NewDwell(l, rec, 5*time.Second, 3*time.Second, rec.Notify)

	d.Enter()
	l.Advance(3 * time.Second)
	d.Enter() // Motion within the orc keeps the original countdown
	l.Advance(2 * time.Second)
	if !rec.Has(effect.Focal, effect.ClassPreciousGlow) {
		t.Fatal("no glow after 5s hover")
	}
	if len(rec.Notices) != 0 {
		t.Error("hover should glow silently")
	}

	d.Leave()
	if rec.Has(effect.Focal, effect.ClassPreciousGlow) || d.Glowing() {
		t.Error("glow not removed on leave")
	}
}

func TestLeaveCancelsHover(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	rec := effecttest.New()
	d := NewDwell(l, rec, 5*time.Second, 3*time.Second, nil)

	d.Enter()
	l.Advance(4 * time.Second)
	d.Leave()
	l.Advance(10 * time.Second)
	if rec.Has(effect.Focal, effect.ClassPreciousGlow) {
		t.Error("glow applied after leaving")
	}
}

func TestLongPress(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	rec := effecttest.New()
	d := NewDwell(l, rec, 5*time.Second, 3*time.Second, rec.Notify)

	d.Press()
	l.Advance(3 * time.Second)
	if !d.Glowing() || rec.LastNotice() != "My precious..." {
		t.Fatal("long press did not glow and notify")
	}
	d.Release()
	if rec.Has(effect.Focal, effect.ClassPreciousGlow) {
		t.Error("glow not removed on release")
	}

	d.Press()
	l.Advance(time.Second)
	d.Release()
	l.Advance(5 * time.Second)
	if len(rec.Notices) != 1 {
		t.Error("short press notified")
	}
}
