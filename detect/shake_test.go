package detect

import (
	"testing"
	"time"

	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/loop"
)

func TestShakeThresholdAndCooldown(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	var s sink
	sh := NewShake(l, 15, 3*time.Second, effect.Grond, s.dispatch())

	if sh.Sample(Vec3{X: 1, Y: 9.8, Z: 0}) {
		t.Fatal("gentle first sample fired")
	}
	if !sh.Sample(Vec3{X: 20, Y: 9.8, Z: 0}) {
		t.Fatal("jolt did not fire")
	}

	l.Advance(time.Second)
	if sh.Sample(Vec3{X: -10, Y: 9.8, Z: 0}) {
		t.Error("fired inside cooldown")
	}

	l.Advance(2 * time.Second)
	if !sh.Sample(Vec3{X: 20, Y: 9.8, Z: 0}) {
		t.Error("did not fire after cooldown")
	}
	if len(s.got) != 2 {
		t.Errorf("expected 2 dispatches, got %v", s.got)
	}
}

func TestShakeAlwaysRecordsSample(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	var s sink
	sh := NewShake(l, 15, 3*time.Second, effect.Grond, s.dispatch())

	sh.Sample(Vec3{Z: 30}) // Fires against the resting zero vector
	l.Advance(time.Second)
	sh.Sample(Vec3{Z: 0}) // Suppressed by cooldown but still recorded
	l.Advance(5 * time.Second)

	// Delta from the recorded sample is small, so no fire
	if sh.Sample(Vec3{Z: 5}) {
		t.Error("compared against a stale sample")
	}
	if len(s.got) != 1 {
		t.Errorf("expected 1 dispatch, got %v", s.got)
	}
}
