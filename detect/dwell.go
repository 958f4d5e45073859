package detect

import (
	"time"

	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/loop"
	"github.com/lixenwraith/orchead/schedule"
)

// Dwell lights the precious glow when the pointer rests on the orc (hover)
// or a button is held down on it (press)
type Dwell struct {
	l        *loop.Loop
	surface  effect.Surface
	notify   func(string)
	hover    time.Duration
	press    time.Duration
	hoverArm schedule.Slot
	pressArm schedule.Slot

	over    bool
	holding bool
	glowing bool
}

// NewDwell creates a dwell matcher; notify may be nil
func NewDwell(l *loop.Loop, surface effect.Surface, hover, press time.Duration, notify func(string)) *Dwell {
	return &Dwell{l: l, surface: surface, hover: hover, press: press, notify: notify}
}

// Enter marks the pointer as over the orc; repeated calls keep the first countdown
func (d *Dwell) Enter() {
	if d.over {
		return
	}
	d.over = true
	d.hoverArm.Arm(d.l, d.hover, d.glow)
}

// Leave cancels any hover countdown and removes the glow
func (d *Dwell) Leave() {
	if !d.over {
		return
	}
	d.over = false
	d.hoverArm.Cancel()
	d.dim()
}

// Press starts the long-press countdown
func (d *Dwell) Press() {
	if d.holding {
		return
	}
	d.holding = true
	d.pressArm.Arm(d.l, d.press, func() {
		d.glow()
		if d.notify != nil {
			d.notify("My precious...")
		}
	})
}

// Release cancels the long-press countdown and removes the glow
func (d *Dwell) Release() {
	if !d.holding {
		return
	}
	d.holding = false
	d.pressArm.Cancel()
	d.dim()
}

// Glowing reports whether the glow is applied
func (d *Dwell) Glowing() bool { return d.glowing }

func (d *Dwell) glow() {
	d.glowing = true
	if d.surface != nil {
		d.surface.AddClass(effect.Focal, effect.ClassPreciousGlow)
	}
}

func (d *Dwell) dim() {
	d.glowing = false
	if d.surface != nil {
		d.surface.RemoveClass(effect.Focal, effect.ClassPreciousGlow)
	}
}
