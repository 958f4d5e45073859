package app

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/detect"
	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/input"
)

// Handle routes one terminal event; loop goroutine
func (a *App) Handle(ev tcell.Event) {
	a.HandleIntent(a.translator.Translate(ev))
}

// HandleIntent fans one intent out to the detectors and controls
func (a *App) HandleIntent(in input.Intent) {
	if in.Activity() {
		a.idle.Activity()
	}

	switch in.Type {
	case input.IntentQuit:
		a.requestQuit()

	case input.IntentToggleMute:
		a.toggleMute()

	case input.IntentResize:
		a.renderer.Resize()
		a.screen.Sync()

	case input.IntentFocus:
		a.focus()

	case input.IntentBlur:
		a.blur()

	case input.IntentKey:
		if in.Code != "" {
			a.keyseq.Key(in.Code)
		}
		if in.Char != 0 {
			a.phrase.Char(in.Char)
		}

	case input.IntentButton:
		a.press(in.Button, "key")

	case input.IntentPointerDown:
		a.pointerDown(in.X, in.Y)

	case input.IntentPointerUp:
		a.pointerUp(in.X, in.Y)

	case input.IntentPointerMove:
		a.hover(in.X, in.Y)
	}
}

func (a *App) pointerDown(x, y int) {
	layout := a.renderer.Layout()
	if name, ok := layout.HitButton(x, y); ok {
		a.press(name, "mouse")
		return
	}

	// Gestures only start on the orc
	a.downOrc = layout.HitOrc(x, y)
	if a.downOrc {
		a.swipe.DownCell(x, y)
		a.dwell.Press()
	}
}

func (a *App) pointerUp(x, y int) {
	wasOrc := a.downOrc
	a.downOrc = false
	if wasOrc {
		a.dwell.Release()
	}
	if !a.swipe.Tracking() {
		return
	}

	dir := a.swipe.UpCell(x, y)
	if dir == detect.NoSwipe && wasOrc && a.renderer.Layout().HitOrc(x, y) {
		a.click()
	}
}

// click is one kill: count it, animate the orc and feed the rate detector
// The random animation goes first so a milestone animation replaces it
func (a *App) click() {
	a.driver.TriggerRandom()
	a.tracker.Increment(context.Background())
	a.rate.Hit()
}

func (a *App) hover(x, y int) {
	on := a.renderer.Layout().HitOrc(x, y)
	switch {
	case on && !a.hovering:
		a.hovering = true
		a.dwell.Enter()
	case !on && a.hovering:
		a.hovering = false
		a.dwell.Leave()
	}
}

// requestQuit leaves at once, except that one quit in five is challenged by
// Isildur and needs confirming within the window
func (a *App) requestQuit() {
	if a.isildur.Pending() {
		a.isildur.Cancel()
		a.Quit()
		return
	}
	if a.rng.Float64() >= constants.IsildurChance {
		a.Quit()
		return
	}
	a.trigger(effect.Isildur)
	a.isildur.Arm(a.loop, constants.IsildurWindow, func() {
		a.board.Notify("The ring stays. So do you.")
	})
}

func (a *App) toggleMute() {
	if a.sound == nil {
		a.board.Notify("No sound device")
		return
	}
	muted := a.sound.ToggleMute()
	a.muted.Store(muted)
	if muted {
		a.board.Notify("Sound muted")
	} else {
		a.board.Notify("Sound on")
	}
}

// blur pauses the ambient timers while nobody is looking
func (a *App) blur() {
	if a.paused {
		return
	}
	a.paused = true
	a.resumeChaos = a.driver.Running()
	a.driver.Stop()
	a.quotes.Stop()
	a.idle.Stop()
	a.log.Debug("focus lost, ambient paused")
}

func (a *App) focus() {
	if !a.paused {
		return
	}
	a.paused = false
	if a.resumeChaos {
		a.driver.Start()
	}
	a.resumeChaos = false
	a.quotes.Start()
	a.idle.Start()
	a.log.Debug("focus regained, ambient resumed")
}
