package app

import (
	"github.com/lixenwraith/orchead/ambient"
	"github.com/lixenwraith/orchead/config"
	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/detect"
	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/input"
	"github.com/lixenwraith/orchead/remote"
)

var buttons = map[string]bool{
	input.ButtonSummon: true,
	input.ButtonHorn:   true,
	input.ButtonChaos:  true,
	input.ButtonParty:  true,
}

// press runs a control on the loop goroutine
func (a *App) press(name, source string) {
	if !buttons[name] {
		return
	}
	a.idle.Activity()
	if a.metrics != nil && source != "remote" {
		a.metrics.IncButton(name, source)
	}

	switch name {
	case input.ButtonSummon:
		a.trigger(effect.Summon)
	case input.ButtonHorn:
		a.trigger(effect.Horn)
	case input.ButtonParty:
		a.trigger(effect.Party)
	case input.ButtonChaos:
		on := a.toggleChaos()
		if on {
			a.board.Quote("CHAOS UNLEASHED!")
		} else {
			a.board.Quote("Peace... for now.")
		}
	}
}

func (a *App) toggleChaos() bool {
	var on bool
	if a.paused {
		// Blurred: flip the resume intent instead of starting timers
		a.resumeChaos = !a.resumeChaos
		on = a.resumeChaos
	} else {
		on = a.driver.Toggle()
	}
	a.chaos.Store(on)
	return on
}

// Press queues a control press from another goroutine
func (a *App) Press(name string) bool {
	if !buttons[name] {
		return false
	}
	a.loop.Post(func() { a.press(name, "remote") })
	return true
}

// Motion queues one accelerometer sample from another goroutine
func (a *App) Motion(v detect.Vec3) {
	a.loop.Post(func() {
		a.idle.Activity()
		a.shake.Sample(v)
	})
}

// Stats reports the counters; safe from any goroutine
func (a *App) Stats() remote.Stats {
	return remote.Stats{
		Kills:    a.tracker.Kills(),
		Visitors: a.tracker.Visitors(),
		Chaos:    a.chaos.Load(),
		Muted:    a.muted.Load(),
		Session:  a.session,
	}
}

// Reload re-reads the content file and applies the motion preference, phrases,
// quotes and idle messages; safe from any goroutine
// Milestones keep their compiled state so latches survive a reload
func (a *App) Reload() {
	content, err := config.LoadContent(a.cfg.ContentPath)
	if err == nil {
		err = content.Validate(a.reg)
	}
	a.loop.Post(func() {
		if err != nil {
			a.log.Warn("content reload failed, keeping previous content", "path", a.cfg.ContentPath, "error", err)
			a.board.Notify("The palantír is clouded")
			return
		}
		a.apply(content)
	})
}

func (a *App) apply(content config.Content) {
	a.content = content
	a.driver.SetReducedMotion(content.MotionPreference(a.cfg.ReducedMotion))
	a.phrase = detect.NewPhrase(a.loop, content.PhraseTable(), constants.PhraseTimeout, a.trigger)

	quoting := a.quotes.Running()
	a.quotes.Stop()
	a.quotes = ambient.NewQuotes(a.loop, a.rng, a.board, content.QuotePool())
	if quoting {
		a.quotes.Start()
	}

	idling := !a.paused
	a.idle.Stop()
	a.idle = detect.NewIdle(a.loop, a.rng, constants.IdleTimeout, content.IdlePool(), a.board.Notify)
	if idling {
		a.idle.Start()
	}

	a.log.Info("content reloaded", "path", a.cfg.ContentPath, "reduced_motion", a.driver.ReducedMotion())
}

var _ remote.Controller = (*App)(nil)
