// Package app wires the detectors, tracker, effects and renderer around one event loop
package app

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orchead/ambient"
	"github.com/lixenwraith/orchead/config"
	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/core"
	"github.com/lixenwraith/orchead/detect"
	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/input"
	"github.com/lixenwraith/orchead/loop"
	"github.com/lixenwraith/orchead/metrics"
	"github.com/lixenwraith/orchead/notice"
	"github.com/lixenwraith/orchead/schedule"
	"github.com/lixenwraith/orchead/stage"
	"github.com/lixenwraith/orchead/tally"
)

// Sound is the audio collaborator; *audio.SoundManager satisfies it
type Sound interface {
	effect.Sounder
	ToggleMute() bool
	SetMuted(muted bool)
	Muted() bool
}

// Options carries the collaborators built by the caller
type Options struct {
	Config  config.Config
	Content config.Content

	Screen  tcell.Screen
	Store   tally.Counters
	Flags   tally.SessionFlags
	Sound   Sound            // nil runs silent
	Metrics *metrics.Metrics // nil disables
	Log     *slog.Logger

	// Loop and Rand default to a wall-clock loop and a time-seeded source
	Loop *loop.Loop
	Rand *rand.Rand

	SessionID string
}

// App is the running orc head
// Everything below is owned by the loop goroutine unless noted
type App struct {
	cfg     config.Config
	content config.Content
	log     *slog.Logger
	loop    *loop.Loop
	rng     *rand.Rand
	screen  tcell.Screen
	sound   Sound
	metrics *metrics.Metrics
	flags   tally.SessionFlags
	session string
	reg     *effect.Registry

	surface  *stage.Surface
	board    *notice.Board
	renderer *stage.Renderer
	exec     *effect.Executor
	driver   *ambient.Driver
	quotes   *ambient.Quotes
	tracker  *tally.Tracker

	keyseq *detect.KeySequence
	phrase *detect.Phrase
	swipe  *detect.Swipe
	shake  *detect.Shake
	rate   *detect.Rate
	idle   *detect.Idle
	dwell  *detect.Dwell

	translator *input.Translator

	frame       schedule.Slot
	isildur     schedule.Slot
	hovering    bool
	downOrc     bool
	paused      bool // Blurred; ambient timers stopped
	resumeChaos bool // Driver was running when focus was lost

	// Mirrors read from other goroutines
	chaos atomic.Bool
	muted atomic.Bool

	quit chan struct{}
	done atomic.Bool
}

// New builds every component; nothing runs until Run
func New(ctx context.Context, opts Options) (*App, error) {
	if opts.Screen == nil {
		return nil, errors.New("app: no screen")
	}
	if opts.Store == nil || opts.Flags == nil {
		return nil, errors.New("app: no storage")
	}

	a := &App{
		cfg:        opts.Config,
		content:    opts.Content,
		log:        opts.Log,
		loop:       opts.Loop,
		rng:        opts.Rand,
		screen:     opts.Screen,
		sound:      opts.Sound,
		metrics:    opts.Metrics,
		flags:      opts.Flags,
		session:    opts.SessionID,
		translator: input.NewTranslator(nil),
		quit:       make(chan struct{}),
	}
	if a.log == nil {
		a.log = slog.New(slog.DiscardHandler)
	}
	if a.loop == nil {
		a.loop = loop.New()
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	reg, err := effect.NewRegistry(effect.Catalog()...)
	if err != nil {
		return nil, err
	}
	if err := a.content.Validate(reg); err != nil {
		return nil, err
	}
	a.reg = reg
	milestones, err := tally.Compile(a.content.Rules(), reg)
	if err != nil {
		return nil, err
	}

	reduced := a.content.MotionPreference(a.cfg.ReducedMotion)

	a.surface = stage.NewSurface(a.rng, a.loop.Now)
	a.board = notice.NewBoard(a.loop)
	a.renderer = stage.NewRenderer(a.screen, a.surface, a.board)
	a.driver = ambient.NewDriver(a.loop, a.rng, a.surface, reduced, a.log)

	env := effect.Env{Surface: a.surface, Messages: a.board, Animator: a.driver}
	if a.sound != nil {
		env.Sound = a.sound
		if a.cfg.Mute {
			a.sound.SetMuted(true)
		}
		a.muted.Store(a.sound.Muted())
	}
	a.exec = effect.NewExecutor(a.loop, reg, env, a.log)
	a.exec.Observe(a.observe)

	a.quotes = ambient.NewQuotes(a.loop, a.rng, a.board, a.content.QuotePool())
	a.tracker = tally.NewTracker(ctx, opts.Store, milestones, a.trigger, a.log)
	if a.metrics != nil {
		a.tracker.OnChange(a.metrics.SetCounts)
	}

	dispatch := detect.Dispatch(a.trigger)
	a.keyseq = detect.NewKeySequence(detect.Konami, effect.HelmsDeep, dispatch)
	a.phrase = detect.NewPhrase(a.loop, a.content.PhraseTable(), constants.PhraseTimeout, dispatch)
	a.swipe = detect.NewSwipe(constants.SwipeThreshold, constants.CellWidthUnits, constants.CellHeightUnits, dispatch)
	a.shake = detect.NewShake(a.loop, constants.ShakeThreshold, constants.ShakeCooldown, effect.Grond, dispatch)
	a.rate = detect.NewRate(a.loop, constants.RateWindow, constants.RateThreshold, effect.Frenzy, dispatch)
	a.idle = detect.NewIdle(a.loop, a.rng, constants.IdleTimeout, a.content.IdlePool(), a.board.Notify)
	a.dwell = detect.NewDwell(a.loop, a.surface, constants.HoverDwell, constants.PressDwell, a.board.Notify)

	return a, nil
}

// Run starts the components and drives the loop until ctx ends or the user quits
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.EnableFocus()
	a.screen.HideCursor()

	a.loop.Post(func() { a.Start(ctx) })

	// tcell delivers events on its own goroutine; hand each to the loop
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			a.loop.Post(func() { a.Handle(ev) })
		}
	})

	go func() {
		select {
		case <-a.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := a.runLoop(ctx)
	a.shutdown()

	if a.done.Load() || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) runLoop(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	return a.loop.Run(ctx)
}

// Start counts the session and starts the timers
// Loop goroutine; separate from Run so tests can drive a manual loop
func (a *App) Start(ctx context.Context) {
	if a.tracker.CountSession(ctx, a.flags) {
		a.log.Info("new session counted", "session", a.session, "visitors", a.tracker.Visitors())
	}
	if a.cfg.Chaos {
		a.driver.Start()
	}
	a.chaos.Store(a.driver.Running())
	a.quotes.Start()
	a.idle.Start()
	a.drawFrame()

	a.log.Info("the orc head rises",
		"kills", a.tracker.Kills(),
		"visitors", a.tracker.Visitors(),
		"chaos", a.driver.Running(),
		"reduced_motion", a.driver.ReducedMotion(),
	)
}

// Quit ends Run; safe from any goroutine
func (a *App) Quit() {
	if a.done.CompareAndSwap(false, true) {
		close(a.quit)
	}
}

// Done is closed once Quit has been called
func (a *App) Done() <-chan struct{} { return a.quit }

func (a *App) shutdown() {
	a.driver.Stop()
	a.quotes.Stop()
	a.idle.Stop()
	a.frame.Cancel()
	if a.sound != nil {
		a.sound.Stop(effect.SoundParty)
	}
	a.log.Info("the orc head rests", "kills", a.tracker.Kills())
}

// trigger is the single dispatch point for every detector, milestone and button
func (a *App) trigger(id effect.ID) {
	a.exec.Trigger(id)
}

func (a *App) observe(id effect.ID, kind effect.Kind) {
	a.log.Debug("effect triggered", "effect", string(id), "kind", kind.String())
	if a.metrics != nil {
		a.metrics.IncEffect(string(id))
	}
}

func (a *App) drawFrame() {
	a.renderer.Draw(a.loop.Now(), a.hud())
	a.frame.Arm(a.loop, constants.FrameInterval, a.drawFrame)
}

func (a *App) hud() stage.HUD {
	return stage.HUD{
		Kills:    tally.FormatKills(a.tracker.Kills()),
		Visitors: tally.FormatVisitors(a.tracker.Visitors()),
		Chaos:    a.chaosOn(),
		Muted:    a.muted.Load(),
	}
}

// chaosOn reports the chaos setting, counting a driver paused by blur as on
func (a *App) chaosOn() bool {
	return a.driver.Running() || (a.paused && a.resumeChaos)
}
