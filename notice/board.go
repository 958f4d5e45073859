// Package notice holds the two transient text surfaces: the notification
// line and the quote overlay
package notice

import (
	"sync"

	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/loop"
	"github.com/lixenwraith/orchead/schedule"
)

// Phase is the visibility stage of the notification line
type Phase uint8

const (
	Hidden Phase = iota
	Visible
	Fading
)

func (p Phase) String() string {
	switch p {
	case Visible:
		return "visible"
	case Fading:
		return "fading"
	default:
		return "hidden"
	}
}

// Board shows one notification and one quote at a time
// Mutations happen on the loop goroutine; reads are safe from the renderer
type Board struct {
	loop *loop.Loop

	mu        sync.RWMutex
	note      string
	notePhase Phase
	quote     string
	quoteOn   bool
	shown     int

	noteSlot  schedule.Slot
	quoteSlot schedule.Slot
}

// NewBoard creates an empty board
func NewBoard(l *loop.Loop) *Board {
	return &Board{loop: l}
}

// Notify replaces the current notification with text
// The message stays visible, fades, then disappears
func (b *Board) Notify(text string) {
	b.mu.Lock()
	b.note = text
	b.notePhase = Visible
	b.shown++
	b.mu.Unlock()

	b.noteSlot.Arm(b.loop, constants.NotificationDuration, func() {
		b.setPhase(Fading)
		b.noteSlot.Arm(b.loop, constants.NotificationFade, func() {
			b.mu.Lock()
			b.note = ""
			b.notePhase = Hidden
			b.mu.Unlock()
		})
	})
}

// Quote shows text on the quote overlay, hiding it after the quote duration
// A newer quote owns the hide timer, so an earlier one never hides it early
func (b *Board) Quote(text string) {
	b.mu.Lock()
	b.quote = text
	b.quoteOn = true
	b.mu.Unlock()

	b.quoteSlot.Arm(b.loop, constants.QuoteDuration, func() {
		b.mu.Lock()
		b.quoteOn = false
		b.mu.Unlock()
	})
}

func (b *Board) setPhase(p Phase) {
	b.mu.Lock()
	b.notePhase = p
	b.mu.Unlock()
}

// Notification returns the current notification and its phase
func (b *Board) Notification() (string, Phase) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.note, b.notePhase
}

// CurrentQuote returns the overlay text and whether it is visible
func (b *Board) CurrentQuote() (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.quote, b.quoteOn
}

// Shown returns the number of notifications displayed so far
func (b *Board) Shown() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.shown
}
