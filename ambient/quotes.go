package ambient

import (
	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/loop"
	"github.com/lixenwraith/orchead/schedule"
)

// DefaultQuotes is the built-in quote pool
var DefaultQuotes = []string{
	"LOOKS LIKE MEAT'S BACK ON THE MENU, BOYS!",
	"They're taking the hobbits to Isengard!",
	"PO-TA-TOES! Boil 'em, mash 'em, stick 'em in a stew!",
	"GROND! GROND! GROND!",
	"One does not simply walk into Mordor.",
	"That still only counts as one!",
	"Nobody tosses a dwarf!",
	"Keep it secret. Keep it safe.",
	"YOU SHALL NOT PASS!",
	"What about second breakfast?",
	"The beacons are lit! Gondor calls for aid!",
	"A wizard is never late, nor is he early.",
	"DEATH!",
	"I would have followed you, my brother. My captain. My king.",
	"For Frodo.",
	"My precious...",
	"Fly, you fools!",
	"The age of men is over. The time of the orc has come.",
}

// Quoter is the overlay the ticker writes to
type Quoter interface {
	Quote(text string)
}

// Quotes shows a random quote every [15s, 45s) while running
type Quotes struct {
	out    Quoter
	rng    schedule.Rand
	pool   []string
	ticker *schedule.RandomLoop
}

// NewQuotes creates a stopped ticker; an empty pool falls back to DefaultQuotes
func NewQuotes(l *loop.Loop, rng schedule.Rand, out Quoter, pool []string) *Quotes {
	if len(pool) == 0 {
		pool = DefaultQuotes
	}
	q := &Quotes{out: out, rng: rng, pool: pool}
	q.ticker = schedule.NewRandomLoop(l, rng, constants.QuoteMinDelay, constants.QuoteMaxDelay, func() {
		q.ShowRandom()
	})
	return q
}

func (q *Quotes) Start()        { q.ticker.Start() }
func (q *Quotes) Stop()         { q.ticker.Stop() }
func (q *Quotes) Running() bool { return q.ticker.Running() }

// ShowRandom puts a random quote on the overlay and returns it
func (q *Quotes) ShowRandom() string {
	text := schedule.Pick(q.rng, q.pool)
	if q.out != nil {
		q.out.Quote(text)
	}
	return text
}
