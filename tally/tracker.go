package tally

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/effect"
)

// Counters is durable integer storage; a missing key reads as zero
type Counters interface {
	Get(ctx context.Context, key string) (int64, error)
	Set(ctx context.Context, key string, v int64) error
}

// SessionFlags is session-scoped storage
type SessionFlags interface {
	// SetOnce sets key and reports whether it was newly set
	SetOnce(ctx context.Context, key string) (bool, error)
}

// Tracker owns the kill and visitor counters
// Increment and CountSession run on the loop goroutine; reads are atomic
type Tracker struct {
	store      Counters
	milestones []*Milestone
	dispatch   func(effect.ID)
	log        *slog.Logger

	kills    atomic.Int64
	visitors atomic.Int64

	onChange []func(kills, visitors int64)
}

// NewTracker loads both counters from store; load failures start from zero
func NewTracker(ctx context.Context, store Counters, milestones []*Milestone, dispatch func(effect.ID), log *slog.Logger) *Tracker {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	t := &Tracker{
		store:      store,
		milestones: milestones,
		dispatch:   dispatch,
		log:        log,
	}
	t.kills.Store(t.load(ctx, constants.KeyKills))
	t.visitors.Store(t.load(ctx, constants.KeyVisitors))
	return t
}

// OnChange registers fn to receive the counters after every mutation
func (t *Tracker) OnChange(fn func(kills, visitors int64)) {
	t.onChange = append(t.onChange, fn)
}

// Increment counts one kill, persists it and fires every milestone the new value meets
func (t *Tracker) Increment(ctx context.Context) int64 {
	n := t.kills.Add(1)
	t.save(ctx, constants.KeyKills, n)
	t.publish()

	for _, m := range t.milestones {
		hit, err := m.Match(n)
		if err != nil {
			t.log.Warn("milestone evaluation failed", "when", m.When, "count", n, "error", err)
			continue
		}
		if hit && t.dispatch != nil {
			t.dispatch(effect.ID(m.Effect))
		}
	}
	return n
}

// CountSession increments the visitor counter when this session has not been counted yet
func (t *Tracker) CountSession(ctx context.Context, flags SessionFlags) bool {
	fresh, err := flags.SetOnce(ctx, constants.KeySessionFlag)
	if err != nil {
		t.log.Warn("session flag unavailable", "error", err)
		return false
	}
	if !fresh {
		return false
	}
	n := t.visitors.Add(1)
	t.save(ctx, constants.KeyVisitors, n)
	t.publish()
	return true
}

// Kills returns the kill count
func (t *Tracker) Kills() int64 { return t.kills.Load() }

// Visitors returns the visitor count
func (t *Tracker) Visitors() int64 { return t.visitors.Load() }

func (t *Tracker) load(ctx context.Context, key string) int64 {
	if t.store == nil {
		return 0
	}
	v, err := t.store.Get(ctx, key)
	if err != nil || v < 0 {
		t.log.Warn("counter load failed", "key", key, "error", err)
		return 0
	}
	return v
}

func (t *Tracker) save(ctx context.Context, key string, v int64) {
	if t.store == nil {
		return
	}
	if err := t.store.Set(ctx, key, v); err != nil {
		t.log.Warn("counter save failed", "key", key, "error", err)
	}
}

func (t *Tracker) publish() {
	k, v := t.kills.Load(), t.visitors.Load()
	for _, fn := range t.onChange {
		fn(k, v)
	}
}

// FormatKills renders n with thousands separators
func FormatKills(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatVisitors renders n zero-padded to the visitor counter width
func FormatVisitors(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) >= constants.VisitorDigits {
		return s
	}
	return strings.Repeat("0", constants.VisitorDigits-len(s)) + s
}
