package detect

import (
	"sort"
	"strings"
	"time"

	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/loop"
	"github.com/lixenwraith/orchead/schedule"
)

// DefaultPhrases maps secret words to effects
var DefaultPhrases = map[string]effect.ID{
	"grond":           effect.Grond,
	"isengard":        effect.Isengard,
	"hobbits":         effect.Isengard,
	"precious":        effect.Precious,
	"gollum":          effect.Precious,
	"smeagol":         effect.Precious,
	"mellon":          effect.Mellon,
	"speakfriend":     effect.Mellon,
	"helmsdeep":       effect.HelmsDeep,
	"sauron":          effect.SauronPulse,
	"horn":            effect.Horn,
	"urukhai":         effect.Summon,
	"party":           effect.Party,
	"secondbreakfast": effect.SecondBreakfast,
	"breakfast":       effect.SecondBreakfast,
	"potatoes":        effect.Potatoes,
	"taters":          effect.Potatoes,
	"shallnotpass":    effect.ShallNotPass,
	"balrog":          effect.ShallNotPass,
	"gandalf":         effect.ShallNotPass,
	"meat":            effect.Meat,
	"isildur":         effect.Isildur,
}

type phraseEntry struct {
	text   string
	target effect.ID
}

// Phrase watches typed letters for registered substrings
// The buffer clears after a quiet period and immediately after a match
type Phrase struct {
	l        *loop.Loop
	entries  []phraseEntry
	maxLen   int
	timeout  time.Duration
	dispatch Dispatch

	buf   []byte
	clear schedule.Slot
}

// NewPhrase builds a matcher over table; keys are lowercased and empty keys dropped
// Candidates are checked longest first, then alphabetically, so one match wins deterministically
func NewPhrase(l *loop.Loop, table map[string]effect.ID, timeout time.Duration, dispatch Dispatch) *Phrase {
	p := &Phrase{l: l, timeout: timeout, dispatch: dispatch}
	for text, target := range table {
		text = strings.ToLower(text)
		if text == "" {
			continue
		}
		p.entries = append(p.entries, phraseEntry{text: text, target: target})
		p.maxLen = max(p.maxLen, len(text))
	}
	sort.Slice(p.entries, func(i, j int) bool {
		a, b := p.entries[i], p.entries[j]
		if len(a.text) != len(b.text) {
			return len(a.text) > len(b.text)
		}
		return a.text < b.text
	})
	return p
}

// Char feeds one typed character; non-letters are ignored
// Returns the matched effect, if any
func (p *Phrase) Char(r rune) (effect.ID, bool) {
	if !isLetter(r) || p.maxLen == 0 {
		return "", false
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	p.buf = append(p.buf, byte(r))
	// Anything older than the longest phrase can no longer complete a match
	if over := len(p.buf) - p.maxLen; over > 0 {
		p.buf = append(p.buf[:0], p.buf[over:]...)
	}
	p.clear.Arm(p.l, p.timeout, p.Reset)

	s := string(p.buf)
	for _, e := range p.entries {
		if strings.Contains(s, e.text) {
			p.Reset()
			p.dispatch.fire(e.target)
			return e.target, true
		}
	}
	return "", false
}

// Reset empties the buffer and cancels the quiet timer
func (p *Phrase) Reset() {
	p.buf = p.buf[:0]
	p.clear.Cancel()
}

// Buffer returns the letters accumulated so far
func (p *Phrase) Buffer() string { return string(p.buf) }

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
