package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orchead/constants"
)

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Stacked harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * constants.BuzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// PartyGenerator generates an endless four-on-the-floor beat
type PartyGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

// NewPartyGenerator creates a party beat generator
func NewPartyGenerator(sr beep.SampleRate) *PartyGenerator {
	return &PartyGenerator{
		sr:   sr,
		beat: sr.N(constants.PartyBeatInterval),
	}
}

func (g *PartyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(100 * time.Millisecond)
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1.0 - float64(beatPos)/float64(kickLen)
			kick = constants.PartyKickAmplitude * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		// Bass walks up a fifth on every other beat
		freq := constants.PartyBassFreqHz
		if (g.pos/g.beat)%2 == 1 {
			freq *= 1.5
		}
		bass := constants.PartyBassAmplitude * math.Sin(2*math.Pi*freq*float64(g.pos)/float64(g.sr))

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PartyGenerator) Err() error { return nil }
