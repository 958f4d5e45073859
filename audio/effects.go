package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/orchead/constants"
)

const sampleRate = beep.SampleRate(constants.SampleRate)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency multiplier reached at the end of the note
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 1, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to freq*sweep over duration
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq * (1 + (o.sweep-1)*progress)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateDrumSound is a low war drum: a falling sine thump over a noise skin
func CreateDrumSound() beep.Streamer {
	body := NewSweep(constants.DrumFreqHz*2, 0.5, constants.DrumDuration, WaveSine, sampleRate)
	skin := NewOscillator(0, constants.DrumDuration/6, WaveNoise, sampleRate)
	mixed := beep.Mix(
		NewEnvelope(body, constants.DrumDuration, 2*time.Millisecond, constants.DrumDuration*3/4, sampleRate),
		newVolume(NewEnvelope(skin, constants.DrumDuration/6, 0, constants.DrumDuration/6, sampleRate), 0.3),
	)
	return newVolume(mixed, constants.DrumAmplitude)
}

// CreateHornSound is a brassy swell with a fifth above
func CreateHornSound() beep.Streamer {
	d := constants.HornDuration
	root := NewOscillator(constants.HornFreqHz, d, WaveSaw, sampleRate)
	fifth := NewOscillator(constants.HornFreqHz*1.5, d, WaveSaw, sampleRate)
	mixed := beep.Mix(
		newVolume(NewEnvelope(root, d, constants.HornAttack, constants.HornRelease, sampleRate), 0.7),
		newVolume(NewEnvelope(fifth, d, constants.HornAttack*2, constants.HornRelease, sampleRate), 0.3),
	)
	return newVolume(mixed, constants.HornAmplitude)
}

// CreatePingSound is a short bell for the eye pulse
func CreatePingSound() beep.Streamer {
	d := constants.PingDuration
	fund := NewOscillator(constants.PingFreqHz, d, WaveSine, sampleRate)
	over := NewOscillator(constants.PingFreqHz*2, d, WaveSine, sampleRate)
	mixed := beep.Mix(
		newVolume(NewEnvelope(fund, d, constants.PingAttack, constants.PingRelease, sampleRate), 0.7),
		newVolume(NewEnvelope(over, d, constants.PingAttack, constants.PingRelease/2, sampleRate), 0.3),
	)
	return newVolume(mixed, constants.PingAmplitude)
}

// CreateBuzzSound is a harsh short buzz for the frenzy
func CreateBuzzSound() beep.Streamer {
	return beep.Take(sampleRate.N(constants.BuzzDuration), NewBuzzGenerator(sampleRate, constants.BuzzFreqHz))
}
