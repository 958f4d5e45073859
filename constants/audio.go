package constants

import "time"

// Audio Engine
const (
	// SampleRate is the speaker sample rate in Hz
	SampleRate = 48000

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Drum Sound (grond, shall-not-pass)
const (
	DrumDuration  = 450 * time.Millisecond
	DrumFreqHz    = 55.0
	DrumAmplitude = 0.5
)

// Horn Sound
const (
	HornDuration  = 1400 * time.Millisecond
	HornAttack    = 250 * time.Millisecond
	HornRelease   = 500 * time.Millisecond
	HornFreqHz    = 147.0 // D3
	HornAmplitude = 0.25
)

// Ping Sound (sauron pulse)
const (
	PingDuration  = 300 * time.Millisecond
	PingAttack    = 5 * time.Millisecond
	PingRelease   = 250 * time.Millisecond
	PingFreqHz    = 440.0
	PingAmplitude = 0.2
)

// Party Beat
const (
	PartyBeatInterval  = 500 * time.Millisecond // 120 BPM
	PartyKickAmplitude = 0.4
	PartyBassFreqHz    = 110.0
	PartyBassAmplitude = 0.12
)

// Buzz Sound (frenzy)
const (
	BuzzDuration  = 150 * time.Millisecond
	BuzzFreqHz    = 120.0
	BuzzAmplitude = 0.2
)
