// Package audio synthesizes the effect sounds and plays them through the speaker
package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/effect"
)

// SoundManager plays named sounds on a shared mixer
// Every method is a no-op until Initialize succeeds, so the app runs silently
// on hosts without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	loops       map[string]*beep.Ctrl
	initialized bool
	muted       bool
	played      int
	log         *slog.Logger
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(log *slog.Logger) *SoundManager {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
		loops:  make(map[string]*beep.Ctrl),
		log:    log,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	sm.master.Silent = sm.muted
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for name, ctrl := range sm.loops {
		ctrl.Streamer = nil
		delete(sm.loops, name)
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play starts a one-shot sound; unknown names are logged and ignored
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := NewSound(name)
	if s == nil {
		sm.log.Debug("unknown sound", "sound", name)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// Start begins a looping sound; already looping names are left alone
func (sm *SoundManager) Start(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if _, ok := sm.loops[name]; ok {
		return
	}

	s := NewLoop(name)
	if s == nil {
		sm.log.Debug("unknown loop", "sound", name)
		return
	}
	ctrl := &beep.Ctrl{Streamer: s}
	sm.loops[name] = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	sm.played++
}

// Stop ends a looping sound; stopping a silent name is a no-op
func (sm *SoundManager) Stop(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ctrl, ok := sm.loops[name]
	if !ok {
		return
	}
	delete(sm.loops, name)

	// A Ctrl with no streamer reports drained and the mixer drops it
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

// SetMuted silences or restores the master output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.master.Silent = muted
	speaker.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Looping reports whether name is currently looping
func (sm *SoundManager) Looping(name string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.loops[name]
	return ok
}

// Played returns the number of sounds started since Initialize
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// NewSound builds the one-shot streamer for name, or nil
func NewSound(name string) beep.Streamer {
	switch name {
	case effect.SoundDrum:
		return CreateDrumSound()
	case effect.SoundHorn:
		return CreateHornSound()
	case effect.SoundPing:
		return CreatePingSound()
	case effect.SoundBuzz:
		return CreateBuzzSound()
	}
	return nil
}

// NewLoop builds the endless streamer for name, or nil
func NewLoop(name string) beep.Streamer {
	switch name {
	case effect.SoundParty:
		return NewPartyGenerator(sampleRate)
	}
	return nil
}

var _ effect.Sounder = (*SoundManager)(nil)
