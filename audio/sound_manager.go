package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ventbreak/core"
)

// SoundManager synthesizes and plays the break-sequence cues
//
// All audio is procedural; there are no sample assets. Initialization
// failure (headless host, no output device) leaves the manager inert:
// Play reports false and the game runs silent
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager with the given config
// A nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer
// Safe to call twice; the second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.muted = !sm.cfg.Enabled
	return nil
}

// Play queues the cue for playback
// Returns false when the cue cannot play (not initialized, muted,
// unknown type); callers treat that as fire-and-forget either way
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)

	var streamer beep.Streamer
	switch st {
	case core.SoundCreak:
		streamer = beep.Take(sr.N(time.Millisecond*1200), NewCreakGenerator(sr))
	case core.SoundUnload:
		streamer = beep.Take(sr.N(time.Millisecond*350), NewClankGenerator(sr))
	default:
		return false
	}

	vol := sm.cfg.MasterVolume * sm.cfg.EffectVolumes[st]
	if vol <= 0 {
		return false
	}

	// beep volume is exponential; convert the linear config value
	sm.mixer.Add(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   linearToVolume(vol),
		Silent:   false,
	})
	return true
}

// ToggleMute flips the mute state, returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return !sm.muted
}

// IsMuted returns the current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Cleanup silences and detaches everything
// The speaker itself has no close; clearing the mixer is enough to
// stop all output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// linearToVolume maps a linear 0..1 gain to beep's log2 volume scale
func linearToVolume(gain float64) float64 {
	// -4 (≈1/16 gain) at the quiet end up to 0 at full
	return -4 * (1 - gain)
}
