package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ventbreak/core"
)

// TestPlayWithoutInitialization verifies the manager is inert before
// Initialize succeeds: no panic, Play reports the cue did not play
func TestPlayWithoutInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized sound manager panicked: %v", r)
		}
	}()

	if sm.Play(core.SoundCreak) {
		t.Error("Play reported success without initialization")
	}
	if sm.Play(core.SoundUnload) {
		t.Error("Play reported success without initialization")
	}
	sm.Cleanup()
}

func TestInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker init fails on hosts without an audio device; that is the
	// graceful-degradation path, not a failure of this package
	if err := sm.Initialize(); err != nil {
		t.Logf("speaker unavailable (expected in test environments): %v", err)
		return
	}
	defer sm.Cleanup()

	// Second call is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize returned error: %v", err)
	}

	if !sm.Play(core.SoundCreak) {
		t.Error("Play(creak) failed after successful init")
	}
}

func TestMuteSuppressesPlayback(t *testing.T) {
	sm := NewSoundManager(nil)
	if err := sm.Initialize(); err != nil {
		t.Logf("speaker unavailable: %v", err)
		return
	}
	defer sm.Cleanup()

	if sm.IsMuted() {
		t.Fatal("default config starts muted")
	}
	sm.ToggleMute()
	if !sm.IsMuted() {
		t.Fatal("ToggleMute did not mute")
	}
	if sm.Play(core.SoundUnload) {
		t.Error("muted manager played a cue")
	}
}

func TestDisabledConfigStartsMuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		t.Logf("speaker unavailable: %v", err)
		return
	}
	defer sm.Cleanup()

	if !sm.IsMuted() {
		t.Error("Enabled=false config not muted after init")
	}
}

// Generators must stream bounded samples; clipping would pop in the mix
func TestGeneratorsStayInRange(t *testing.T) {
	sr := beep.SampleRate(48000)
	gens := map[string]beep.Streamer{
		"creak": NewCreakGenerator(sr),
		"clank": NewClankGenerator(sr),
	}

	for name, gen := range gens {
		buf := make([][2]float64, 512)
		// Two seconds of audio, past both cue lengths
		for block := 0; block < int(sr)*2/len(buf); block++ {
			n, ok := gen.Stream(buf)
			if !ok || n != len(buf) {
				t.Fatalf("%s: stream stopped early (n=%d ok=%v)", name, n, ok)
			}
			for i := 0; i < n; i++ {
				for ch := 0; ch < 2; ch++ {
					if v := buf[i][ch]; v < -1 || v > 1 {
						t.Fatalf("%s: sample %v out of [-1, 1]", name, v)
					}
				}
			}
		}
		if err := gen.Err(); err != nil {
			t.Errorf("%s: Err() = %v", name, err)
		}
	}
}

func TestLoadAudioConfigEnvOverrides(t *testing.T) {
	t.Setenv("VENTBREAK_AUDIO_ENABLED", "false")
	t.Setenv("VENTBREAK_MASTER_VOLUME", "150")
	t.Setenv("VENTBREAK_SAMPLE_RATE", "44100")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("Enabled override ignored")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("MasterVolume = %v, want clamped 1.0", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %v, want 44100", cfg.SampleRate)
	}
}
