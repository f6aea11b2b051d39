package sequence

import (
	"log"
	"time"

	"github.com/lixenwraith/ventbreak/core"
	"github.com/lixenwraith/ventbreak/curve"
	"github.com/lixenwraith/ventbreak/event"
	"github.com/lixenwraith/ventbreak/vmath"
)

// snapSettleTime is the post-snap wait before the unload clank and the
// completion handoff, in seconds
const snapSettleTime = 0.60

// Phase is the lifecycle state of a break sequence
// Transitions are strictly forward; PhaseDone is terminal
type Phase int

const (
	PhaseIdle      Phase = iota // Not yet activated
	PhaseDelaying               // Holding before the creak
	PhaseAnimating              // Driving the rotation through the curve
	PhaseSnapped                // Settled on target, waiting out the clatter
	PhaseFinishing              // Emitting completion side effects
	PhaseDone                   // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDelaying:
		return "delaying"
	case PhaseAnimating:
		return "animating"
	case PhaseSnapped:
		return "snapped"
	case PhaseFinishing:
		return "finishing"
	case PhaseDone:
		return "done"
	default:
		return "invalid"
	}
}

// OrientationStore is the transform of the grate entity
// The sequence is its only writer during the active window
type OrientationStore interface {
	Orientation() vmath.Euler
	SetOrientation(vmath.Euler)
}

// AudioPlayer plays a fire-and-forget sound cue
// Return value reports whether the cue actually played; the sequence
// ignores it (a silent grate still breaks)
type AudioPlayer interface {
	Play(core.SoundType) bool
}

// PlayerStateSetter receives the control handoff at completion
type PlayerStateSetter interface {
	SetPlayerState(core.PlayerState)
}

// BreakSequence drives the one-shot vent break: delay, creak, phased
// rotation to the target angle, snap, settle, completion handoff
//
// Single-goroutine contract: Activate and Update must be called from
// the same frame loop. The sequence never blocks; waits are expressed
// as elapsed-time thresholds checked each tick. There is no reset and
// no cancellation; once activated it runs to PhaseDone
type BreakSequence struct {
	cfg    Config
	crv    curve.BreakCurve
	grate  OrientationStore
	audio  AudioPlayer       // optional; nil skips cues
	player PlayerStateSetter // optional; nil skips the handoff
	router *event.Router     // optional; nil skips notifications

	phase   Phase
	elapsed float64
	initial vmath.Euler
	target  vmath.Euler
}

// New constructs a sequence over the grate's transform
// audio, player and router may be nil; missing collaborators degrade
// silently and never stall phase progression
func New(cfg Config, grate OrientationStore, audio AudioPlayer, player PlayerStateSetter, router *event.Router) (*BreakSequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &BreakSequence{
		cfg: cfg,
		crv: curve.BreakCurve{
			Resistance: cfg.Resistance,
			Sharpness:  cfg.Sharpness,
			Frequency:  cfg.Frequency,
			Damping:    cfg.Damping,
		},
		grate:  grate,
		audio:  audio,
		player: player,
		router: router,
		phase:  PhaseIdle,
	}, nil
}

// Activate latches the sequence and begins the run
// At most one run per instance: any call after the first is a no-op,
// not an error
func (s *BreakSequence) Activate() {
	if s.phase != PhaseIdle {
		return
	}

	s.initial = s.grate.Orientation()
	s.target = vmath.EulerOffsetX(s.initial, s.cfg.TargetAngleX)
	s.elapsed = 0
	s.phase = PhaseDelaying

	log.Printf("[BreakSequence] activated: initial X=%.1f target X=%.1f", s.initial.X, s.target.X)

	s.publish(event.EventBreakStarted, &event.BreakStartedPayload{
		Initial: s.initial,
		Target:  s.target,
	})
}

// Update advances the sequence by dt seconds. Called once per host tick
// Negative dt counts as zero: the sequence never moves backward
func (s *BreakSequence) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	switch s.phase {
	case PhaseDelaying:
		s.elapsed += dt
		if s.elapsed >= s.cfg.InitialDelay {
			s.playCue(core.SoundCreak)
			s.elapsed = 0
			s.phase = PhaseAnimating
		}

	case PhaseAnimating:
		s.elapsed += dt
		normalized := vmath.Clamp01(s.elapsed / s.cfg.Duration)
		t := s.crv.Progress(normalized)
		s.grate.SetOrientation(vmath.EulerBlend(s.initial, s.target, t))

		if s.elapsed >= s.cfg.Duration {
			// Land exactly on target; the curve's clamped tail would
			// otherwise leave float drift on the final frame
			s.grate.SetOrientation(s.target)
			s.elapsed = 0
			s.phase = PhaseSnapped
		}

	case PhaseSnapped:
		s.elapsed += dt
		if s.elapsed >= snapSettleTime {
			s.playCue(core.SoundUnload)
			s.phase = PhaseFinishing
			// Completion is observable on the same tick as the clank
			s.finish()
		}

	case PhaseIdle, PhaseDone:
		// Nothing to advance
	}
}

// finish runs the PhaseFinishing side effects and terminates
// Order matters: completion notification first, then the player-state
// handoff, so subscribers see the puzzle resolve before control changes
func (s *BreakSequence) finish() {
	s.publish(event.EventBreakCompleted, &event.BreakCompletedPayload{Final: s.target})

	if s.player != nil {
		s.player.SetPlayerState(core.PlayerFreeMove)
	}

	s.phase = PhaseDone
	log.Printf("[BreakSequence] done")
}

func (s *BreakSequence) playCue(st core.SoundType) {
	if s.audio == nil {
		return
	}
	s.audio.Play(st)
}

func (s *BreakSequence) publish(t event.EventType, payload any) {
	if s.router == nil {
		return
	}
	s.router.Publish(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now(),
	})
}

// HandleEvent implements event.Handler: any break request activates
// The trigger-once latch makes duplicate stimuli (interact spam,
// repeated contact) harmless
func (s *BreakSequence) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventBreakRequest {
		return
	}
	if p, ok := ev.Payload.(*event.BreakRequestPayload); ok {
		log.Printf("[BreakSequence] break requested via %s", p.Source)
	}
	s.Activate()
}

// EventTypes implements event.Handler
func (s *BreakSequence) EventTypes() []event.EventType {
	return []event.EventType{event.EventBreakRequest}
}

// Phase returns the current lifecycle phase
func (s *BreakSequence) Phase() Phase {
	return s.phase
}

// Triggered reports whether Activate has latched
// Distinguishable from mid-sequence via Phase
func (s *BreakSequence) Triggered() bool {
	return s.phase != PhaseIdle
}

// Target returns the resting orientation computed at activation
// Zero value before the sequence has triggered
func (s *BreakSequence) Target() vmath.Euler {
	return s.target
}
