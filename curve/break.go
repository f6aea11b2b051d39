package curve

import (
	"math"

	"github.com/lixenwraith/ventbreak/vmath"
)

// Tuned against the reference break animation; changing these changes
// the visual signature of every vent in the game
const (
	// resistanceCeiling is both the cap of the resistance phase and the
	// floor of the break phase, which keeps the curve continuous at the
	// boundary
	resistanceCeiling = 0.1

	// oscAmplitude is the fixed spring-back amplitude layered on the
	// break phase. Overshoot past 1.0 is absorbed by the final clamp
	oscAmplitude = 0.15
)

// BreakCurve maps normalized time to blended progress for the vent
// break animation: a long near-still hold, a sudden give, then a
// decaying spring wobble. Pure math, no state
//
// Resistance must be strictly inside (0, 1); both it and its
// complement are divisors. Construction goes through the sequence
// config, which validates
type BreakCurve struct {
	Resistance float64 // Fraction of the duration spent holding, (0, 1)
	Sharpness  float64 // Break-phase exponent; larger = more abrupt give
	Frequency  float64 // Spring wobble cycles across the break phase
	Damping    float64 // Exponential decay rate of the wobble
}

// Progress returns the blend factor for normalized time t
// Callers clamp t to [0, 1] upstream; the result is always in [0, 1]
func (c BreakCurve) Progress(t float64) float64 {
	if t < c.Resistance {
		// Holding: cubic onset so frame one is imperceptibly slow,
		// reaching resistanceCeiling right at the boundary
		n := t / c.Resistance
		return n * n * n * resistanceCeiling
	}

	// Give: renormalize over the remaining window
	b := (t - c.Resistance) / (1 - c.Resistance)
	base := math.Pow(b, c.Sharpness)

	// Spring wobble, decaying over the break phase. Forced to zero at
	// the phase boundary so continuity with the resistance phase never
	// depends on evaluating the formula at b=0
	osc := 0.0
	if b > 0 {
		osc = math.Sin(b*c.Frequency*math.Pi) * math.Exp(-b*c.Damping) * oscAmplitude
	}

	// 0.9 scale reserves headroom for the wobble to overshoot before
	// the clamp takes it. Extreme Frequency/Damping can pin stretches
	// of the output at 0 or 1; that flattening is part of the look, so
	// the amplitude is never renormalized
	return vmath.Clamp01(resistanceCeiling + base*0.9 + osc)
}
