package curve

import (
	"math"
	"testing"
)

// Reference tuning used by the shipped vent
func referenceCurve() BreakCurve {
	return BreakCurve{
		Resistance: 0.8,
		Sharpness:  8,
		Frequency:  5,
		Damping:    3,
	}
}

func TestProgressStartsAtZero(t *testing.T) {
	c := referenceCurve()
	if got := c.Progress(0); got != 0 {
		t.Errorf("Progress(0) = %v, want 0", got)
	}
}

func TestProgressEndValue(t *testing.T) {
	c := referenceCurve()
	// At t=1: b=1, base=1, osc = sin(5π)·e⁻³·0.15 = 0 (integer frequency)
	want := 0.1 + 0.9
	if want > 1 {
		want = 1
	}
	if got := c.Progress(1); math.Abs(got-want) > 1e-9 {
		t.Errorf("Progress(1) = %v, want %v", got, want)
	}
}

func TestResistancePhaseMonotonic(t *testing.T) {
	c := referenceCurve()
	prev := -1.0
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000 * c.Resistance * 0.999
		got := c.Progress(x)
		if got < prev {
			t.Fatalf("resistance phase not monotonic at t=%v: %v < %v", x, got, prev)
		}
		prev = got
	}
}

func TestContinuityAtBoundary(t *testing.T) {
	c := referenceCurve()

	// Approaching from below the resistance cap
	below := c.Progress(c.Resistance - 1e-9)
	if math.Abs(below-0.1) > 1e-6 {
		t.Errorf("Progress just below boundary = %v, want ≈0.1", below)
	}

	// Exactly at the boundary b=0: oscillation forced off, base=0
	at := c.Progress(c.Resistance)
	if at != 0.1 {
		t.Errorf("Progress at boundary = %v, want exactly 0.1", at)
	}
}

func TestProgressAlwaysInUnitRange(t *testing.T) {
	configs := []BreakCurve{
		referenceCurve(),
		{Resistance: 0.5, Sharpness: 1, Frequency: 0, Damping: 0},
		{Resistance: 0.2, Sharpness: 2, Frequency: 50, Damping: 0},   // violent undamped wobble
		{Resistance: 0.2, Sharpness: 16, Frequency: 13.7, Damping: 0.1},
		{Resistance: 0.9, Sharpness: 8, Frequency: 3, Damping: 20},
	}
	for ci, c := range configs {
		for i := 0; i <= 2000; i++ {
			x := float64(i) / 2000
			got := c.Progress(x)
			if got < 0 || got > 1 {
				t.Fatalf("config %d: Progress(%v) = %v out of [0,1]", ci, x, got)
			}
		}
	}
}

func TestNearUnityResistance(t *testing.T) {
	// Break phase compressed into a sliver of the timeline; must not
	// divide by zero and must stay clamped
	c := BreakCurve{Resistance: 0.999, Sharpness: 8, Frequency: 5, Damping: 3}
	for _, x := range []float64{0, 0.5, 0.998, 0.999, 0.9995, 1} {
		got := c.Progress(x)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("Progress(%v) = %v, not finite", x, got)
		}
		if got < 0 || got > 1 {
			t.Fatalf("Progress(%v) = %v out of [0,1]", x, got)
		}
	}
	if got := c.Progress(1); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Progress(1) = %v, want 1", got)
	}
}

func TestOscillationOvershootIsClamped(t *testing.T) {
	// Low sharpness pushes base high early; half-integer frequency puts
	// a wobble peak where base+osc exceeds 1 before the clamp
	c := BreakCurve{Resistance: 0.1, Sharpness: 0.2, Frequency: 0.5, Damping: 0}
	peak := 0.0
	for i := 0; i <= 2000; i++ {
		x := float64(i) / 2000
		if got := c.Progress(x); got > peak {
			peak = got
		}
	}
	if peak != 1 {
		t.Errorf("expected clamp to pin overshoot at 1, peak = %v", peak)
	}
}
