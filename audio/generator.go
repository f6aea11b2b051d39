package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Procedural generators for the two break cues. Both stream stereo
// float64 samples in [-1, 1] and never report errors

// CreakGenerator produces the metal groan of the grate resisting:
// a low fundamental that slowly climbs under load, amplitude wobble
// from the stick-slip of the hinge, and filtered noise for grit
type CreakGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	lp   float64 // one-pole low-pass state for the noise
}

// NewCreakGenerator creates a creak generator
func NewCreakGenerator(sr beep.SampleRate) *CreakGenerator {
	return &CreakGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *CreakGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental climbs 70 → 110 Hz over the first second
		climb := math.Min(t, 1.0)
		freq := 70 + 40*climb

		// Stick-slip wobble: amplitude shudders at ~13 Hz
		wobble := 0.6 + 0.4*math.Sin(2*math.Pi*13*t)

		tone := 0.22 * wobble * math.Sin(2*math.Pi*freq*t)
		tone += 0.08 * wobble * math.Sin(2*math.Pi*freq*2.7*t)

		// Low-passed noise for the grinding texture
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.lp += 0.08 * (noise - g.lp)
		grit := 0.10 * wobble * g.lp

		// Ease in so the cue does not click at its first sample
		attack := math.Min(t/0.05, 1.0)

		sample := attack * (tone + grit)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CreakGenerator) Err() error {
	return nil
}

// ClankGenerator produces the unload clank when the hinge lets go:
// inharmonic metallic partials with a fast exponential decay plus a
// short noise burst at the impact
type ClankGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewClankGenerator creates a clank generator
func NewClankGenerator(sr beep.SampleRate) *ClankGenerator {
	return &ClankGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *ClankGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Struck-metal partials; ratios deliberately inharmonic
		env := math.Exp(-t * 14)
		hit := 0.30 * env * math.Sin(2*math.Pi*317*t)
		hit += 0.18 * env * math.Sin(2*math.Pi*317*2.31*t)
		hit += 0.10 * env * math.Sin(2*math.Pi*317*3.76*t)

		// Impact noise, gone within ~30ms
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		burst := 0.20 * math.Exp(-t*70) * noise

		sample := hit + burst
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClankGenerator) Err() error {
	return nil
}
