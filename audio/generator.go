package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a sine sweep from start to end frequency with exponential decay
type ToneGenerator struct {
	sr       beep.SampleRate
	pos      int
	total    int
	start    float64
	end      float64
	decay    float64
	volume   float64
	harmonic float64 // Amplitude of the second harmonic, 0 for a pure tone
	phase    float64
}

// NewToneGenerator creates a sweep lasting n samples
func NewToneGenerator(sr beep.SampleRate, n int, start, end, decay, volume float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, total: max(n, 1), start: start, end: end, decay: decay, volume: volume}
}

// WithHarmonic adds a second harmonic for a brighter timbre
func (g *ToneGenerator) WithHarmonic(amount float64) *ToneGenerator {
	g.harmonic = amount
	return g
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.total)
		freq := g.start + (g.end-g.start)*progress
		t := float64(g.pos) / float64(g.sr)

		// Integrate phase so the sweep stays click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*g.decay)

		sample := math.Sin(g.phase) + g.harmonic*math.Sin(2*g.phase)
		sample *= g.volume * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// NoiseGenerator produces a rumbling burst for explosions
type NoiseGenerator struct {
	sr     beep.SampleRate
	pos    int
	seed   uint32
	last   float64
	volume float64
}

// NewNoiseGenerator creates a burst generator; seed fixes the texture
func NewNoiseGenerator(sr beep.SampleRate, seed uint32, volume float64) *NoiseGenerator {
	if seed == 0 {
		seed = 1
	}
	return &NoiseGenerator{sr: sr, seed: seed, volume: volume}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 6)

		// xorshift noise through a one-pole low-pass
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1
		g.last += 0.2 * (noise - g.last)

		rumble := 0.5 * math.Sin(2*math.Pi*55*t)
		sample := g.volume * envelope * (0.7*g.last + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
