// Package synth generates synthetic guitar-like tones for driving the
// pitch-detection pipeline without real audio I/O, which is out of scope
// for this module. It stands in for the file/device reader a production
// audio tool would have at this layer.
package synth

import "math"

// Config describes the synthetic tone a Generator produces.
type Config struct {
	SampleRate float32 // Hz
	Frequency  float32 // fundamental, Hz
	Amplitude  float32 // [0, 1], fundamental peak amplitude

	// Harmonics lists relative amplitudes for the 2nd, 3rd, ... partial,
	// e.g. []float32{0.5, 0.25} adds a 2nd harmonic at half amplitude and
	// a 3rd at a quarter. Nil or empty produces a pure sine.
	Harmonics []float32

	// VibratoRate and VibratoDepth add a sinusoidal frequency modulation,
	// common to sustained guitar notes. Depth is in Hz peak deviation;
	// rate is in Hz. Zero depth disables vibrato.
	VibratoRate  float32
	VibratoDepth float32

	// NoiseLevel adds uniform noise scaled to this peak amplitude,
	// simulating pickup hiss or room noise. Zero disables it.
	NoiseLevel float32
}

// Generator produces samples for Config one at a time, advancing its own
// sample counter (from which each sample's time and phase are computed)
// so callers can pull samples incrementally without tracking time
// themselves.
type Generator struct {
	cfg        Config
	sampleIdx  uint64
	noiseState uint64
}

// NewGenerator constructs a Generator seeded at t=0.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg, noiseState: 0x9e3779b97f4a7c15}
}

// Next returns the next sample.
func (g *Generator) Next() float32 {
	t := float64(g.sampleIdx) / float64(g.cfg.SampleRate)
	g.sampleIdx++

	// The vibrato term is the integral of depth*sin(2*pi*rate*t), so the
	// instantaneous frequency stays within +-VibratoDepth Hz of Frequency.
	phase := 2 * math.Pi * float64(g.cfg.Frequency) * t
	if g.cfg.VibratoDepth != 0 && g.cfg.VibratoRate != 0 {
		rate := float64(g.cfg.VibratoRate)
		phase += float64(g.cfg.VibratoDepth) / rate * (1 - math.Cos(2*math.Pi*rate*t))
	}
	sample := math.Sin(phase)

	for i, rel := range g.cfg.Harmonics {
		order := float64(i + 2)
		sample += float64(rel) * math.Sin(phase*order)
	}

	sample *= float64(g.cfg.Amplitude)

	if g.cfg.NoiseLevel != 0 {
		sample += float64(g.cfg.NoiseLevel) * g.nextNoise()
	}

	return float32(sample)
}

// Fill writes len(frame) consecutive samples into frame.
func (g *Generator) Fill(frame []float32) {
	for i := range frame {
		frame[i] = g.Next()
	}
}

// SetFrequency changes the fundamental from the next sample on. The sample
// counter is not reset, but phase is computed as 2*pi*f*t, so the waveform
// jumps in phase at the change rather than continuing smoothly.
func (g *Generator) SetFrequency(freq float32) { g.cfg.Frequency = freq }

// nextNoise returns a value in [-1, 1] from a small xorshift generator.
// Not cryptographic; good enough for a visually-plausible noise floor.
func (g *Generator) nextNoise() float64 {
	x := g.noiseState
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.noiseState = x
	return (float64(x%2000001) / 1000000.0) - 1.0
}
