package synth

import (
	"math"
	"testing"
)

func TestGeneratorProducesExpectedFrequency(t *testing.T) {
	g := NewGenerator(Config{SampleRate: 48000, Frequency: 440, Amplitude: 1})

	frame := make([]float32, 4096)
	g.Fill(frame)

	zeroCrossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] < 0) != (frame[i] < 0) {
			zeroCrossings++
		}
	}

	// A 440 Hz tone over 4096/48000s = 85.3ms should cross zero roughly
	// 2*440*0.0853 = 75 times; allow a generous margin.
	if zeroCrossings < 50 || zeroCrossings > 100 {
		t.Errorf("zero crossings = %d, want roughly 75", zeroCrossings)
	}
}

func TestGeneratorRespectsAmplitude(t *testing.T) {
	g := NewGenerator(Config{SampleRate: 48000, Frequency: 220, Amplitude: 0.5})

	var peak float32
	for i := 0; i < 4096; i++ {
		v := g.Next()
		if a := float32(math.Abs(float64(v))); a > peak {
			peak = a
		}
	}

	if peak > 0.51 {
		t.Errorf("peak = %v, want <= 0.5 for a pure fundamental", peak)
	}
}

func TestGeneratorSetFrequencyTakesEffect(t *testing.T) {
	g := NewGenerator(Config{SampleRate: 48000, Frequency: 220, Amplitude: 1})
	g.Fill(make([]float32, 1024))
	g.SetFrequency(880)

	if g.cfg.Frequency != 880 {
		t.Errorf("SetFrequency did not update the generator's frequency")
	}
}

func TestGeneratorNoiseStaysBounded(t *testing.T) {
	g := NewGenerator(Config{SampleRate: 48000, Frequency: 0, Amplitude: 0, NoiseLevel: 0.3})

	for i := 0; i < 4096; i++ {
		v := g.Next()
		if v < -0.31 || v > 0.31 {
			t.Fatalf("noise sample %v exceeds configured level 0.3", v)
		}
	}
}
