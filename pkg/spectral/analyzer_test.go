package spectral

import (
	"math"
	"testing"
)

func sine64(freq, sampleRate float64, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / sampleRate))
	}
	return out
}

func TestAnalyzerRejectsWrongLength(t *testing.T) {
	a := NewAnalyzer(1024, 48000)
	if _, err := a.Compute(make([]float32, 512)); err == nil {
		t.Errorf("expected an error for a frame of the wrong length")
	}
}

func TestAnalyzerFindsPeakNearFundamental(t *testing.T) {
	a := NewAnalyzer(1024, 48000)
	frame := sine64(1000, 48000, 1024)

	spec, err := a.Compute(frame)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	peakFreq := spec.GetMagnitudeAtFrequency(1000)
	offPeak := spec.GetMagnitudeAtFrequency(4000)

	if peakFreq <= offPeak {
		t.Errorf("expected the bin near 1000 Hz (%v) to dominate the bin near 4000 Hz (%v)", peakFreq, offPeak)
	}
}

func TestSpectralCentroidOfSilenceIsZero(t *testing.T) {
	a := NewAnalyzer(1024, 48000)
	frame := make([]float32, 1024)

	spec, err := a.Compute(frame)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if spec.SpectralCentroid() != 0 {
		t.Errorf("SpectralCentroid() = %v, want 0 for silence", spec.SpectralCentroid())
	}
}

func TestBandEnergyCapturesToneEnergy(t *testing.T) {
	a := NewAnalyzer(1024, 48000)
	frame := sine64(1000, 48000, 1024)

	spec, err := a.Compute(frame)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	inBand := spec.ExtractBandEnergy(900, 1100)
	outOfBand := spec.ExtractBandEnergy(10000, 15000)

	if inBand <= outOfBand {
		t.Errorf("expected more energy in [900, 1100] (%v) than [10000, 15000] (%v)", inBand, outOfBand)
	}
}

func TestHannWindowApplyLengthMismatch(t *testing.T) {
	w := NewHann(512)
	if err := w.Apply(make([]float64, 256)); err == nil {
		t.Errorf("expected an error for mismatched window/signal length")
	}
}

func TestHannWindowTapersEdges(t *testing.T) {
	w := NewHann(512)
	coeffs := w.Coefficients()
	if coeffs[0] > 1e-9 {
		t.Errorf("Hann window coefficient at index 0 = %v, want ~0", coeffs[0])
	}
	mid := len(coeffs) / 2
	if coeffs[mid] < 0.9 {
		t.Errorf("Hann window coefficient at the midpoint = %v, want close to 1", coeffs[mid])
	}
}
