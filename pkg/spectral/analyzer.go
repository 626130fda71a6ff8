// Package spectral provides an FFT-backed spectral visualizer: the
// auxiliary, visualization-only collaborator referenced by the pitch
// core. Nothing in this package is on the pitch-detection hot path; it
// exists for tuner displays and diagnostics, and it is free to allocate.
package spectral

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum holds the magnitude-bearing output of one forward FFT.
type Spectrum struct {
	bins       []complex128
	fftSize    int
	sampleRate float32
}

// GetMagnitudeAtBin returns the magnitude of bin, or 0 if bin falls
// outside the Nyquist half of the spectrum.
func (s Spectrum) GetMagnitudeAtBin(bin int) float32 {
	if bin < 0 || bin >= s.fftSize/2 || bin >= len(s.bins) {
		return 0
	}
	return float32(cmplxAbs(s.bins[bin]))
}

// GetMagnitudeAtFrequency returns the magnitude of the bin nearest to
// frequency.
func (s Spectrum) GetMagnitudeAtFrequency(frequency float32) float32 {
	if s.sampleRate <= 0 {
		return 0
	}
	binWidth := s.sampleRate / float32(s.fftSize)
	return s.GetMagnitudeAtBin(int(math.Round(float64(frequency / binWidth))))
}

// ExtractBandEnergy sums squared magnitude over the bins spanning
// [minFreq, maxFreq].
func (s Spectrum) ExtractBandEnergy(minFreq, maxFreq float32) float32 {
	if s.sampleRate <= 0 {
		return 0
	}
	binWidth := s.sampleRate / float32(s.fftSize)
	minBin := int(minFreq / binWidth)
	maxBin := int(maxFreq / binWidth)
	if maxBin > s.fftSize/2 {
		maxBin = s.fftSize / 2
	}

	var energy float32
	for i := minBin; i <= maxBin && i < len(s.bins); i++ {
		mag := cmplxAbs(s.bins[i])
		energy += float32(mag * mag)
	}
	return energy
}

// SpectralCentroid returns the magnitude-weighted mean frequency of the
// spectrum, or 0 if the spectrum carries negligible energy.
func (s Spectrum) SpectralCentroid() float32 {
	if s.sampleRate <= 0 {
		return 0
	}
	binWidth := s.sampleRate / float32(s.fftSize)

	var numerator, denominator float64
	half := s.fftSize / 2
	for i := 0; i < half && i < len(s.bins); i++ {
		mag := cmplxAbs(s.bins[i])
		freq := float64(i) * float64(binWidth)
		numerator += freq * mag
		denominator += mag
	}

	if denominator < 1e-6 {
		return 0
	}
	return float32(numerator / denominator)
}

// Analyzer computes windowed forward FFTs for visualization. It holds no
// per-call state beyond a reusable scratch buffer, but unlike the pitch
// detectors it is not held to a no-allocation contract: go-dsp's FFTReal
// allocates its result slice internally on every call.
type Analyzer struct {
	fftSize    int
	sampleRate float32
	window     *Window
	scratch    []float64
}

// NewAnalyzer constructs an Analyzer for frames of exactly fftSize
// samples, applying a Hann window before each transform.
func NewAnalyzer(fftSize int, sampleRate float32) *Analyzer {
	return &Analyzer{
		fftSize:    fftSize,
		sampleRate: sampleRate,
		window:     NewHann(fftSize),
		scratch:    make([]float64, fftSize),
	}
}

// Compute windows frame and runs a forward real FFT, returning a Spectrum
// sized to the analyzer's configured fftSize. frame must have exactly
// fftSize samples.
func (a *Analyzer) Compute(frame []float32) (Spectrum, error) {
	if len(frame) != a.fftSize {
		return Spectrum{}, fmt.Errorf("spectral: frame length %d does not match analyzer fftSize %d", len(frame), a.fftSize)
	}

	for i, v := range frame {
		a.scratch[i] = float64(v)
	}
	if err := a.window.Apply(a.scratch); err != nil {
		return Spectrum{}, err
	}

	bins := fft.FFTReal(a.scratch)
	// go-dsp may internally pad to the next convenient transform size, so
	// the bin-width math below is keyed to the returned length rather
	// than the caller's requested fftSize.
	return Spectrum{bins: bins, fftSize: len(bins), sampleRate: a.sampleRate}, nil
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
