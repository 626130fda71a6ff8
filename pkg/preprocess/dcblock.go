// Package preprocess provides optional signal-conditioning stages that
// run upstream of a Detector: DC blocking, band-limiting to the guitar
// range, and peak/RMS normalization. None of these are part of the pitch
// core itself; they are ordinary stateful filters a caller may chain in
// front of Detect.
package preprocess

import "math"

// DCBlock removes the 0 Hz component from a signal with a one-pole
// high-pass filter: y[n] = x[n] - x[n-1] + R*y[n-1].
//
// Reference: Julius O. Smith III, "Introduction to Digital Filters with
// Audio Applications", the DC Blocker section.
type DCBlock struct {
	pole float32
	x1   float32
	y1   float32
}

// NewDCBlock constructs a DC blocker with the standard audio pole
// location R = 0.995 (cutoff of roughly 35 Hz at 44.1 kHz).
func NewDCBlock() *DCBlock {
	return &DCBlock{pole: 0.995}
}

// NewDCBlockWithCutoff constructs a DC blocker tuned to a specific -3dB
// cutoff frequency, using the small-angle approximation
// R = 1 - 2*pi*fc/fs.
func NewDCBlockWithCutoff(sampleRate, cutoffFreq float32) *DCBlock {
	pole := float32(1 - 2*math.Pi*float64(cutoffFreq)/float64(sampleRate))
	if pole >= 1 {
		pole = 0.999
	} else if pole <= 0 {
		pole = 0.001
	}
	return &DCBlock{pole: pole}
}

// Process filters a single sample.
func (d *DCBlock) Process(input float32) float32 {
	output := input - d.x1 + d.pole*d.y1
	d.x1 = input
	d.y1 = output
	return output
}

// ProcessBuffer filters every sample of frame in place.
func (d *DCBlock) ProcessBuffer(frame []float32) {
	for i, v := range frame {
		frame[i] = d.Process(v)
	}
}

// Reset clears the filter's delay line.
func (d *DCBlock) Reset() {
	d.x1 = 0
	d.y1 = 0
}
