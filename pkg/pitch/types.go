// Package pitch implements the real-time monophonic pitch-detection core:
// YIN and MPM time-domain detectors, a hybrid arbiter with harmonic
// rejection, and a family of temporal stabilizers (EMA, median, and a
// confidence-adaptive hybrid of the two).
//
// Every type here is built to run inside an audio callback: after
// construction and an optional Prepare call, no exported method on a
// Detector or Stabilizer allocates, blocks, or returns an error. Detection
// failure is expressed as the boolean ok return being false, never as a
// sentinel value or a panic.
package pitch

import "math"

// Result carries a single frame's pitch estimate. A Detector returns
// (Result{}, false) rather than a sentinel Result when nothing was
// detected.
type Result struct {
	Frequency  float32 // Hz, > 0 when present
	Confidence float32 // [0, 1]
}

// valid reports whether r looks like a result a Detector is allowed to
// return: a positive, finite frequency and a finite confidence.
func (r Result) valid() bool {
	return r.Frequency > 0 && !math.IsNaN(float64(r.Frequency)) && !math.IsInf(float64(r.Frequency), 0) &&
		!math.IsNaN(float64(r.Confidence)) && !math.IsInf(float64(r.Confidence), 0)
}

// Detector is the capability set shared by every pitch-detection
// algorithm in this package. Implementations own all of their scratch
// state exclusively; none are safe to share across goroutines.
type Detector interface {
	// Detect analyzes one mono frame and returns a pitch estimate, or
	// ok=false if no confident estimate could be produced.
	Detect(frame []float32, sampleRate float32) (result Result, ok bool)

	// Reset clears accumulated state (e.g. scratch buffers, counters)
	// without releasing any memory.
	Reset()

	// Prepare pre-sizes internal scratch buffers for frames up to
	// maxFrameSize samples. Calling Detect with a larger frame than the
	// high-water mark established here (or by the first Detect call)
	// returns ok=false instead of reallocating.
	Prepare(maxFrameSize int)
}

// Stabilizer is the capability set shared by every temporal smoothing
// strategy. Update must be called with frames in strict chronological
// order; implementations are not safe for concurrent use.
type Stabilizer interface {
	// Update folds one new detector result into the stabilizer's state.
	Update(Result)

	// GetStabilized returns the current smoothed estimate.
	GetStabilized() Result

	// Reset returns the stabilizer to its just-constructed state.
	Reset()
}

// clamp01 restricts v to [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// parabolicPeak refines an integer peak/dip index tau using the
// neighboring samples s0, s1 (at tau), s2, returning the fractional
// offset added to tau. Falls back to 0 (no adjustment) when the
// denominator is degenerate, matching the original algorithm's
// endpoint behavior.
func parabolicPeak(s0, s1, s2 float32) float32 {
	denom := 2 * (2*s1 - s2 - s0)
	if denom == 0 {
		return 0
	}
	return (s2 - s0) / denom
}
