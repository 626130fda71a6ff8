package pitch

import "fmt"

// YINConfig configures the YIN detector.
//
// Reference: de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental
// frequency estimator for speech and music".
type YINConfig struct {
	Threshold float32 // absolute threshold on the CMNDF dip, (0, 1]
	MinFreq   float32 // Hz, lower bound of the search range
	MaxFreq   float32 // Hz, upper bound of the search range
}

// DefaultYINConfig returns the reference threshold and a guitar-range
// frequency window.
func DefaultYINConfig() YINConfig {
	return YINConfig{
		Threshold: 0.15,
		MinFreq:   80,
		MaxFreq:   1200,
	}
}

// Validate checks the config once at construction time; it is never
// called from the hot path.
func (c YINConfig) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("pitch: YINConfig.Threshold must be in (0, 1], got %v", c.Threshold)
	}
	if c.MinFreq <= 0 || c.MaxFreq <= c.MinFreq {
		return fmt.Errorf("pitch: YINConfig requires 0 < MinFreq < MaxFreq, got MinFreq=%v MaxFreq=%v", c.MinFreq, c.MaxFreq)
	}
	return nil
}

// YIN implements the four-step YIN algorithm: difference function,
// cumulative mean normalized difference function, first-crossing
// absolute threshold, and parabolic sub-sample refinement.
//
// The scratch buffer (cmndf) allocates lazily on the first Detect call if
// Prepare was never called; Prepare avoids that allocation by pre-sizing
// it up front. Once a high-water mark is established, by either path, a
// larger frame is rejected rather than triggering a hot-path reallocation.
type YIN struct {
	cfg   YINConfig
	cmndf []float32
	hwm   int
}

var _ Detector = (*YIN)(nil)

// NewYIN constructs a YIN detector. Panics if cfg fails Validate, matching
// the contract that configs are fixed and checked once at construction.
func NewYIN(cfg YINConfig) *YIN {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &YIN{cfg: cfg}
}

// Prepare pre-sizes the CMNDF scratch buffer for frames up to
// maxFrameSize samples.
func (y *YIN) Prepare(maxFrameSize int) {
	half := maxFrameSize / 2
	if half > y.hwm {
		y.cmndf = make([]float32, half)
		y.hwm = half
	}
}

// Reset zeroes the scratch buffer without shrinking its capacity.
func (y *YIN) Reset() {
	for i := range y.cmndf {
		y.cmndf[i] = 0
	}
}

// Detect implements Detector.
func (y *YIN) Detect(frame []float32, sampleRate float32) (Result, bool) {
	n := len(frame)
	if n == 0 || sampleRate <= 0 {
		return Result{}, false
	}

	half := n / 2
	minTau := int(sampleRate / y.cfg.MaxFreq)
	maxTau := int(sampleRate / y.cfg.MinFreq)
	if maxTau >= half {
		return Result{}, false
	}

	if half > y.hwm {
		if y.hwm != 0 {
			return Result{}, false
		}
		y.cmndf = make([]float32, half)
		y.hwm = half
	}
	cmndf := y.cmndf[:half]

	// Step 1: difference function, stored directly into cmndf (it is
	// overwritten in place by step 2).
	for tau := 0; tau < half; tau++ {
		var sum float32
		for i := 0; i < half; i++ {
			delta := frame[i] - frame[i+tau]
			sum += delta * delta
		}
		cmndf[tau] = sum
	}

	// Step 2: cumulative mean normalized difference function.
	cmndf[0] = 1
	var runningSum float32
	for tau := 1; tau < half; tau++ {
		runningSum += cmndf[tau]
		if runningSum != 0 {
			cmndf[tau] = cmndf[tau] * float32(tau) / runningSum
		} else {
			cmndf[tau] = 1
		}
	}

	// Step 3: first tau, scanning forward from minTau, whose CMNDF value
	// drops below threshold. That first crossing selects the dip (an
	// earlier dip is never passed over for a deeper later one); tau then
	// walks down to the bottom of that same dip so the parabolic fit in
	// step 4 is centered on its minimum.
	tau := minTau
	found := -1
	for ; tau < maxTau; tau++ {
		if cmndf[tau] < y.cfg.Threshold {
			found = tau
			break
		}
	}
	if found < 0 {
		return Result{}, false
	}
	tau = found
	for tau+1 < half && cmndf[tau+1] < cmndf[tau] {
		tau++
	}

	// Step 4: parabolic interpolation for sub-sample accuracy.
	betterTau := float32(tau)
	if tau > 0 && tau < half-1 {
		betterTau += parabolicPeak(cmndf[tau-1], cmndf[tau], cmndf[tau+1])
	}
	if betterTau <= 0 {
		return Result{}, false
	}

	result := Result{
		Frequency:  sampleRate / betterTau,
		Confidence: clamp01(1 - cmndf[tau]),
	}
	if !result.valid() {
		return Result{}, false
	}
	return result, true
}
