package pitch

import "fmt"

// MPMConfig configures the McLeod Pitch Method detector.
//
// Reference: McLeod, P., Wyvill, G. (2005). "A smarter way to find pitch".
//
// Cutoff and SmallCutoff are part of McLeod's "key maximum" peak-selection
// rule. This implementation, like the reference it is grounded on, keeps
// both fields for API compatibility but selects the absolute maximum
// among retained peaks rather than the first peak above k*max. See
// DESIGN.md for the rationale.
type MPMConfig struct {
	Threshold   float32 // minimum retained NSDF peak height, (0, 1]
	MinFreq     float32 // Hz
	MaxFreq     float32 // Hz
	Cutoff      float32 // key-maximum cutoff (currently unused in selection)
	SmallCutoff float32 // key-maximum small-peak cutoff (currently unused)
}

// DefaultMPMConfig returns McLeod's reference threshold and a guitar-range
// frequency window.
func DefaultMPMConfig() MPMConfig {
	return MPMConfig{
		Threshold:   0.93,
		MinFreq:     80,
		MaxFreq:     1200,
		Cutoff:      0.97,
		SmallCutoff: 0.5,
	}
}

// Validate checks the config once at construction time.
func (c MPMConfig) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("pitch: MPMConfig.Threshold must be in (0, 1], got %v", c.Threshold)
	}
	if c.MinFreq <= 0 || c.MaxFreq <= c.MinFreq {
		return fmt.Errorf("pitch: MPMConfig requires 0 < MinFreq < MaxFreq, got MinFreq=%v MaxFreq=%v", c.MinFreq, c.MaxFreq)
	}
	return nil
}

// MPM implements McLeod's Normalized Square Difference Function detector:
// autocorrelation, sum-of-squares normalization, positive-going
// zero-crossing peak picking, and parabolic refinement of the strongest
// retained peak.
//
// All three scratch vectors (acf, r, nsdf) share one high-water mark and
// grow together, exactly like YIN's single scratch vector: lazily on the
// first Detect call if Prepare was never called, never again after that.
// A frame larger than the established high-water mark is rejected rather
// than triggering a hot-path reallocation.
type MPM struct {
	cfg  MPMConfig
	acf  []float32
	r    []float32
	nsdf []float32
	hwm  int

	// peaks is reused across calls to avoid allocating a new slice per
	// frame; it never needs to hold more than half the frame.
	peaks []int
}

var _ Detector = (*MPM)(nil)

// NewMPM constructs an MPM detector.
func NewMPM(cfg MPMConfig) *MPM {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &MPM{cfg: cfg}
}

// Prepare pre-sizes the ACF/r/NSDF scratch vectors and the peak-index
// buffer for frames up to maxFrameSize samples.
func (m *MPM) Prepare(maxFrameSize int) {
	half := maxFrameSize / 2
	if half > m.hwm {
		m.acf = make([]float32, half)
		m.r = make([]float32, half)
		m.nsdf = make([]float32, half)
		m.peaks = make([]int, 0, half)
		m.hwm = half
	}
}

// Reset zeroes the scratch buffers without shrinking their capacity.
func (m *MPM) Reset() {
	for i := range m.nsdf {
		m.acf[i] = 0
		m.r[i] = 0
		m.nsdf[i] = 0
	}
	m.peaks = m.peaks[:0]
}

// Detect implements Detector.
func (m *MPM) Detect(frame []float32, sampleRate float32) (Result, bool) {
	n := len(frame)
	if n == 0 || sampleRate <= 0 {
		return Result{}, false
	}

	half := n / 2
	maxTau := int(sampleRate / m.cfg.MinFreq)
	if maxTau >= half {
		return Result{}, false
	}

	if half > m.hwm {
		if m.hwm != 0 {
			return Result{}, false
		}
		m.acf = make([]float32, half)
		m.r = make([]float32, half)
		m.nsdf = make([]float32, half)
		m.peaks = make([]int, 0, half)
		m.hwm = half
	}
	acf := m.acf[:half]
	r := m.r[:half]
	nsdf := m.nsdf[:half]

	// ACF(tau) and r(tau), computed exactly as specified (not the O(N)
	// incremental fast path) to keep the order-of-summation guarantee.
	for tau := 0; tau < half; tau++ {
		var sum float32
		for j := 0; j < half; j++ {
			sum += frame[j] * frame[j+tau]
		}
		acf[tau] = sum

		var sum1, sum2 float32
		for j := 0; j < half; j++ {
			sum1 += frame[j] * frame[j]
			sum2 += frame[j+tau] * frame[j+tau]
		}
		r[tau] = sum1 + sum2
	}

	for tau := 0; tau < half; tau++ {
		if r[tau] > 0 {
			nsdf[tau] = 2 * acf[tau] / r[tau]
		} else {
			nsdf[tau] = 0
		}
	}

	peaks := m.findPeaks(nsdf)
	if len(peaks) == 0 {
		return Result{}, false
	}

	// Only peaks whose tau maps into [MinFreq, MaxFreq] are candidates.
	minTau := minValidTau(sampleRate, m.cfg.MaxFreq)
	bestTau := -1
	var bestVal float32
	for _, p := range peaks {
		if p < minTau || p > maxTau {
			continue
		}
		if bestTau < 0 || nsdf[p] > bestVal {
			bestVal = nsdf[p]
			bestTau = p
		}
	}
	if bestTau < 0 {
		return Result{}, false
	}

	refined := float32(bestTau)
	if bestTau > 0 && bestTau < half-1 {
		refined += parabolicPeak(nsdf[bestTau-1], nsdf[bestTau], nsdf[bestTau+1])
	}
	if refined <= 0 {
		return Result{}, false
	}

	result := Result{
		Frequency:  sampleRate / refined,
		Confidence: clamp01(bestVal),
	}
	if !result.valid() {
		return Result{}, false
	}
	return result, true
}

// findPeaks locates positive-going zero crossings of nsdf, finds the
// local maximum from each crossing up to (not including) the next, and retains
// those at or above the configured threshold. peaks is reused across
// calls.
func (m *MPM) findPeaks(nsdf []float32) []int {
	m.peaks = m.peaks[:0]

	prevCrossing := -1
	for i := 1; i < len(nsdf); i++ {
		if nsdf[i-1] <= 0 && nsdf[i] > 0 {
			if prevCrossing >= 0 {
				maxIdx := prevCrossing
				maxVal := nsdf[prevCrossing]
				for j := prevCrossing + 1; j < i; j++ {
					if nsdf[j] > maxVal {
						maxVal = nsdf[j]
						maxIdx = j
					}
				}
				if maxVal >= m.cfg.Threshold {
					m.peaks = append(m.peaks, maxIdx)
				}
			}
			prevCrossing = i
		}
	}

	return m.peaks
}

// minValidTau returns the smallest tau whose implied frequency does not
// exceed maxFreq, mirroring YIN's minTau guard so MPM cannot report a
// frequency above its configured ceiling.
func minValidTau(sampleRate, maxFreq float32) int {
	if maxFreq <= 0 {
		return 0
	}
	return int(sampleRate / maxFreq)
}
