package pitch

import "math"

// HybridConfig configures the arbiter that combines YIN and MPM.
type HybridConfig struct {
	YINConfidenceThreshold  float32 // use MPM when YIN confidence falls below this
	EnableHarmonicRejection bool
	HarmonicTolerance       float32 // fraction, e.g. 0.05 = 5%
	YIN                     YINConfig
	MPM                     MPMConfig
}

// DefaultHybridConfig tunes YIN for guitar frequencies (lower threshold
// for reliable low-E detection) and enables harmonic rejection, matching
// the reference hybrid detector's construction-time overrides.
func DefaultHybridConfig() HybridConfig {
	yin := DefaultYINConfig()
	yin.Threshold = 0.10
	yin.MinFreq = 80
	yin.MaxFreq = 1200

	return HybridConfig{
		YINConfidenceThreshold:  0.8,
		EnableHarmonicRejection: true,
		HarmonicTolerance:       0.05,
		YIN:                     yin,
		MPM:                     DefaultMPMConfig(),
	}
}

// guitarFundamentalMin and guitarFundamentalMax bound the range harmonic
// rejection treats as a plausible fundamental.
const (
	guitarFundamentalMin = 80.0
	guitarFundamentalMax = 400.0
)

// harmonicOrders is the ordered set of harmonic factors tried by
// applyHarmonicRejection: closest octave first, so it collapses before
// higher-order harmonics are considered.
var harmonicOrders = [...]int{2, 3, 4}

// Hybrid arbitrates between an owned YIN and an owned MPM detector and
// optionally applies harmonic rejection to the winning frequency.
//
// Strategy: YIN first (cheaper, accurate for stable tones); fall back to
// MPM when YIN's confidence is below threshold; fall back to YIN anyway
// if MPM found nothing. No result is ever invented when both detectors
// fail.
type Hybrid struct {
	cfg HybridConfig
	yin *YIN
	mpm *MPM

	yinUsed int
	mpmUsed int
}

var _ Detector = (*Hybrid)(nil)

// NewHybrid constructs a hybrid detector that exclusively owns one YIN
// and one MPM instance.
func NewHybrid(cfg HybridConfig) *Hybrid {
	return &Hybrid{
		cfg: cfg,
		yin: NewYIN(cfg.YIN),
		mpm: NewMPM(cfg.MPM),
	}
}

// Prepare forwards to both inner detectors.
func (h *Hybrid) Prepare(maxFrameSize int) {
	h.yin.Prepare(maxFrameSize)
	h.mpm.Prepare(maxFrameSize)
}

// Reset forwards to both inner detectors and zeroes the usage counters.
func (h *Hybrid) Reset() {
	h.yin.Reset()
	h.mpm.Reset()
	h.yinUsed = 0
	h.mpmUsed = 0
}

// YINUsed and MPMUsed report how many Detect calls selected each inner
// detector's result. Diagnostic only; not part of the functional result.
func (h *Hybrid) YINUsed() int { return h.yinUsed }
func (h *Hybrid) MPMUsed() int { return h.mpmUsed }

// Detect implements Detector.
func (h *Hybrid) Detect(frame []float32, sampleRate float32) (Result, bool) {
	if len(frame) == 0 || sampleRate <= 0 {
		return Result{}, false
	}

	yinResult, yinOK := h.yin.Detect(frame, sampleRate)

	var result Result
	var ok bool

	switch {
	case yinOK && yinResult.Confidence >= h.cfg.YINConfidenceThreshold:
		result, ok = yinResult, true
		h.yinUsed++
	default:
		if mpmResult, mpmOK := h.mpm.Detect(frame, sampleRate); mpmOK {
			result, ok = mpmResult, true
			h.mpmUsed++
		} else if yinOK {
			result, ok = yinResult, true
			h.yinUsed++
		}
	}

	if !ok {
		return Result{}, false
	}

	if h.cfg.EnableHarmonicRejection {
		corrected := h.applyHarmonicRejection(result.Frequency)
		if math.Abs(float64(corrected-result.Frequency)) > 0.1 {
			result.Frequency = corrected
		}
	}

	return result, true
}

// applyHarmonicRejection checks whether freq is likely an integer
// multiple (2x, 3x, 4x, closest octave first) of a guitar-range
// fundamental and, if so, returns that fundamental instead.
//
// The candidate is freq/k itself, so isHarmonic always passes for it: the
// first k whose freq/k lies in [80, 400] Hz wins. Any freq from 160 to
// 800 Hz is therefore halved (a 440 Hz input returns 220 Hz), and a true
// fundamental in that range is halved as well.
func (h *Hybrid) applyHarmonicRejection(freq float32) float32 {
	for _, k := range harmonicOrders {
		candidate := freq / float32(k)
		if candidate < guitarFundamentalMin || candidate > guitarFundamentalMax {
			continue
		}
		if h.isHarmonic(freq, candidate, k) {
			return candidate
		}
	}
	return freq
}

// isHarmonic reports whether freq1 is approximately harmonicNumber times
// freq2, within the configured tolerance fraction of the expected value.
func (h *Hybrid) isHarmonic(freq1, freq2 float32, harmonicNumber int) bool {
	expected := freq2 * float32(harmonicNumber)
	diff := float32(math.Abs(float64(freq1 - expected)))
	tolerance := expected * h.cfg.HarmonicTolerance
	return diff <= tolerance
}
