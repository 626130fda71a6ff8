package pitch

import "fmt"

// HybridStabConfig configures the hybrid stabilizer.
type HybridStabConfig struct {
	BaseAlpha  float32 // EMA smoothing factor before confidence adaptation
	WindowSize int     // median filter window size
}

// DefaultHybridStabConfig matches the reference implementation's defaults.
func DefaultHybridStabConfig() HybridStabConfig {
	return HybridStabConfig{BaseAlpha: 0.3, WindowSize: 5}
}

// Validate checks the config once at construction time.
func (c HybridStabConfig) Validate() error {
	if c.BaseAlpha < 0 || c.BaseAlpha > 1 {
		return fmt.Errorf("pitch: HybridStabConfig.BaseAlpha must be in [0, 1], got %v", c.BaseAlpha)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("pitch: HybridStabConfig.WindowSize must be >= 1, got %v", c.WindowSize)
	}
	return nil
}

// HybridStab feeds each raw Result through an owned Median filter, then
// applies an EMA to the median-filtered value using a confidence-adaptive
// alpha: adaptiveAlpha = clamp(BaseAlpha*(1+confidence), 0, 1). A more
// confident frame is trusted more and smoothed less.
//
// The EMA is applied to the median's output, not to the raw input, so the
// median absorbs spikes before the EMA ever sees them.
type HybridStab struct {
	cfg HybridStabConfig

	median *Median

	ema         Result
	initialized bool
}

var _ Stabilizer = (*HybridStab)(nil)

// NewHybridStab constructs a HybridStab stabilizer, which exclusively owns
// one Median filter sized to cfg.WindowSize.
func NewHybridStab(cfg HybridStabConfig) *HybridStab {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &HybridStab{
		cfg:    cfg,
		median: NewMedian(MedianConfig{WindowSize: cfg.WindowSize}),
	}
}

// Update implements Stabilizer.
func (h *HybridStab) Update(r Result) {
	h.median.Update(r)
	filtered := h.median.GetStabilized()

	if !h.initialized {
		h.ema = filtered
		h.initialized = true
		return
	}

	alpha := clamp01(h.cfg.BaseAlpha * (1 + filtered.Confidence))
	h.ema.Frequency = alpha*filtered.Frequency + (1-alpha)*h.ema.Frequency
	h.ema.Confidence = alpha*filtered.Confidence + (1-alpha)*h.ema.Confidence
}

// GetStabilized implements Stabilizer.
func (h *HybridStab) GetStabilized() Result {
	return h.ema
}

// Reset implements Stabilizer.
func (h *HybridStab) Reset() {
	h.median.Reset()
	h.ema = Result{}
	h.initialized = false
}
