package pitch

import "fmt"

// MedianConfig configures the median filter stabilizer.
type MedianConfig struct {
	WindowSize int // number of recent results retained, >= 1
}

// DefaultMedianConfig returns a 5-sample window, matching the reference
// implementation's default.
func DefaultMedianConfig() MedianConfig {
	return MedianConfig{WindowSize: 5}
}

// Validate checks the config once at construction time.
func (c MedianConfig) Validate() error {
	if c.WindowSize < 1 {
		return fmt.Errorf("pitch: MedianConfig.WindowSize must be >= 1, got %v", c.WindowSize)
	}
	return nil
}

// Median smooths a Result stream by taking the median of the last
// WindowSize frequencies and, independently, the median of the last
// WindowSize confidences. It rejects single-sample spikes that an EMA
// would only dampen: a window of [100, 100, 5000, 100, 100] medians to
// 100.
//
// The backing window is a fixed-capacity ring buffer allocated once at
// construction; Update never allocates. Sorting happens on a pair of
// reusable scratch slices sized to WindowSize, of which only the first
// sampleCount entries are used, so an under-filled window (at stream
// start) sorts only its active samples.
type Median struct {
	cfg MedianConfig

	window      []Result
	writeIndex  int
	sampleCount int

	freqScratch []float32
	confScratch []float32
}

var _ Stabilizer = (*Median)(nil)

// NewMedian constructs a Median stabilizer.
func NewMedian(cfg MedianConfig) *Median {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Median{
		cfg:         cfg,
		window:      make([]Result, cfg.WindowSize),
		freqScratch: make([]float32, cfg.WindowSize),
		confScratch: make([]float32, cfg.WindowSize),
	}
}

// Update implements Stabilizer.
func (m *Median) Update(r Result) {
	m.window[m.writeIndex] = r
	m.writeIndex = (m.writeIndex + 1) % len(m.window)
	if m.sampleCount < len(m.window) {
		m.sampleCount++
	}
}

// GetStabilized implements Stabilizer.
func (m *Median) GetStabilized() Result {
	if m.sampleCount == 0 {
		return Result{}
	}

	freqs := m.freqScratch[:m.sampleCount]
	confs := m.confScratch[:m.sampleCount]
	for i := 0; i < m.sampleCount; i++ {
		freqs[i] = m.window[i].Frequency
		confs[i] = m.window[i].Confidence
	}

	insertionSort(freqs)
	insertionSort(confs)

	return Result{
		Frequency:  medianOf(freqs),
		Confidence: medianOf(confs),
	}
}

// insertionSort sorts v ascending in place. Quadratic, but allocation-free
// and faster than a generic sort for the small windows (typically <= 15
// samples) this stabilizer runs over, unlike sort.Slice which heap-allocates
// its comparator closure on every call.
func insertionSort(v []float32) {
	for i := 1; i < len(v); i++ {
		key := v[i]
		j := i - 1
		for j >= 0 && v[j] > key {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = key
	}
}

// medianOf returns the median of an already-sorted, non-empty slice.
func medianOf(sorted []float32) float32 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Reset implements Stabilizer.
func (m *Median) Reset() {
	for i := range m.window {
		m.window[i] = Result{}
	}
	m.writeIndex = 0
	m.sampleCount = 0
}
