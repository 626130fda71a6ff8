package spectral

import (
	"fmt"
	"math"
)

// Window produces a set of per-sample weights used to taper a frame
// before an FFT, reducing spectral leakage.
type Window struct {
	size         int
	coefficients []float64
}

// NewHann builds a symmetric Hann window of the given size.
func NewHann(size int) *Window {
	w := &Window{size: size, coefficients: make([]float64, size)}
	denom := float64(size - 1)
	for i := 0; i < size; i++ {
		w.coefficients[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/denom))
	}
	return w
}

// NewHamming builds a Hamming window of the given size.
func NewHamming(size int) *Window {
	w := &Window{size: size, coefficients: make([]float64, size)}
	denom := float64(size - 1)
	for i := 0; i < size; i++ {
		w.coefficients[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/denom)
	}
	return w
}

// Size returns the number of coefficients in the window.
func (w *Window) Size() int { return w.size }

// Apply multiplies signal by the window's coefficients in place. Returns
// an error if the lengths don't match; signal is left unmodified in that
// case.
func (w *Window) Apply(signal []float64) error {
	if len(signal) != w.size {
		return fmt.Errorf("spectral: signal length %d does not match window size %d", len(signal), w.size)
	}
	for i, c := range w.coefficients {
		signal[i] *= c
	}
	return nil
}

// Coefficients returns a copy of the window's weights.
func (w *Window) Coefficients() []float64 {
	out := make([]float64, len(w.coefficients))
	copy(out, w.coefficients)
	return out
}
