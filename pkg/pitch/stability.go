package pitch

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SequenceStability summarizes how steady a run of pitch results has been.
// It is a diagnostic for tuning displays and tests, never consulted by a
// Detector or Stabilizer on the hot path. Computing it allocates and is
// O(n) in the number of samples passed in.
type SequenceStability struct {
	MeanFrequency   float32 // Hz
	StdDevFrequency float32 // Hz, sample standard deviation (n-1 denominator)
	CentsSpread     float32 // spread of the sequence expressed in cents around the mean
}

// AnalyzeStability computes SequenceStability over a slice of results,
// ignoring zero-frequency entries (frames where no pitch was detected).
// Returns the zero value if fewer than two valid samples are present.
func AnalyzeStability(results []Result) SequenceStability {
	freqs := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Frequency > 0 {
			freqs = append(freqs, float64(r.Frequency))
		}
	}
	if len(freqs) < 2 {
		return SequenceStability{}
	}

	mean, std := stat.MeanStdDev(freqs, nil)
	if mean <= 0 {
		return SequenceStability{}
	}

	// Cents spread: express one standard deviation as a musical interval
	// around the mean, using the same 1200*log2 relationship the note
	// converter uses for cents-from-reference.
	spread := 1200 * math.Log2(1+std/mean)

	return SequenceStability{
		MeanFrequency:   float32(mean),
		StdDevFrequency: float32(std),
		CentsSpread:     float32(spread),
	}
}
