package preprocess

import "math"

// PeakNormalize scales frame in place so its largest absolute sample
// reaches 1.0. A frame that is all zeros (or below a negligible
// threshold) is left unchanged.
func PeakNormalize(frame []float32) {
	var peak float32
	for _, v := range frame {
		if a := float32(math.Abs(float64(v))); a > peak {
			peak = a
		}
	}
	if peak < 1e-10 {
		return
	}
	for i, v := range frame {
		frame[i] = v / peak
	}
}

// RMSNormalize scales frame in place so its RMS level matches target. A
// frame with negligible RMS is left unchanged.
func RMSNormalize(frame []float32, target float32) {
	var sumSq float64
	for _, v := range frame {
		sumSq += float64(v) * float64(v)
	}
	if len(frame) == 0 {
		return
	}
	rms := float32(math.Sqrt(sumSq / float64(len(frame))))
	if rms < 1e-10 {
		return
	}
	scale := target / rms
	for i, v := range frame {
		frame[i] = v * scale
	}
}
