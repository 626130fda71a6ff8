// Package stream turns a continuous sample stream into fixed-size,
// optionally overlapping frames for a Detector to consume. It is a
// feeder for the demo/CLI layer, not part of the pitch core: it owns a
// buffer sized at construction and never grows it afterward.
package stream

import "fmt"

// SlidingWindow accumulates incoming samples into a fixed-size buffer and
// emits a complete frame every time windowSize samples have been seen,
// sliding by hopSize between frames (hopSize < windowSize overlaps
// consecutive frames; hopSize == windowSize produces back-to-back
// non-overlapping frames).
type SlidingWindow struct {
	buffer     []float32
	windowSize int
	hopSize    int
	writePos   int
}

// NewSlidingWindow constructs a window of windowSize samples that emits a
// new frame every hopSize samples. Panics if hopSize is not in
// (0, windowSize].
func NewSlidingWindow(windowSize, hopSize int) *SlidingWindow {
	if hopSize <= 0 || hopSize > windowSize {
		panic(fmt.Errorf("stream: hopSize must be in (0, windowSize], got hopSize=%d windowSize=%d", hopSize, windowSize))
	}
	return &SlidingWindow{
		buffer:     make([]float32, windowSize),
		windowSize: windowSize,
		hopSize:    hopSize,
	}
}

// AddSamples feeds samples into the window and invokes emit once for each
// complete frame produced along the way. The slice passed to emit is
// reused across calls; callers that need to retain it must copy.
func (sw *SlidingWindow) AddSamples(samples []float32, emit func([]float32)) {
	for _, s := range samples {
		sw.buffer[sw.writePos] = s
		sw.writePos++

		if sw.writePos >= sw.windowSize {
			emit(sw.buffer)

			if sw.hopSize < sw.windowSize {
				copy(sw.buffer, sw.buffer[sw.hopSize:])
				sw.writePos = sw.windowSize - sw.hopSize
			} else {
				sw.writePos = 0
			}
		}
	}
}

// Reset clears accumulated samples without releasing the backing buffer.
func (sw *SlidingWindow) Reset() {
	sw.writePos = 0
	for i := range sw.buffer {
		sw.buffer[i] = 0
	}
}

// WindowSize returns the configured frame size.
func (sw *SlidingWindow) WindowSize() int { return sw.windowSize }

// HopSize returns the configured hop size.
func (sw *SlidingWindow) HopSize() int { return sw.hopSize }
