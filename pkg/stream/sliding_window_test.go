package stream

import "testing"

func TestSlidingWindowNonOverlapping(t *testing.T) {
	sw := NewSlidingWindow(4, 4)

	var frames [][]float32
	sw.AddSamples([]float32{1, 2, 3, 4, 5, 6, 7, 8}, func(frame []float32) {
		cp := make([]float32, len(frame))
		copy(cp, frame)
		frames = append(frames, cp)
	})

	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0][0] != 1 || frames[0][3] != 4 {
		t.Errorf("frame 0 = %v, want [1 2 3 4]", frames[0])
	}
	if frames[1][0] != 5 || frames[1][3] != 8 {
		t.Errorf("frame 1 = %v, want [5 6 7 8]", frames[1])
	}
}

func TestSlidingWindowOverlapping(t *testing.T) {
	sw := NewSlidingWindow(4, 2)

	var frames [][]float32
	record := func(frame []float32) {
		cp := make([]float32, len(frame))
		copy(cp, frame)
		frames = append(frames, cp)
	}

	sw.AddSamples([]float32{1, 2, 3, 4, 5, 6}, record)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}

	sw.AddSamples([]float32{7, 8}, record)
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}

	wantFrames := [][]float32{{1, 2, 3, 4}, {3, 4, 5, 6}, {5, 6, 7, 8}}
	for i, want := range wantFrames {
		for j, v := range want {
			if frames[i][j] != v {
				t.Errorf("frame %d = %v, want %v", i, frames[i], want)
				break
			}
		}
	}
}

func TestSlidingWindowReset(t *testing.T) {
	sw := NewSlidingWindow(4, 4)
	sw.AddSamples([]float32{1, 2}, func([]float32) {})
	sw.Reset()

	var frames [][]float32
	sw.AddSamples([]float32{9, 9, 9, 9}, func(frame []float32) {
		cp := make([]float32, len(frame))
		copy(cp, frame)
		frames = append(frames, cp)
	})
	if len(frames) != 1 || frames[0][0] != 9 {
		t.Errorf("expected reset to clear partial state, got frames=%v", frames)
	}
}

func TestNewSlidingWindowPanicsOnInvalidHop(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for hopSize > windowSize")
		}
	}()
	NewSlidingWindow(4, 5)
}
