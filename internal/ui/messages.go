package ui

// PitchMsg carries one analysis frame's worth of output from the
// pitch pipeline to the Bubbletea model.
type PitchMsg struct {
	Raw        float32 // raw detector frequency, Hz (0 if undetected)
	Stabilized float32 // stabilizer output, Hz
	Confidence float32

	NoteName string
	Octave   int
	Cents    float32

	UsingYIN bool
	UsingMPM bool

	SpectralCentroid float32 // Hz, auxiliary display only
}

// TickMsg marks one frame tick. Model.Update does not handle it; the
// pipeline goroutine drives the synthetic generator on its own ticker.
type TickMsg struct{}

// QuitMsg requests the program stop, e.g. once a fixed demo duration
// elapses.
type QuitMsg struct{}
