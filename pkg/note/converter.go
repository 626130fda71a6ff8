// Package note provides pure frequency/note conversion helpers: the
// boundary collaborator referenced by the pitch core but kept outside it.
// Nothing here allocates meaningfully or blocks; these are ordinary
// arithmetic functions meant to be called from UI/display code, not the
// audio callback.
package note

import (
	"fmt"
	"math"
)

// noteNames is the chromatic scale starting at C, matching standard MIDI
// pitch-class ordering.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

const (
	a4MIDI            = 69
	semitonesPerOctave = 12.0
	centsPerSemitone   = 100.0
)

// Info describes a frequency's nearest musical note.
type Info struct {
	Name      string  // e.g. "A", "C#"
	Octave    int
	Cents     float32 // deviation from the nearest note, roughly [-50, 50]
	Frequency float32 // the nearest note's exact target frequency, Hz
}

// FrequencyToNote finds the nearest note to frequency given a reference
// A4 tuning. Returns the zero Info for a non-positive frequency or
// reference.
func FrequencyToNote(frequency, a4Frequency float32) Info {
	if frequency <= 0 || a4Frequency <= 0 {
		return Info{}
	}

	semitonesFromA4 := semitonesPerOctave * math.Log2(float64(frequency/a4Frequency))

	nearestMIDI := int32(math.Round(semitonesFromA4)) + a4MIDI
	nearestFrequency := a4Frequency * float32(math.Pow(2, float64(nearestMIDI-a4MIDI)/semitonesPerOctave))
	cents := FrequencyToCents(frequency, nearestFrequency)

	noteIndex := ((nearestMIDI % 12) + 12) % 12
	octave := nearestMIDI/12 - 1

	return Info{
		Name:      noteNames[noteIndex],
		Octave:    int(octave),
		Cents:     cents,
		Frequency: nearestFrequency,
	}
}

// NoteToFrequency returns the frequency of a named note in a given octave,
// relative to a4Frequency.
func NoteToFrequency(noteName string, octave int, a4Frequency float32) (float32, error) {
	midi, err := NameToMidi(noteName, octave)
	if err != nil {
		return 0, err
	}
	semitonesFromA4 := float32(midi - a4MIDI)
	return a4Frequency * float32(math.Pow(2, float64(semitonesFromA4)/semitonesPerOctave)), nil
}

// FrequencyToCents returns the cent difference between two frequencies,
// positive when frequency1 is sharper than frequency2. Returns 0 if
// either frequency is non-positive.
func FrequencyToCents(frequency1, frequency2 float32) float32 {
	if frequency1 <= 0 || frequency2 <= 0 {
		return 0
	}
	return float32(semitonesPerOctave * centsPerSemitone * math.Log2(float64(frequency1/frequency2)))
}

// MidiToName returns the pitch-class name for a MIDI note number in
// [0, 127]. Returns an error for values outside that range.
func MidiToName(midiNote int) (string, error) {
	if midiNote < 0 || midiNote > 127 {
		return "", fmt.Errorf("note: MIDI note %d out of range [0, 127]", midiNote)
	}
	return noteNames[midiNote%12], nil
}

// NameToMidi parses a note name (e.g. "A", "C#", "Bb") and octave into a
// MIDI note number. Returns an error if the name does not match any
// chromatic pitch class, sharp, or flat spelling.
//
// Flat spellings are resolved by finding the first pitch class after C
// whose name starts with the flat's letter and taking the semitone below
// it. "Fb" therefore resolves to E. For "Cb" the match is "C#", so "Cb"
// resolves to C in the same octave, not to the B below it.
func NameToMidi(noteName string, octave int) (int, error) {
	noteIndex := -1
	for i, n := range noteNames {
		if noteName == n {
			noteIndex = i
			break
		}
	}

	if noteIndex == -1 && len(noteName) == 2 && noteName[1] == 'b' {
		for i, n := range noteNames {
			if i > 0 && noteName[0] == n[0] {
				noteIndex = i - 1
				break
			}
		}
	}

	if noteIndex == -1 {
		return 0, fmt.Errorf("note: invalid note name %q", noteName)
	}

	return (octave+1)*12 + noteIndex, nil
}

