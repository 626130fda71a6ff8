package note

import (
	"math"
	"testing"
)

func TestFrequencyToNoteConcertA(t *testing.T) {
	info := FrequencyToNote(440, 440)
	if info.Name != "A" || info.Octave != 4 {
		t.Errorf("FrequencyToNote(440, 440) = %+v, want A4", info)
	}
	if math.Abs(float64(info.Cents)) > 1e-3 {
		t.Errorf("Cents = %v, want ~0 for an exact match", info.Cents)
	}
}

func TestFrequencyToNoteSharpDeviation(t *testing.T) {
	info := FrequencyToNote(445, 440)
	if info.Name != "A" || info.Octave != 4 {
		t.Errorf("FrequencyToNote(445, 440) = %+v, want A4 with positive cents", info)
	}
	if info.Cents <= 0 {
		t.Errorf("Cents = %v, want > 0 for a sharp frequency", info.Cents)
	}
}

func TestFrequencyToNoteRejectsNonPositiveInputs(t *testing.T) {
	if info := FrequencyToNote(0, 440); info != (Info{}) {
		t.Errorf("FrequencyToNote(0, 440) = %+v, want zero value", info)
	}
	if info := FrequencyToNote(440, 0); info != (Info{}) {
		t.Errorf("FrequencyToNote(440, 0) = %+v, want zero value", info)
	}
}

func TestRoundTripAllNotesAndOctaves(t *testing.T) {
	for _, name := range noteNames {
		for octave := 0; octave < 10; octave++ {
			freq, err := NoteToFrequency(name, octave, 440)
			if err != nil {
				t.Fatalf("NoteToFrequency(%q, %d) returned error: %v", name, octave, err)
			}

			info := FrequencyToNote(freq, 440)
			if math.Abs(float64(info.Cents)) > 1e-3 {
				t.Errorf("round trip for %s%d: cents = %v, want ~0", name, octave, info.Cents)
			}
			if info.Name != name || info.Octave != octave {
				t.Errorf("round trip for %s%d landed on %s%d", name, octave, info.Name, info.Octave)
			}
		}
	}
}

func TestNoteToFrequencyRejectsInvalidName(t *testing.T) {
	if _, err := NoteToFrequency("H", 4, 440); err == nil {
		t.Errorf("expected an error for an invalid note name")
	}
}

func TestFrequencyToCentsSymmetry(t *testing.T) {
	up := FrequencyToCents(440, 220)
	down := FrequencyToCents(220, 440)

	if math.Abs(float64(up-1200)) > 1e-2 {
		t.Errorf("FrequencyToCents(440, 220) = %v, want ~1200 (one octave up)", up)
	}
	if math.Abs(float64(down+1200)) > 1e-2 {
		t.Errorf("FrequencyToCents(220, 440) = %v, want ~-1200", down)
	}
}

func TestFrequencyToCentsRejectsNonPositiveInputs(t *testing.T) {
	if c := FrequencyToCents(0, 440); c != 0 {
		t.Errorf("FrequencyToCents(0, 440) = %v, want 0", c)
	}
	if c := FrequencyToCents(440, -1); c != 0 {
		t.Errorf("FrequencyToCents(440, -1) = %v, want 0", c)
	}
}

func TestMidiToName(t *testing.T) {
	name, err := MidiToName(69)
	if err != nil || name != "A" {
		t.Errorf("MidiToName(69) = (%q, %v), want (A, nil)", name, err)
	}

	name, err = MidiToName(60)
	if err != nil || name != "C" {
		t.Errorf("MidiToName(60) = (%q, %v), want (C, nil)", name, err)
	}
}

func TestMidiToNameRejectsOutOfRange(t *testing.T) {
	if _, err := MidiToName(-1); err == nil {
		t.Errorf("expected error for midi note -1")
	}
	if _, err := MidiToName(128); err == nil {
		t.Errorf("expected error for midi note 128")
	}
}

func TestNameToMidiSharps(t *testing.T) {
	midi, err := NameToMidi("A", 4)
	if err != nil || midi != 69 {
		t.Errorf("NameToMidi(A, 4) = (%d, %v), want (69, nil)", midi, err)
	}

	midi, err = NameToMidi("C", 4)
	if err != nil || midi != 60 {
		t.Errorf("NameToMidi(C, 4) = (%d, %v), want (60, nil)", midi, err)
	}
}

func TestNameToMidiFlats(t *testing.T) {
	// Bb is enharmonically A#.
	bFlat, err := NameToMidi("Bb", 4)
	if err != nil {
		t.Fatalf("NameToMidi(Bb, 4) returned error: %v", err)
	}
	aSharp, err := NameToMidi("A#", 4)
	if err != nil {
		t.Fatalf("NameToMidi(A#, 4) returned error: %v", err)
	}
	if bFlat != aSharp {
		t.Errorf("NameToMidi(Bb, 4) = %d, want to match A#4 = %d", bFlat, aSharp)
	}
}

func TestNameToMidiRejectsUnknownName(t *testing.T) {
	if _, err := NameToMidi("H", 4); err == nil {
		t.Errorf("expected an error for an unrecognized note name")
	}
	if _, err := NameToMidi("Xb", 4); err == nil {
		t.Errorf("expected an error for an unrecognized flat spelling")
	}
}
