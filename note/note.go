// Package note maps note names to MIDI note numbers. The octave
// numbers -2 to 8 are not defined by MIDI itself, it's just what some
// vendors of instruments and audio workstation software use. The
// middle C (MIDI Note 60) in this mapping is C(3).
package note

import "strconv"

const OctaveOfMiddleC = 3

func C(octave int8) uint8 {
	return uint8((int(octave) + OctaveOfMiddleC - 1) * 12)
}

func Cs(octave int8) uint8 {
	return C(octave) + 1
}

func D(octave int8) uint8 {
	return C(octave) + 2
}

func Ds(octave int8) uint8 {
	return C(octave) + 3
}

func E(octave int8) uint8 {
	return C(octave) + 4
}

func F(octave int8) uint8 {
	return C(octave) + 5
}

func Fs(octave int8) uint8 {
	return C(octave) + 6
}

func G(octave int8) uint8 {
	return C(octave) + 7
}

func Gs(octave int8) uint8 {
	return C(octave) + 8
}

func A(octave int8) uint8 {
	return C(octave) + 9
}

func As(octave int8) uint8 {
	return C(octave) + 10
}

func B(octave int8) uint8 {
	return C(octave) + 11
}

var names = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name returns a human-readable note name like "C3" for MIDI note 60.
func Name(note uint8) string {
	octave := int(note)/12 - OctaveOfMiddleC + 1
	return names[note%12] + strconv.Itoa(octave)
}
