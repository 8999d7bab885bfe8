// Package voicing generates playable fingerings for chords on a tuned
// ukulele and measures the hand movement between them.
package voicing

import (
	"fmt"

	"github.com/fretline/fretline/internal/music"
)

// StringCount is the number of strings on a ukulele.
const StringCount = 4

// Tuning identifies one of the supported ukulele tunings. String roots
// are listed in conventional order, closest string first.
type Tuning int

const (
	// TuningC is standard C tuning (g C E A, high g).
	TuningC Tuning = iota
	// TuningD raises every string of the C tuning by two semitones.
	TuningD
	// TuningG is the baritone tuning (D G B E, low D).
	TuningG
)

var tunings = [...]struct {
	name  string
	roots [StringCount]music.PitchClass
	// MIDI note numbers of the open strings.
	pitches [StringCount]uint8
}{
	TuningC: {
		name:    "C",
		roots:   [StringCount]music.PitchClass{music.G, music.C, music.E, music.A},
		pitches: [StringCount]uint8{67, 60, 64, 69},
	},
	TuningD: {
		name:    "D",
		roots:   [StringCount]music.PitchClass{music.A, music.D, music.FSharp, music.B},
		pitches: [StringCount]uint8{69, 62, 66, 71},
	},
	TuningG: {
		name:    "G",
		roots:   [StringCount]music.PitchClass{music.D, music.G, music.B, music.E},
		pitches: [StringCount]uint8{50, 55, 59, 64},
	},
}

// Tunings returns all supported tunings in declaration order.
func Tunings() []Tuning {
	return []Tuning{TuningC, TuningD, TuningG}
}

// ParseTuning matches a tuning name such as "C", "D" or "G".
func ParseTuning(s string) (Tuning, error) {
	for _, t := range Tunings() {
		if tunings[t].name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tuning %q", s)
}

// Roots returns the root note of each string in conventional order.
func (t Tuning) Roots() [StringCount]music.Note {
	var roots [StringCount]music.Note
	for i, pc := range tunings[t].roots {
		roots[i] = music.NoteFromPitchClass(pc)
	}
	return roots
}

// OpenPitches returns the MIDI note number sounded by each open string.
func (t Tuning) OpenPitches() [StringCount]uint8 {
	return tunings[t].pitches
}

func (t Tuning) String() string {
	return tunings[t].name
}
