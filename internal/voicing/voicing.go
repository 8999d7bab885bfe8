package voicing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fretline/fretline/internal/chord"
	"github.com/fretline/fretline/internal/music"
	"github.com/fretline/fretline/internal/util"
)

// UkeString is one string's contribution to a fingering: the string's
// root note, the fret being pressed and the note that sounds.
type UkeString struct {
	Root music.Note
	Fret Fret
	Note music.Note
}

// Voicing is a concrete fingering, one fret per string. Voicings are
// immutable once built and totally ordered by (position, span, frets).
type Voicing struct {
	strings [StringCount]UkeString
}

func newVoicing(strings [StringCount]UkeString) Voicing {
	return Voicing{strings: strings}
}

// FromPattern builds the voicing that results from pressing the given
// fret pattern in the given tuning.
func FromPattern(pattern FretPattern, tuning Tuning) Voicing {
	roots := tuning.Roots()
	var ss [StringCount]UkeString
	for i, root := range roots {
		fret := pattern[i]
		ss[i] = UkeString{
			Root: root,
			Fret: fret,
			Note: root.Add(music.Semitones(fret)),
		}
	}
	return newVoicing(ss)
}

// Strings returns the per-string details in tuning order.
func (v Voicing) Strings() []UkeString {
	return v.strings[:]
}

// Frets returns the fret pressed on each string.
func (v Voicing) Frets() [StringCount]Fret {
	var frets [StringCount]Fret
	for i, s := range v.strings {
		frets[i] = s.Fret
	}
	return frets
}

// Notes returns the note sounded by each string.
func (v Voicing) Notes() [StringCount]music.Note {
	var notes [StringCount]music.Note
	for i, s := range v.strings {
		notes[i] = s.Note
	}
	return notes
}

// Position is the lowest pressed fret, or 0 if every string is open.
func (v Voicing) Position() Fret {
	frets := v.Frets()
	pressed := util.FilterZeros(frets[:])
	if len(pressed) == 0 {
		return 0
	}
	position := pressed[0]
	for _, f := range pressed[1:] {
		if f < position {
			position = f
		}
	}
	return position
}

// Span is the fret range covered by the pressed strings.
func (v Voicing) Span() Fret {
	position := v.Position()
	if position == 0 {
		return 0
	}
	return v.MaxFret() - position
}

// MaxFret is the highest fret pressed on any string.
func (v Voicing) MaxFret() Fret {
	var max Fret
	for _, s := range v.strings {
		if s.Fret > max {
			max = s.Fret
		}
	}
	return max
}

// SpellsOut reports whether the voicing sounds all required notes of
// the chord and nothing outside the chord's full note set.
func (v Voicing) SpellsOut(c chord.Chord) bool {
	notes := v.Notes()
	for _, required := range c.RequiredNotes() {
		if !containsNote(notes[:], required) {
			return false
		}
	}
	full := c.Notes()
	for _, note := range notes {
		if !containsNote(full, note) {
			return false
		}
	}
	return true
}

// Chords returns every chord the voicing spells out, trying each
// sounded pitch class as the root in ascending order. The result is
// empty when the sounded notes name no known chord.
func (v Voicing) Chords() []chord.Chord {
	unique := make([]music.PitchClass, 0, StringCount)
	for _, s := range v.strings {
		pc := s.Note.PitchClass
		if !containsPitchClass(unique, pc) {
			unique = append(unique, pc)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	var chords []chord.Chord
	rotated := make([]music.PitchClass, len(unique))
	for i := range unique {
		copy(rotated, unique[i:])
		copy(rotated[len(unique)-i:], unique[:i])
		c, err := chord.FromPitchClasses(rotated)
		if err != nil {
			continue
		}
		chords = append(chords, c)
	}
	return chords
}

// Compare orders voicings by position, then span, then fret numbers in
// string order. It returns -1, 0 or 1.
func (v Voicing) Compare(other Voicing) int {
	if c := compareFrets(v.Position(), other.Position()); c != 0 {
		return c
	}
	if c := compareFrets(v.Span(), other.Span()); c != 0 {
		return c
	}
	for i := range v.strings {
		if c := compareFrets(v.strings[i].Fret, other.strings[i].Fret); c != 0 {
			return c
		}
	}
	return 0
}

func (v Voicing) String() string {
	parts := make([]string, 0, StringCount)
	for _, s := range v.strings {
		parts = append(parts, fmt.Sprintf("%d", s.Fret))
	}
	return strings.Join(parts, " ")
}

func compareFrets(a, b Fret) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func containsNote(notes []music.Note, n music.Note) bool {
	for _, note := range notes {
		if note.Equal(n) {
			return true
		}
	}
	return false
}

func containsPitchClass(pitches []music.PitchClass, pc music.PitchClass) bool {
	for _, p := range pitches {
		if p == pc {
			return true
		}
	}
	return false
}
