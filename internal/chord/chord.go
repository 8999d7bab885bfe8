package chord

import (
	"fmt"

	"github.com/fretline/fretline/internal/music"
)

// Chord is a chord type rooted at a concrete note, such as C or F#m7.
type Chord struct {
	Root music.Note
	Type Type
}

// New returns the chord of the given type rooted at root.
func New(root music.Note, t Type) Chord {
	return Chord{Root: root, Type: t}
}

// Parse reads a chord name such as "C", "F#m7" or "Ebmaj7". The two
// leading characters are tried as the root note first, then one, and
// the remainder must be a known chord symbol.
func Parse(s string) (Chord, error) {
	for _, n := range []int{2, 1} {
		if len(s) < n {
			continue
		}
		root, err := music.ParseNote(s[:n])
		if err != nil {
			continue
		}
		t, err := ParseType(s[n:])
		if err != nil {
			continue
		}
		return New(root, t), nil
	}
	return Chord{}, fmt.Errorf("could not parse chord name %q: %w", s, ErrUnrecognizedChordType)
}

// FromPitchClasses recovers the chord spelled by a list of pitch
// classes, with the first entry taken as the root.
func FromPitchClasses(pitches []music.PitchClass) (Chord, error) {
	t, err := TypeFromPitchClasses(pitches)
	if err != nil {
		return Chord{}, err
	}
	return New(music.NoteFromPitchClass(pitches[0]), t), nil
}

// Notes returns the chord's full note list, required and optional
// intervals merged in ascending order above the root.
func (c Chord) Notes() []music.Note {
	return c.notes(c.Type.Intervals())
}

// RequiredNotes returns the notes every voicing of the chord must
// sound.
func (c Chord) RequiredNotes() []music.Note {
	return c.notes(c.Type.RequiredIntervals())
}

// PlayedNotes returns the notes played on an instrument with max
// strings: required notes first, then optional ones, truncated to max.
func (c Chord) PlayedNotes(max int) []music.Note {
	intervals := append(c.Type.RequiredIntervals(), c.Type.OptionalIntervals()...)
	if len(intervals) > max {
		intervals = intervals[:max]
	}
	return c.notes(intervals)
}

func (c Chord) notes(intervals []music.Interval) []music.Note {
	notes := make([]music.Note, len(intervals))
	for i, iv := range intervals {
		notes[i] = c.Root.AddInterval(iv)
	}
	return notes
}

// Transpose returns the chord moved by n semitones. Upward moves
// prefer sharp spellings, downward moves prefer flats, and n == 0
// keeps the root's spelling as written.
func (c Chord) Transpose(n int) Chord {
	switch {
	case n == 0:
		return c
	case n < 0:
		return New(c.Root.Sub(music.Semitones(-n)), c.Type)
	default:
		return New(c.Root.Add(music.Semitones(n)), c.Type)
	}
}

// Equal reports whether both chords have the same type and their roots
// name the same pitch class.
func (c Chord) Equal(other Chord) bool {
	return c.Root.Equal(other.Root) && c.Type == other.Type
}

// Name returns the chord's short name, e.g. "C#m7".
func (c Chord) Name() string {
	return c.Root.String() + c.Type.Symbol()
}

// String returns the chord's name and description, e.g.
// "C#m7 - C# minor 7th".
func (c Chord) String() string {
	return fmt.Sprintf("%s - %s %s", c.Name(), c.Root, c.Type)
}
