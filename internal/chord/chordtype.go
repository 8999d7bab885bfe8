// Package chord models chords as a root note plus a chord type from a
// fixed catalog. It covers symbol parsing, transposition and the
// reverse lookup from pitch classes back to chords.
package chord

import (
	"errors"
	"fmt"

	"github.com/fretline/fretline/internal/music"
)

// Errors reported by chord lookup operations.
var (
	// ErrUnrecognizedChordType means a chord symbol matched no entry in
	// the catalog.
	ErrUnrecognizedChordType = errors.New("unrecognized chord type")
	// ErrNoMatchingChordType means a set of pitch classes spells no
	// chord type in the catalog.
	ErrNoMatchingChordType = errors.New("no matching chord type")
)

// Type identifies a chord type from the catalog. The constant order
// fixes both the listing order and the priority used when matching
// pitch classes against the catalog.
type Type int

const (
	Major Type = iota
	MajorSeventh
	MajorNinth
	MajorEleventh
	MajorThirteenth
	MajorSixth
	SixthNinth
	DominantSeventh
	DominantNinth
	DominantEleventh
	DominantThirteenth
	DominantSeventhFlatNinth
	DominantSeventhSharpNinth
	DominantSeventhFlatFifth
	SuspendedFourth
	SuspendedSecond
	DominantSeventhSuspendedFourth
	DominantSeventhSuspendedSecond
	Minor
	MinorSeventh
	MinorMajorSeventh
	MinorSixth
	MinorNinth
	MinorEleventh
	MinorThirteenth
	Diminished
	DiminishedSeventh
	HalfDiminishedSeventh
	Fifth
	Augmented
	AugmentedSeventh
	AugmentedMajorSeventh
	AddedNinth
	AddedFourth
)

// Local shorthand for the interval tables below.
const (
	p1    = music.PerfectUnison
	maj2  = music.MajorSecond
	min3  = music.MinorThird
	maj3  = music.MajorThird
	p4    = music.PerfectFourth
	dim5  = music.DiminishedFifth
	p5    = music.PerfectFifth
	aug5  = music.AugmentedFifth
	maj6  = music.MajorSixth
	dim7  = music.DiminishedSeventh
	min7  = music.MinorSeventh
	maj7  = music.MajorSeventh
	min9  = music.MinorNinth
	maj9  = music.MajorNinth
	aug9  = music.AugmentedNinth
	p11   = music.PerfectEleventh
	maj13 = music.MajorThirteenth
)

// chordTypes defines the catalog. Required intervals must all sound
// for a voicing to count as the chord; optional intervals may sound
// but may also be dropped when the instrument runs out of strings.
// The first symbol of each entry is the canonical one.
var chordTypes = [...]struct {
	name     string
	symbols  []string
	required []music.Interval
	optional []music.Interval
}{
	Major: {
		name:     "major",
		symbols:  []string{"", "maj", "M"},
		required: []music.Interval{p1, maj3, p5},
	},
	MajorSeventh: {
		name:     "major 7th",
		symbols:  []string{"maj7", "M7"},
		required: []music.Interval{p1, maj3, maj7},
		optional: []music.Interval{p5},
	},
	MajorNinth: {
		name:     "major 9th",
		symbols:  []string{"maj9", "M9"},
		required: []music.Interval{p1, maj3, maj7, maj9},
		optional: []music.Interval{p5},
	},
	MajorEleventh: {
		name:     "major 11th",
		symbols:  []string{"maj11", "M11"},
		required: []music.Interval{p1, maj3, maj7, p11},
		optional: []music.Interval{p5, maj9},
	},
	MajorThirteenth: {
		name:     "major 13th",
		symbols:  []string{"maj13", "M13"},
		required: []music.Interval{p1, maj3, maj7, maj13},
		optional: []music.Interval{p5, maj9, p11},
	},
	MajorSixth: {
		name:     "major 6th",
		symbols:  []string{"6", "maj6", "M6"},
		required: []music.Interval{p1, maj3, p5, maj6},
	},
	SixthNinth: {
		name:     "6th/9th",
		symbols:  []string{"6/9", "6add9"},
		required: []music.Interval{p1, maj3, maj6, maj9},
		optional: []music.Interval{p5},
	},
	DominantSeventh: {
		name:     "dominant 7th",
		symbols:  []string{"7", "dom"},
		required: []music.Interval{p1, maj3, min7},
		optional: []music.Interval{p5},
	},
	DominantNinth: {
		name:     "dominant 9th",
		symbols:  []string{"9"},
		required: []music.Interval{p1, maj3, min7, maj9},
		optional: []music.Interval{p5},
	},
	DominantEleventh: {
		name:     "dominant 11th",
		symbols:  []string{"11"},
		required: []music.Interval{p1, maj3, min7, p11},
		optional: []music.Interval{p5, maj9},
	},
	DominantThirteenth: {
		name:     "dominant 13th",
		symbols:  []string{"13"},
		required: []music.Interval{p1, maj3, min7, maj13},
		optional: []music.Interval{p5, maj9, p11},
	},
	DominantSeventhFlatNinth: {
		name:     "dominant 7th flat 9th",
		symbols:  []string{"7b9"},
		required: []music.Interval{p1, maj3, min7, min9},
		optional: []music.Interval{p5},
	},
	DominantSeventhSharpNinth: {
		name:     "dominant 7th sharp 9th",
		symbols:  []string{"7#9"},
		required: []music.Interval{p1, maj3, min7, aug9},
		optional: []music.Interval{p5},
	},
	DominantSeventhFlatFifth: {
		name:     "dominant 7th flat 5th",
		symbols:  []string{"7b5", "7dim5"},
		required: []music.Interval{p1, maj3, dim5, min7},
	},
	SuspendedFourth: {
		name:     "suspended 4th",
		symbols:  []string{"sus4", "sus"},
		required: []music.Interval{p1, p4, p5},
	},
	SuspendedSecond: {
		name:     "suspended 2nd",
		symbols:  []string{"sus2"},
		required: []music.Interval{p1, maj2, p5},
	},
	DominantSeventhSuspendedFourth: {
		name:     "dominant 7th suspended 4th",
		symbols:  []string{"7sus4", "7sus"},
		required: []music.Interval{p1, p4, p5, min7},
	},
	DominantSeventhSuspendedSecond: {
		name:     "dominant 7th suspended 2nd",
		symbols:  []string{"7sus2"},
		required: []music.Interval{p1, maj2, p5, min7},
	},
	Minor: {
		name:     "minor",
		symbols:  []string{"m", "min"},
		required: []music.Interval{p1, min3, p5},
	},
	MinorSeventh: {
		name:     "minor 7th",
		symbols:  []string{"m7", "min7"},
		required: []music.Interval{p1, min3, min7},
		optional: []music.Interval{p5},
	},
	MinorMajorSeventh: {
		name:     "minor/major 7th",
		symbols:  []string{"mMaj7", "mM7", "minMaj7"},
		required: []music.Interval{p1, min3, maj7},
		optional: []music.Interval{p5},
	},
	MinorSixth: {
		name:     "minor 6th",
		symbols:  []string{"m6", "min6"},
		required: []music.Interval{p1, min3, p5, maj6},
	},
	MinorNinth: {
		name:     "minor 9th",
		symbols:  []string{"m9", "min9"},
		required: []music.Interval{p1, min3, min7, maj9},
		optional: []music.Interval{p5},
	},
	MinorEleventh: {
		name:     "minor 11th",
		symbols:  []string{"m11", "min11"},
		required: []music.Interval{p1, min3, min7, p11},
		optional: []music.Interval{p5, maj9},
	},
	MinorThirteenth: {
		name:     "minor 13th",
		symbols:  []string{"m13", "min13"},
		required: []music.Interval{p1, min3, min7, maj13},
		optional: []music.Interval{p5, maj9, p11},
	},
	Diminished: {
		name:     "diminished",
		symbols:  []string{"dim"},
		required: []music.Interval{p1, min3, dim5},
	},
	DiminishedSeventh: {
		name:     "diminished 7th",
		symbols:  []string{"dim7"},
		required: []music.Interval{p1, min3, dim5, dim7},
	},
	HalfDiminishedSeventh: {
		name:     "half-diminished 7th",
		symbols:  []string{"m7b5"},
		required: []music.Interval{p1, min3, dim5, min7},
	},
	Fifth: {
		name:     "5th",
		symbols:  []string{"5"},
		required: []music.Interval{p1, p5},
	},
	Augmented: {
		name:     "augmented",
		symbols:  []string{"aug", "+"},
		required: []music.Interval{p1, maj3, aug5},
	},
	AugmentedSeventh: {
		name:     "augmented 7th",
		symbols:  []string{"aug7", "7#5"},
		required: []music.Interval{p1, maj3, aug5, min7},
	},
	AugmentedMajorSeventh: {
		name:     "augmented major 7th",
		symbols:  []string{"augMaj7", "+M7"},
		required: []music.Interval{p1, maj3, aug5, maj7},
	},
	AddedNinth: {
		name:     "added 9th",
		symbols:  []string{"add9", "add2"},
		required: []music.Interval{p1, maj3, p5, maj9},
	},
	AddedFourth: {
		name:     "added 4th",
		symbols:  []string{"add4"},
		required: []music.Interval{p1, maj3, p4, p5},
	},
}

// Types returns all chord types in catalog order.
func Types() []Type {
	types := make([]Type, len(chordTypes))
	for i := range types {
		types[i] = Type(i)
	}
	return types
}

// ParseType matches a chord symbol such as "m7" or "maj9" against the
// catalog. Matching is case-sensitive and exact.
func ParseType(s string) (Type, error) {
	for i, ct := range chordTypes {
		for _, sym := range ct.symbols {
			if s == sym {
				return Type(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnrecognizedChordType, s)
}

// TypeFromPitchClasses determines the chord type spelled by a list of
// pitch classes, with the first entry taken as the root. A type
// matches when all its required intervals are present and no pitch
// class falls outside its full interval set; the first match in
// catalog order wins.
func TypeFromPitchClasses(pitches []music.PitchClass) (Type, error) {
	if len(pitches) == 0 {
		return 0, fmt.Errorf("%w for an empty pitch class list", ErrNoMatchingChordType)
	}
	offered := make(map[music.Semitones]bool, len(pitches))
	for _, pc := range pitches {
		offered[pc.Sub(pitches[0])] = true
	}
	for i := range chordTypes {
		if Type(i).matches(offered) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w for pitch classes %v", ErrNoMatchingChordType, pitches)
}

// matches reports whether the offered root offsets contain all
// required intervals and nothing outside the full interval set.
func (t Type) matches(offered map[music.Semitones]bool) bool {
	required := make(map[music.Semitones]bool)
	full := make(map[music.Semitones]bool)
	for _, iv := range chordTypes[t].required {
		required[wrapSemitones(iv.Semitones())] = true
		full[wrapSemitones(iv.Semitones())] = true
	}
	for _, iv := range chordTypes[t].optional {
		full[wrapSemitones(iv.Semitones())] = true
	}
	for st := range required {
		if !offered[st] {
			return false
		}
	}
	for st := range offered {
		if !full[st] {
			return false
		}
	}
	return true
}

func wrapSemitones(st music.Semitones) music.Semitones {
	return st % music.PitchClassCount
}

// String returns the chord type's long name, e.g. "dominant 7th".
func (t Type) String() string {
	return chordTypes[t].name
}

// Symbol returns the canonical chord symbol, e.g. "m7". The major
// chord's symbol is empty.
func (t Type) Symbol() string {
	return chordTypes[t].symbols[0]
}

// Symbols returns all symbols that parse to this chord type, canonical
// first.
func (t Type) Symbols() []string {
	return append([]string(nil), chordTypes[t].symbols...)
}

// RequiredIntervals returns the intervals every voicing of this chord
// type must sound.
func (t Type) RequiredIntervals() []music.Interval {
	return append([]music.Interval(nil), chordTypes[t].required...)
}

// OptionalIntervals returns the intervals that may be dropped.
func (t Type) OptionalIntervals() []music.Interval {
	return append([]music.Interval(nil), chordTypes[t].optional...)
}

// Intervals returns the full interval set, required and optional
// merged in ascending order.
func (t Type) Intervals() []music.Interval {
	required := chordTypes[t].required
	optional := chordTypes[t].optional
	merged := make([]music.Interval, 0, len(required)+len(optional))
	i, j := 0, 0
	for i < len(required) && j < len(optional) {
		if required[i].Semitones() <= optional[j].Semitones() {
			merged = append(merged, required[i])
			i++
		} else {
			merged = append(merged, optional[j])
			j++
		}
	}
	merged = append(merged, required[i:]...)
	merged = append(merged, optional[j:]...)
	return merged
}
