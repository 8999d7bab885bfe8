package music

import "fmt"

const staffPositionCount = 7

// StaffPosition is one of the seven letter positions on a staff. It is
// tracked separately from the pitch class so that derived notes keep a
// musically sensible spelling.
type StaffPosition int

// The seven staff positions, C-rooted like PitchClass.
const (
	CPos StaffPosition = iota
	DPos
	EPos
	FPos
	GPos
	APos
	BPos
)

var staffLetters = [staffPositionCount]string{"C", "D", "E", "F", "G", "A", "B"}

// naturalPitches maps each staff position to the pitch class of its
// unaltered note.
var naturalPitches = [staffPositionCount]PitchClass{C, D, E, F, G, A, B}

// Add returns the staff position n letters above sp.
func (sp StaffPosition) Add(n int) StaffPosition {
	v := (int(sp) + n) % staffPositionCount
	if v < 0 {
		v += staffPositionCount
	}
	return StaffPosition(v)
}

// Note is a pitch class with a concrete spelling. Use Equal for
// musical identity; the spelling only affects display.
type Note struct {
	PitchClass PitchClass
	Staff      StaffPosition
}

// sharpStaff and flatStaff pick a letter for each pitch class when no
// spelling context exists: sharps when climbing, flats when falling.
var (
	sharpStaff = [PitchClassCount]StaffPosition{
		CPos, CPos, DPos, DPos, EPos, FPos, FPos, GPos, GPos, APos, APos, BPos,
	}
	flatStaff = [PitchClassCount]StaffPosition{
		CPos, DPos, DPos, EPos, EPos, FPos, GPos, GPos, APos, APos, BPos, BPos,
	}
)

// NoteFromPitchClass returns the sharp-based spelling of pc.
func NoteFromPitchClass(pc PitchClass) Note {
	return Note{PitchClass: pc, Staff: sharpStaff[pc]}
}

func noteFromPitchClassFlat(pc PitchClass) Note {
	return Note{PitchClass: pc, Staff: flatStaff[pc]}
}

// ParseNote parses a note name: a capital letter A-G followed by an
// optional single "#" or "b".
func ParseNote(s string) (Note, error) {
	if len(s) == 0 || len(s) > 2 {
		return Note{}, fmt.Errorf("invalid note name %q", s)
	}
	staff, ok := staffFromLetter(s[0])
	if !ok {
		return Note{}, fmt.Errorf("invalid note name %q", s)
	}
	pc := naturalPitches[staff]
	if len(s) == 2 {
		switch s[1] {
		case '#':
			pc = pc.Add(1)
		case 'b':
			pc = pc.Add(-1)
		default:
			return Note{}, fmt.Errorf("invalid note name %q", s)
		}
	}
	return Note{PitchClass: pc, Staff: staff}, nil
}

func staffFromLetter(b byte) (StaffPosition, bool) {
	for i, letter := range staffLetters {
		if letter[0] == b {
			return StaffPosition(i), true
		}
	}
	return 0, false
}

// Add returns the note st semitones higher, spelled with sharps.
func (n Note) Add(st Semitones) Note {
	return NoteFromPitchClass(n.PitchClass.Add(st))
}

// Sub returns the note st semitones lower, spelled with flats.
func (n Note) Sub(st Semitones) Note {
	return noteFromPitchClassFlat(n.PitchClass.Add(-st))
}

// AddInterval returns the note an interval above n. The spelling
// follows the interval's staff steps; spellings outside the usual
// range (double accidentals, E# and the like) are replaced by the
// sharp-based name.
func (n Note) AddInterval(iv Interval) Note {
	return noteFrom(n.PitchClass.Add(iv.Semitones()), n.Staff.Add(iv.StaffSteps()))
}

// noteFrom normalizes a pitch class and staff position pair to a
// displayable spelling: naturals, the five sharps and the five flats
// are kept, everything else gets the sharp-based default.
func noteFrom(pc PitchClass, staff StaffPosition) Note {
	switch pc.Sub(naturalPitches[staff]) {
	case 0:
		return Note{PitchClass: pc, Staff: staff}
	case 1, 11:
		if !pc.natural() {
			return Note{PitchClass: pc, Staff: staff}
		}
	}
	return NoteFromPitchClass(pc)
}

// natural reports whether pc is the pitch of an unaltered letter.
func (pc PitchClass) natural() bool {
	return naturalPitches[sharpStaff[pc]] == pc
}

// Equal reports whether both notes name the same pitch class,
// regardless of spelling.
func (n Note) Equal(o Note) bool {
	return n.PitchClass == o.PitchClass
}

// String returns the note's name, e.g. "C#", "Eb", "F".
func (n Note) String() string {
	letter := staffLetters[n.Staff]
	switch n.PitchClass.Sub(naturalPitches[n.Staff]) {
	case 0:
		return letter
	case 1:
		return letter + "#"
	case 2:
		return letter + "##"
	case 10:
		return letter + "bb"
	case 11:
		return letter + "b"
	}
	// Spellings further than a double accidental from their letter do
	// not occur; fall back to the bare sharp name.
	return NoteFromPitchClass(n.PitchClass).String()
}
