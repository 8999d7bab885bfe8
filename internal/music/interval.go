package music

// Interval is a named scale degree relative to a chord root. Each
// interval carries both its chromatic size and the number of staff
// letters it spans, so that adding an interval to a note yields the
// conventional spelling (Db plus a major 3rd is F, not E#).
type Interval int

// The catalog of intervals, ascending by chromatic size.
const (
	PerfectUnison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	AugmentedFourth
	DiminishedFifth
	PerfectFifth
	AugmentedFifth
	MinorSixth
	MajorSixth
	DiminishedSeventh
	MinorSeventh
	MajorSeventh
	PerfectOctave
	MinorNinth
	MajorNinth
	AugmentedNinth
	PerfectEleventh
	MajorThirteenth
)

var intervals = [...]struct {
	name       string
	semitones  Semitones
	staffSteps int
}{
	PerfectUnison:     {"perfect unison", 0, 0},
	MinorSecond:       {"minor 2nd", 1, 1},
	MajorSecond:       {"major 2nd", 2, 1},
	MinorThird:        {"minor 3rd", 3, 2},
	MajorThird:        {"major 3rd", 4, 2},
	PerfectFourth:     {"perfect 4th", 5, 3},
	AugmentedFourth:   {"augmented 4th", 6, 3},
	DiminishedFifth:   {"diminished 5th", 6, 4},
	PerfectFifth:      {"perfect 5th", 7, 4},
	AugmentedFifth:    {"augmented 5th", 8, 4},
	MinorSixth:        {"minor 6th", 8, 5},
	MajorSixth:        {"major 6th", 9, 5},
	DiminishedSeventh: {"diminished 7th", 9, 6},
	MinorSeventh:      {"minor 7th", 10, 6},
	MajorSeventh:      {"major 7th", 11, 6},
	PerfectOctave:     {"perfect octave", 12, 7},
	MinorNinth:        {"minor 9th", 13, 8},
	MajorNinth:        {"major 9th", 14, 8},
	AugmentedNinth:    {"augmented 9th", 15, 8},
	PerfectEleventh:   {"perfect 11th", 17, 10},
	MajorThirteenth:   {"major 13th", 21, 12},
}

// Semitones returns the chromatic size of the interval. Compound
// intervals (9th and up) are larger than an octave; reduce via
// PitchClass arithmetic where only the pitch class matters.
func (i Interval) Semitones() Semitones {
	return intervals[i].semitones
}

// StaffSteps returns the number of staff letters the interval spans.
func (i Interval) StaffSteps() int {
	return intervals[i].staffSteps
}

// String returns the interval's name, e.g. "minor 3rd".
func (i Interval) String() string {
	return intervals[i].name
}
