// Package music provides the pitch, interval and note primitives that
// chords and voicings are built from.
package music

// Semitones counts steps on the chromatic scale.
type Semitones int

// PitchClassCount is the size of the chromatic scale.
const PitchClassCount = 12

// PitchClass is one of the twelve chromatic pitches, identified
// independent of octave. Arithmetic wraps around the mod-12 circle.
type PitchClass int

// The twelve pitch classes.
const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var pitchClassNames = [PitchClassCount]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Add returns the pitch class n semitones above pc.
func (pc PitchClass) Add(n Semitones) PitchClass {
	return wrapPitchClass(int(pc) + int(n))
}

// Sub returns the number of semitones from other up to pc, counted
// upwards around the circle. The result is always in [0, 11].
func (pc PitchClass) Sub(other PitchClass) Semitones {
	return Semitones(wrapPitchClass(int(pc) - int(other)))
}

// String returns the sharp-based name of the pitch class.
func (pc PitchClass) String() string {
	return pitchClassNames[wrapPitchClass(int(pc))]
}

func wrapPitchClass(v int) PitchClass {
	v %= PitchClassCount
	if v < 0 {
		v += PitchClassCount
	}
	return PitchClass(v)
}
