package chord

import (
	"fmt"
	"strings"
)

// Sequence is an ordered progression of chords.
type Sequence []Chord

// ParseSequence reads a whitespace-separated list of chord names such
// as "C F G C".
func ParseSequence(s string) (Sequence, error) {
	names := strings.Fields(s)
	if len(names) == 0 {
		return nil, fmt.Errorf("empty chord sequence %q", s)
	}
	seq := make(Sequence, len(names))
	for i, name := range names {
		c, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse chord sequence %q: %w", s, err)
		}
		seq[i] = c
	}
	return seq, nil
}

// Transpose returns the sequence with every chord moved by n
// semitones.
func (s Sequence) Transpose(n int) Sequence {
	out := make(Sequence, len(s))
	for i, c := range s {
		out[i] = c.Transpose(n)
	}
	return out
}

// String returns the chord names joined by spaces.
func (s Sequence) String() string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name()
	}
	return strings.Join(names, " ")
}
