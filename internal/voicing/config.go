package voicing

import (
	"errors"
	"fmt"
)

// Fret is a fret number on the ukulele neck, 0 meaning the open string.
type Fret uint8

// ErrInvalidConfig is returned when a Config describes an impossible
// fret range.
var ErrInvalidConfig = errors.New("invalid voicing config")

// Config holds the constraints applied while generating voicings.
type Config struct {
	Tuning  Tuning
	MinFret Fret
	MaxFret Fret
	MaxSpan Fret
}

// DefaultConfig covers the first twelve frets in C tuning with a span
// of at most four frets.
func DefaultConfig() Config {
	return Config{
		Tuning:  TuningC,
		MinFret: 0,
		MaxFret: 12,
		MaxSpan: 4,
	}
}

// Validate reports whether the fret range is usable.
func (c Config) Validate() error {
	if c.MaxFret < c.MinFret {
		return fmt.Errorf("%w: min fret %d exceeds max fret %d", ErrInvalidConfig, c.MinFret, c.MaxFret)
	}
	return nil
}
