// Package midifile exports chord voicings as standard MIDI files.
package midifile

import (
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/fretline/fretline/internal/voicing"
)

const (
	ticksPerQuarter = 960

	// DefaultTempo is the playback tempo in beats per minute.
	DefaultTempo = 120.0
	// DefaultVelocity is the attack velocity of every note.
	DefaultVelocity uint8 = 90
)

// Options control how voicings are rendered to MIDI.
type Options struct {
	// Name becomes the track sequence name.
	Name string
	// Tempo in beats per minute; DefaultTempo when zero.
	Tempo float64
	// Velocity of every note; DefaultVelocity when zero.
	Velocity uint8
}

// StringPitches returns the MIDI note number sounded by each string of
// the voicing.
func StringPitches(v voicing.Voicing, tuning voicing.Tuning) [voicing.StringCount]uint8 {
	open := tuning.OpenPitches()
	var pitches [voicing.StringCount]uint8
	for i, s := range v.Strings() {
		pitches[i] = open[i] + uint8(s.Fret)
	}
	return pitches
}

// Build assembles a single-track MIDI file that plays each voicing as
// a whole-note block chord.
func Build(voicings []voicing.Voicing, tuning voicing.Tuning, opts Options) (*smf.SMF, error) {
	if len(voicings) == 0 {
		return nil, fmt.Errorf("no voicings to export")
	}
	tempo := opts.Tempo
	if tempo <= 0 {
		tempo = DefaultTempo
	}
	velocity := opts.Velocity
	if velocity == 0 {
		velocity = DefaultVelocity
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(opts.Name))
	track.Add(0, smf.MetaTempo(tempo))
	for _, v := range voicings {
		pitches := StringPitches(v, tuning)
		for _, key := range pitches {
			track.Add(0, midi.NoteOn(0, key, velocity))
		}
		for i, key := range pitches {
			var delta uint32
			if i == 0 {
				delta = 4 * ticksPerQuarter
			}
			track.Add(delta, midi.NoteOff(0, key))
		}
	}
	track.Close(0)
	s.Add(track)
	return s, nil
}

// Write renders the voicings to w in SMF format.
func Write(w io.Writer, voicings []voicing.Voicing, tuning voicing.Tuning, opts Options) error {
	s, err := Build(voicings, tuning, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write midi data: %w", err)
	}
	return nil
}

// WriteFile renders the voicings to a MIDI file at path.
func WriteFile(path string, voicings []voicing.Voicing, tuning voicing.Tuning, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create midi file: %w", err)
	}
	if err := Write(f, voicings, tuning, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
