package voicing

import (
	"sort"

	"github.com/fretline/fretline/internal/chord"
	"github.com/fretline/fretline/internal/music"
	"github.com/fretline/fretline/internal/util"
)

// Generate enumerates every voicing of the chord that is playable
// under the given config, in ascending (position, span, frets) order.
// An empty result means the chord cannot be played within the
// constraints; it is not an error.
func Generate(c chord.Chord, cfg Config) ([]Voicing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	played := c.PlayedNotes(StringCount)
	roots := cfg.Tuning.Roots()
	candidates := make([][]UkeString, StringCount)
	for i, root := range roots {
		candidates[i] = stringCandidates(root, played, cfg)
	}

	var voicings []Voicing
	for _, combo := range util.CrossProduct(candidates) {
		v := newVoicing([StringCount]UkeString(combo))
		if v.Span() > cfg.MaxSpan || !v.SpellsOut(c) {
			continue
		}
		voicings = append(voicings, v)
	}

	sort.Slice(voicings, func(i, j int) bool {
		return voicings[i].Compare(voicings[j]) < 0
	})
	return voicings, nil
}

// stringCandidates lists the ways one string can sound one of the
// played notes: the base fret for each note's pitch class and the same
// fret an octave higher, kept only if they fall inside the fret range.
func stringCandidates(root music.Note, played []music.Note, cfg Config) []UkeString {
	var out []UkeString
	for _, note := range played {
		base := int(note.PitchClass.Sub(root.PitchClass))
		for _, fret := range [2]int{base, base + music.PitchClassCount} {
			if fret < int(cfg.MinFret) || fret > int(cfg.MaxFret) {
				continue
			}
			out = append(out, UkeString{Root: root, Fret: Fret(fret), Note: note})
		}
	}
	return out
}
