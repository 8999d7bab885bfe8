package voicelead

import (
	"errors"
	"testing"

	"github.com/fretline/fretline/internal/chord"
	"github.com/fretline/fretline/internal/voicing"
)

func testGraph(t *testing.T, progression string, cfg voicing.Config) *Graph {
	t.Helper()
	seq, err := chord.ParseSequence(progression)
	if err != nil {
		t.Fatalf("ParseSequence(%q) failed: %v", progression, err)
	}
	g := NewGraph(cfg)
	if err := g.Add(seq); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return g
}

func TestPathsTwoChords(t *testing.T) {
	g := testGraph(t, "C G", voicing.DefaultConfig())
	paths := g.Paths(1)
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	path := paths[0]
	if path.Cost != 3 {
		t.Fatalf("expected cost 3, got %d", path.Cost)
	}
	want := [][voicing.StringCount]voicing.Fret{
		{0, 4, 3, 3},
		{0, 2, 3, 2},
	}
	for i, frets := range want {
		if got := path.Voicings[i].Frets(); got != frets {
			t.Fatalf("expected frets %v at %d, got %v", frets, i, got)
		}
	}
}

func TestPathsMatchBruteForce(t *testing.T) {
	cfg := voicing.DefaultConfig()
	seq, err := chord.ParseSequence("C F")
	if err != nil {
		t.Fatalf("ParseSequence failed: %v", err)
	}
	first, err := voicing.Generate(seq[0], cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := voicing.Generate(seq[1], cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	min := -1
	for _, a := range first {
		for _, b := range second {
			if d := voicing.Distance(a, b); min < 0 || d < min {
				min = d
			}
		}
	}

	paths := testGraph(t, "C F", cfg).Paths(1)
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	if paths[0].Cost != min {
		t.Fatalf("expected minimal cost %d, got %d", min, paths[0].Cost)
	}
}

func TestPathsSingleChord(t *testing.T) {
	paths := testGraph(t, "C", voicing.DefaultConfig()).Paths(3)
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	want := [][voicing.StringCount]voicing.Fret{
		{0, 0, 0, 3},
		{0, 4, 0, 3},
		{0, 4, 3, 3},
	}
	for i, frets := range want {
		path := paths[i]
		if path.Cost != 0 {
			t.Fatalf("expected cost 0 at %d, got %d", i, path.Cost)
		}
		if len(path.Voicings) != 1 {
			t.Fatalf("expected a single voicing at %d, got %d", i, len(path.Voicings))
		}
		if got := path.Voicings[0].Frets(); got != frets {
			t.Fatalf("expected frets %v at %d, got %v", frets, i, got)
		}
	}
}

func TestPathsOrdering(t *testing.T) {
	paths := testGraph(t, "C F G C", voicing.DefaultConfig()).Paths(5)
	if len(paths) != 5 {
		t.Fatalf("expected 5 paths, got %d", len(paths))
	}
	for i, path := range paths {
		if len(path.Voicings) != 4 {
			t.Fatalf("expected 4 voicings per path, got %d", len(path.Voicings))
		}
		if i > 0 && path.Cost < paths[i-1].Cost {
			t.Fatalf("costs out of order at %d: %d after %d", i, path.Cost, paths[i-1].Cost)
		}
	}
}

func TestPathsEmptyLayer(t *testing.T) {
	cfg := voicing.Config{Tuning: voicing.TuningC, MinFret: 5, MaxFret: 5, MaxSpan: 0}
	if paths := testGraph(t, "C G", cfg).Paths(1); len(paths) != 0 {
		t.Fatalf("expected no paths, got %v", paths)
	}
}

func TestPathsCappedByAvailable(t *testing.T) {
	paths := testGraph(t, "C", voicing.DefaultConfig()).Paths(1000)
	if len(paths) != 32 {
		t.Fatalf("expected 32 paths, got %d", len(paths))
	}
}

func TestPathsWithoutLayers(t *testing.T) {
	g := NewGraph(voicing.DefaultConfig())
	if paths := g.Paths(1); paths != nil {
		t.Fatalf("expected no paths, got %v", paths)
	}
}

func TestAddAppendsLayers(t *testing.T) {
	g := testGraph(t, "C", voicing.DefaultConfig())
	seq, err := chord.ParseSequence("G")
	if err != nil {
		t.Fatalf("ParseSequence failed: %v", err)
	}
	if err := g.Add(seq); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := g.Layers(); got != 2 {
		t.Fatalf("expected 2 layers, got %d", got)
	}
	paths := g.Paths(1)
	if len(paths) != 1 || paths[0].Cost != 3 {
		t.Fatalf("expected the two-chord path, got %v", paths)
	}
}

func TestAddInvalidConfig(t *testing.T) {
	cfg := voicing.Config{Tuning: voicing.TuningC, MinFret: 10, MaxFret: 5, MaxSpan: 4}
	seq, err := chord.ParseSequence("C")
	if err != nil {
		t.Fatalf("ParseSequence failed: %v", err)
	}
	g := NewGraph(cfg)
	err = g.Add(seq)
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}
	if !errors.Is(err, voicing.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
