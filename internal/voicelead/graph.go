// Package voicelead searches for the chord voicing sequence with the
// least hand movement across a chord progression.
package voicelead

import (
	"fmt"
	"sort"

	"github.com/fretline/fretline/internal/chord"
	"github.com/fretline/fretline/internal/voicing"
)

// Path assigns one voicing to each chord of a progression. Cost is the
// summed fret movement between consecutive voicings.
type Path struct {
	Voicings []voicing.Voicing
	Cost     int
}

// Graph holds one layer of candidate voicings per chord. Edges exist
// between all voicings of adjacent layers, weighted by their distance.
type Graph struct {
	cfg    voicing.Config
	layers [][]voicing.Voicing
}

// NewGraph creates an empty graph whose layers will be generated with
// the given config.
func NewGraph(cfg voicing.Config) *Graph {
	return &Graph{cfg: cfg}
}

// Add appends one layer per chord of the sequence. A chord without
// playable voicings yields an empty layer, which makes every complete
// path impossible.
func (g *Graph) Add(seq chord.Sequence) error {
	for _, c := range seq {
		voicings, err := voicing.Generate(c, g.cfg)
		if err != nil {
			return fmt.Errorf("failed to add %v to the voicing graph: %w", c, err)
		}
		g.layers = append(g.layers, voicings)
	}
	return nil
}

// Layers returns the number of chords added to the graph.
func (g *Graph) Layers() int {
	return len(g.layers)
}

type pathEntry struct {
	cost     int
	voicings []voicing.Voicing
}

// entryLess orders paths by cost, ties broken by the voicing order
// applied layer by layer.
func entryLess(a, b pathEntry) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	for i := range a.voicings {
		if c := a.voicings[i].Compare(b.voicings[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

// Paths returns the k complete paths with the lowest total cost in
// ascending cost order. The result is empty when any layer has no
// voicings or the graph has no layers.
func (g *Graph) Paths(k int) []Path {
	if k <= 0 || len(g.layers) == 0 {
		return nil
	}
	for _, layer := range g.layers {
		if len(layer) == 0 {
			return nil
		}
	}

	// Per-node best-k lists for the current layer.
	best := make([][]pathEntry, len(g.layers[0]))
	for i, v := range g.layers[0] {
		best[i] = []pathEntry{{cost: 0, voicings: []voicing.Voicing{v}}}
	}
	for _, layer := range g.layers[1:] {
		next := make([][]pathEntry, len(layer))
		for i, v := range layer {
			var candidates []pathEntry
			for _, prev := range best {
				for _, entry := range prev {
					last := entry.voicings[len(entry.voicings)-1]
					voicings := make([]voicing.Voicing, len(entry.voicings), len(entry.voicings)+1)
					copy(voicings, entry.voicings)
					candidates = append(candidates, pathEntry{
						cost:     entry.cost + voicing.Distance(last, v),
						voicings: append(voicings, v),
					})
				}
			}
			sort.Slice(candidates, func(a, b int) bool { return entryLess(candidates[a], candidates[b]) })
			if len(candidates) > k {
				candidates = candidates[:k]
			}
			next[i] = candidates
		}
		best = next
	}

	var merged []pathEntry
	for _, entries := range best {
		merged = append(merged, entries...)
	}
	sort.Slice(merged, func(a, b int) bool { return entryLess(merged[a], merged[b]) })
	if len(merged) > k {
		merged = merged[:k]
	}

	paths := make([]Path, len(merged))
	for i, entry := range merged {
		paths[i] = Path{Voicings: entry.voicings, Cost: entry.cost}
	}
	return paths
}
