package voicing

import "github.com/fretline/fretline/internal/util"

// Distance is the total fret movement between two voicings: the sum
// over all strings of the absolute fret difference. It is symmetric
// and zero only for identical fret patterns.
func Distance(a, b Voicing) int {
	var diffs [StringCount]int
	for i := range a.strings {
		diffs[i] = util.Abs(int(a.strings[i].Fret) - int(b.strings[i].Fret))
	}
	return util.Sum(diffs[:])
}
