package voicing

import (
	"fmt"
	"strconv"
	"strings"
)

// FretPattern is a literal fret number per string in tuning order.
type FretPattern [StringCount]Fret

// ParseFretPattern reads a fret pattern either as one digit per string
// ("2220") or as whitespace-separated numbers ("7 7 7 10").
func ParseFretPattern(s string) (FretPattern, error) {
	var pattern FretPattern
	fields := strings.Fields(s)
	switch {
	case len(fields) == StringCount:
		for i, field := range fields {
			fret, err := strconv.ParseUint(field, 10, 8)
			if err != nil {
				return pattern, fmt.Errorf("invalid fret pattern %q", s)
			}
			pattern[i] = Fret(fret)
		}
	case len(fields) == 1 && len(fields[0]) == StringCount:
		for i, r := range fields[0] {
			if r < '0' || r > '9' {
				return pattern, fmt.Errorf("invalid fret pattern %q", s)
			}
			pattern[i] = Fret(r - '0')
		}
	default:
		return pattern, fmt.Errorf("invalid fret pattern %q", s)
	}
	return pattern, nil
}

func (p FretPattern) String() string {
	parts := make([]string, 0, StringCount)
	for _, fret := range p {
		parts = append(parts, strconv.Itoa(int(fret)))
	}
	return strings.Join(parts, " ")
}
