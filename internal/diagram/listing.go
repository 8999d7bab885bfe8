package diagram

import (
	"fmt"
	"io"
	"strings"

	"github.com/fretline/fretline/internal/chord"
)

// WriteChordTypes lists every chord type with its symbols, using C as
// the example root.
func WriteChordTypes(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Supported chord types and symbols\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "The root note C is used as an example.\n\n"); err != nil {
		return err
	}
	for _, typ := range chord.Types() {
		symbols := typ.Symbols()
		names := make([]string, 0, len(symbols))
		for _, symbol := range symbols {
			names = append(names, "C"+symbol)
		}
		if _, err := fmt.Fprintf(w, "C %s - %s\n", typ, strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	return nil
}
