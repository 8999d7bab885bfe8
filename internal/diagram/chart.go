// Package diagram renders chord voicings and the chord type catalog
// as text.
package diagram

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/fretline/fretline/internal/voicing"
)

// MinChartWidth is the minimum number of frets shown on a chart.
const MinChartWidth voicing.Fret = 4

var (
	fretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AA9E6"))
)

// Chart draws a voicing as a fretboard, one line per string in reverse
// tuning order. Pressed frets show their absolute fret number; open
// strings are marked with an "o" next to the string root.
type Chart struct {
	voicing voicing.Voicing
	span    voicing.Fret
	color   bool
}

// NewChart prepares a chart for the voicing. The span hint widens the
// chart beyond MinChartWidth; color enables ANSI styling.
func NewChart(v voicing.Voicing, span voicing.Fret, color bool) Chart {
	return Chart{voicing: v, span: span, color: color}
}

// base returns the first fret shown on the chart. Charts start at the
// nut unless the voicing sits too high up the neck to fit.
func (c Chart) base() voicing.Fret {
	if c.voicing.MaxFret() <= c.width() {
		return 1
	}
	return c.voicing.Position()
}

// width returns the number of frets shown on the chart.
func (c Chart) width() voicing.Fret {
	width := MinChartWidth
	if c.span > width {
		width = c.span
	}
	return width
}

// Render writes the chart to w.
func (c Chart) Render(w io.Writer) error {
	base := c.base()
	width := c.width()
	if shown := int(c.voicing.MaxFret()) - int(base) + 1; shown > int(width) {
		width = voicing.Fret(shown)
	}

	uke := c.voicing.Strings()
	rootWidth := 0
	cellWidth := 3
	for _, s := range uke {
		if rw := runewidth.StringWidth(s.Root.String()); rw > rootWidth {
			rootWidth = rw
		}
		if fw := len(strconv.Itoa(int(s.Fret))) + 2; s.Fret > 0 && fw > cellWidth {
			cellWidth = fw
		}
	}

	for i := len(uke) - 1; i >= 0; i-- {
		if err := c.renderString(w, uke[i], base, width, rootWidth, cellWidth); err != nil {
			return err
		}
	}
	return nil
}

func (c Chart) renderString(w io.Writer, s voicing.UkeString, base, width voicing.Fret, rootWidth, cellWidth int) error {
	var b strings.Builder

	marker := " "
	if s.Fret == 0 {
		marker = "o"
	}
	b.WriteString(runewidth.FillRight(s.Root.String(), rootWidth))
	b.WriteString(" ")
	b.WriteString(marker)
	b.WriteString("|")

	for fret := base; fret < base+width; fret++ {
		if s.Fret == fret {
			label := strconv.Itoa(int(s.Fret))
			if c.color {
				label = fretStyle.Render(label)
			}
			b.WriteString("-")
			b.WriteString(label)
			b.WriteString(strings.Repeat("-", cellWidth-1-len(strconv.Itoa(int(s.Fret)))))
		} else {
			b.WriteString(strings.Repeat("-", cellWidth))
		}
		b.WriteString("|")
	}

	note := s.Note.String()
	if c.color {
		note = noteStyle.Render(note)
	}
	_, err := fmt.Fprintf(w, "%s- %s\n", b.String(), note)
	return err
}

// String renders the chart without color.
func (c Chart) String() string {
	var b strings.Builder
	plain := c
	plain.color = false
	if err := plain.Render(&b); err != nil {
		return ""
	}
	return b.String()
}
