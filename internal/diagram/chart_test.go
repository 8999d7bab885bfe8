package diagram

import (
	"strings"
	"testing"

	"github.com/fretline/fretline/internal/voicing"
)

func testVoicing(t *testing.T, pattern string, tuning voicing.Tuning) voicing.Voicing {
	t.Helper()
	p, err := voicing.ParseFretPattern(pattern)
	if err != nil {
		t.Fatalf("ParseFretPattern(%q) failed: %v", pattern, err)
	}
	return voicing.FromPattern(p, tuning)
}

func TestChartOpenChord(t *testing.T) {
	v := testVoicing(t, "0003", voicing.TuningC)
	want := strings.Join([]string{
		"A  |---|---|-3-|---|- C",
		"E o|---|---|---|---|- E",
		"C o|---|---|---|---|- C",
		"G o|---|---|---|---|- G",
		"",
	}, "\n")
	if got := NewChart(v, 4, false).String(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestChartPressedStrings(t *testing.T) {
	v := testVoicing(t, "0232", voicing.TuningC)
	want := strings.Join([]string{
		"A  |---|-2-|---|---|- B",
		"E  |---|---|-3-|---|- G",
		"C  |---|-2-|---|---|- D",
		"G o|---|---|---|---|- G",
		"",
	}, "\n")
	if got := NewChart(v, 4, false).String(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestChartHighPosition(t *testing.T) {
	v := testVoicing(t, "9787", voicing.TuningC)
	want := strings.Join([]string{
		"A  |-7-|---|---|---|- E",
		"E  |---|-8-|---|---|- C",
		"C  |-7-|---|---|---|- G",
		"G  |---|---|-9-|---|- E",
		"",
	}, "\n")
	if got := NewChart(v, 4, false).String(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestChartTwoDigitFrets(t *testing.T) {
	v := testVoicing(t, "12 12 12 10", voicing.TuningC)
	want := strings.Join([]string{
		"A  |-10-|----|----|----|- G",
		"E  |----|----|-12-|----|- E",
		"C  |----|----|-12-|----|- C",
		"G  |----|----|-12-|----|- G",
		"",
	}, "\n")
	if got := NewChart(v, 4, false).String(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestChartAlignsWideRoots(t *testing.T) {
	v := testVoicing(t, "0003", voicing.TuningD)
	want := strings.Join([]string{
		"B   |---|---|-3-|---|- D",
		"F# o|---|---|---|---|- F#",
		"D  o|---|---|---|---|- D",
		"A  o|---|---|---|---|- A",
		"",
	}, "\n")
	if got := NewChart(v, 4, false).String(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestChartSpanHint(t *testing.T) {
	v := testVoicing(t, "0003", voicing.TuningC)
	want := strings.Join([]string{
		"A  |---|---|-3-|---|---|- C",
		"E o|---|---|---|---|---|- E",
		"C o|---|---|---|---|---|- C",
		"G o|---|---|---|---|---|- G",
		"",
	}, "\n")
	if got := NewChart(v, 5, false).String(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestChartRenderMatchesString(t *testing.T) {
	v := testVoicing(t, "2220", voicing.TuningC)
	chart := NewChart(v, 4, false)
	var b strings.Builder
	if err := chart.Render(&b); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if b.String() != chart.String() {
		t.Fatalf("Render and String disagree")
	}
}
