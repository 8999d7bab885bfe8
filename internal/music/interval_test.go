package music

import "testing"

func TestIntervalSemitones(t *testing.T) {
	cases := []struct {
		interval Interval
		want     Semitones
	}{
		{PerfectUnison, 0},
		{MinorThird, 3},
		{MajorThird, 4},
		{DiminishedFifth, 6},
		{PerfectFifth, 7},
		{MinorSeventh, 10},
		{MajorNinth, 14},
		{PerfectEleventh, 17},
		{MajorThirteenth, 21},
	}
	for _, c := range cases {
		if got := c.interval.Semitones(); got != c.want {
			t.Fatalf("expected %d semitones for %v, got %d", c.want, c.interval, got)
		}
	}
}

func TestIntervalStaffSteps(t *testing.T) {
	// Enharmonic intervals span different letter counts.
	if got := AugmentedFourth.StaffSteps(); got != 3 {
		t.Fatalf("expected 3 staff steps, got %d", got)
	}
	if got := DiminishedFifth.StaffSteps(); got != 4 {
		t.Fatalf("expected 4 staff steps, got %d", got)
	}
	if got := MajorThirteenth.StaffSteps(); got != 12 {
		t.Fatalf("expected 12 staff steps, got %d", got)
	}
}

func TestIntervalString(t *testing.T) {
	if got := MinorThird.String(); got != "minor 3rd" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := PerfectUnison.String(); got != "perfect unison" {
		t.Fatalf("unexpected name: %q", got)
	}
}
