package midifile

import (
	"bytes"
	"testing"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/fretline/fretline/internal/voicing"
)

func testVoicing(t *testing.T, pattern string) voicing.Voicing {
	t.Helper()
	p, err := voicing.ParseFretPattern(pattern)
	if err != nil {
		t.Fatalf("ParseFretPattern(%q) failed: %v", pattern, err)
	}
	return voicing.FromPattern(p, voicing.TuningC)
}

func TestStringPitches(t *testing.T) {
	v := testVoicing(t, "0003")
	want := [voicing.StringCount]uint8{67, 60, 64, 72}
	if got := StringPitches(v, voicing.TuningC); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	barre := testVoicing(t, "2220")
	want = [voicing.StringCount]uint8{69, 62, 66, 69}
	if got := StringPitches(barre, voicing.TuningC); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildRejectsEmpty(t *testing.T) {
	if _, err := Build(nil, voicing.TuningC, Options{}); err == nil {
		t.Fatalf("expected error for empty voicing list")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	voicings := []voicing.Voicing{
		testVoicing(t, "0003"),
		testVoicing(t, "0232"),
	}
	var buf bytes.Buffer
	if err := Write(&buf, voicings, voicing.TuningC, Options{Name: "C G"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if len(s.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(s.Tracks))
	}
	var ons, offs int
	for _, evt := range s.Tracks[0] {
		switch {
		case evt.Message.Is(midi.NoteOnMsg):
			ons++
		case evt.Message.Is(midi.NoteOffMsg):
			offs++
		}
	}
	if ons != 2*voicing.StringCount {
		t.Fatalf("expected %d note on events, got %d", 2*voicing.StringCount, ons)
	}
	if offs != 2*voicing.StringCount {
		t.Fatalf("expected %d note off events, got %d", 2*voicing.StringCount, offs)
	}
}
