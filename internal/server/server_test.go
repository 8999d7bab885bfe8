package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fretline/fretline/internal/voicing"
)

func testRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	New(voicing.DefaultConfig()).Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestChordTypesEndpoint(t *testing.T) {
	var types []chordTypeJSON
	decodeJSON(t, testRequest(t, "/api/chords"), &types)
	if len(types) != 34 {
		t.Fatalf("expected 34 chord types, got %d", len(types))
	}
	if types[0].Name != "major" {
		t.Fatalf("expected major first, got %q", types[0].Name)
	}
	if len(types[0].Symbols) != 3 || types[0].Symbols[1] != "maj" {
		t.Fatalf("unexpected symbols: %v", types[0].Symbols)
	}
}

func TestChartEndpoint(t *testing.T) {
	var res chartResponse
	decodeJSON(t, testRequest(t, "/api/chart/C"), &res)
	if res.Chord != "C - C major" {
		t.Fatalf("expected C major header, got %q", res.Chord)
	}
	if len(res.Voicings) != 32 {
		t.Fatalf("expected 32 voicings, got %d", len(res.Voicings))
	}
	first := res.Voicings[0]
	if first.Frets != "0 0 0 3" {
		t.Fatalf("expected 0 0 0 3 first, got %q", first.Frets)
	}
	if !strings.Contains(first.Chart, "A  |---|---|-3-|---|- C") {
		t.Fatalf("unexpected chart:\n%s", first.Chart)
	}
}

func TestChartEndpointTranspose(t *testing.T) {
	var res chartResponse
	decodeJSON(t, testRequest(t, "/api/chart/C?transpose=2"), &res)
	if res.Chord != "D - D major" {
		t.Fatalf("expected D major, got %q", res.Chord)
	}
}

func TestChartEndpointBadRequests(t *testing.T) {
	for _, target := range []string{
		"/api/chart/Z",
		"/api/chart/C?transpose=x",
		"/api/chart/C?min-fret=10&max-fret=5",
		"/api/chart/C?tuning=E",
		"/api/chart/C?max-fret=300",
	} {
		if rec := testRequest(t, target); rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for %q, got %d", target, rec.Code)
		}
	}
}

func TestNameEndpoint(t *testing.T) {
	var res nameResponse
	decodeJSON(t, testRequest(t, "/api/name/2220"), &res)
	if res.Pattern != "2 2 2 0" {
		t.Fatalf("expected pattern 2 2 2 0, got %q", res.Pattern)
	}
	if len(res.Chords) != 1 || res.Chords[0] != "D - D major" {
		t.Fatalf("expected D major, got %v", res.Chords)
	}
}

func TestNameEndpointNoMatch(t *testing.T) {
	var res nameResponse
	decodeJSON(t, testRequest(t, "/api/name/1234"), &res)
	if len(res.Chords) != 0 {
		t.Fatalf("expected no chords, got %v", res.Chords)
	}
}

func TestNameEndpointInvalidPattern(t *testing.T) {
	if rec := testRequest(t, "/api/name/999"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestVoiceLeadEndpoint(t *testing.T) {
	var res voiceLeadResponse
	decodeJSON(t, testRequest(t, "/api/voice-lead?chords=C+G"), &res)
	if len(res.Paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(res.Paths))
	}
	path := res.Paths[0]
	if path.Cost != 3 {
		t.Fatalf("expected cost 3, got %d", path.Cost)
	}
	if len(path.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(path.Steps))
	}
	if path.Steps[0].Chord != "C - C major" || path.Steps[0].Frets != "0 4 3 3" {
		t.Fatalf("unexpected first step: %+v", path.Steps[0])
	}
	if path.Steps[1].Chord != "G - G major" || path.Steps[1].Frets != "0 2 3 2" {
		t.Fatalf("unexpected second step: %+v", path.Steps[1])
	}
}

func TestVoiceLeadEndpointNoPath(t *testing.T) {
	var res voiceLeadResponse
	decodeJSON(t, testRequest(t, "/api/voice-lead?chords=C+G&min-fret=5&max-fret=5&max-span=0"), &res)
	if len(res.Paths) != 0 {
		t.Fatalf("expected no paths, got %v", res.Paths)
	}
}

func TestCORSHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/chords", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	New(voicing.DefaultConfig()).Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS header, got %q", got)
	}
}

func TestVoiceLeadEndpointBadRequests(t *testing.T) {
	for _, target := range []string{
		"/api/voice-lead",
		"/api/voice-lead?chords=C+X",
		"/api/voice-lead?chords=C&best=0",
		"/api/voice-lead?chords=C&best=x",
	} {
		if rec := testRequest(t, target); rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for %q, got %d", target, rec.Code)
		}
	}
}
