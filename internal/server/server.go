// Package server exposes chord charts, reverse lookup and voice
// leading over a JSON API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/fretline/fretline/internal/chord"
	"github.com/fretline/fretline/internal/diagram"
	"github.com/fretline/fretline/internal/voicelead"
	"github.com/fretline/fretline/internal/voicing"
)

// Server answers chord queries with the voicing constraints it was
// created with. Query parameters can narrow the constraints per call.
type Server struct {
	cfg voicing.Config
}

// New creates a server that generates voicings with the given config.
func New(cfg voicing.Config) *Server {
	return &Server{cfg: cfg}
}

// Handler builds the routed handler with request logging and CORS.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/chords", s.handleChordTypes).Methods("GET")
	router.HandleFunc("/api/chart/{chord}", s.handleChart).Methods("GET")
	router.HandleFunc("/api/name/{pattern}", s.handleName).Methods("GET")
	router.HandleFunc("/api/voice-lead", s.handleVoiceLead).Methods("GET")
	return cors.Default().Handler(logRequests(router))
}

// ListenAndServe runs the API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	log.WithField("addr", addr).Info("serving chord API")
	return http.ListenAndServe(addr, s.Handler())
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Info("handled request")
	})
}

type chordTypeJSON struct {
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

type voicingJSON struct {
	Frets string   `json:"frets"`
	Notes []string `json:"notes"`
	Chart string   `json:"chart"`
}

type chartResponse struct {
	Chord    string        `json:"chord"`
	Voicings []voicingJSON `json:"voicings"`
}

type nameResponse struct {
	Pattern string   `json:"pattern"`
	Chords  []string `json:"chords"`
}

type voiceLeadStep struct {
	Chord string `json:"chord"`
	Frets string `json:"frets"`
	Chart string `json:"chart"`
}

type voiceLeadPath struct {
	Cost  int             `json:"cost"`
	Steps []voiceLeadStep `json:"steps"`
}

type voiceLeadResponse struct {
	Paths []voiceLeadPath `json:"paths"`
}

func (s *Server) handleChordTypes(w http.ResponseWriter, r *http.Request) {
	types := chord.Types()
	out := make([]chordTypeJSON, 0, len(types))
	for _, typ := range types {
		out = append(out, chordTypeJSON{Name: typ.String(), Symbols: typ.Symbols()})
	}
	writeJSON(w, out)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	c, err := chord.Parse(mux.Vars(r)["chord"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg, err := s.configFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if v := r.URL.Query().Get("transpose"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid transpose %q", v), http.StatusBadRequest)
			return
		}
		c = c.Transpose(n)
	}

	voicings, err := voicing.Generate(c, cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := chartResponse{Chord: c.String(), Voicings: make([]voicingJSON, 0, len(voicings))}
	for _, v := range voicings {
		res.Voicings = append(res.Voicings, voicingToJSON(v, cfg))
	}
	writeJSON(w, res)
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	pattern, err := voicing.ParseFretPattern(mux.Vars(r)["pattern"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg, err := s.configFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	v := voicing.FromPattern(pattern, cfg.Tuning)
	res := nameResponse{Pattern: pattern.String(), Chords: []string{}}
	for _, c := range v.Chords() {
		res.Chords = append(res.Chords, c.String())
	}
	writeJSON(w, res)
}

func (s *Server) handleVoiceLead(w http.ResponseWriter, r *http.Request) {
	seq, err := chord.ParseSequence(r.URL.Query().Get("chords"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg, err := s.configFrom(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if v := r.URL.Query().Get("transpose"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid transpose %q", v), http.StatusBadRequest)
			return
		}
		seq = seq.Transpose(n)
	}
	best := 1
	if v := r.URL.Query().Get("best"); v != "" {
		best, err = strconv.Atoi(v)
		if err != nil || best < 1 {
			http.Error(w, fmt.Sprintf("invalid best %q", v), http.StatusBadRequest)
			return
		}
	}

	graph := voicelead.NewGraph(cfg)
	if err := graph.Add(seq); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := voiceLeadResponse{Paths: []voiceLeadPath{}}
	for _, path := range graph.Paths(best) {
		out := voiceLeadPath{Cost: path.Cost, Steps: make([]voiceLeadStep, 0, len(path.Voicings))}
		for i, v := range path.Voicings {
			out.Steps = append(out.Steps, voiceLeadStep{
				Chord: seq[i].String(),
				Frets: v.String(),
				Chart: diagram.NewChart(v, cfg.MaxSpan, false).String(),
			})
		}
		res.Paths = append(res.Paths, out)
	}
	writeJSON(w, res)
}

// configFrom applies the query parameter overrides to the server
// config.
func (s *Server) configFrom(r *http.Request) (voicing.Config, error) {
	cfg := s.cfg
	q := r.URL.Query()
	if v := q.Get("tuning"); v != "" {
		tuning, err := voicing.ParseTuning(v)
		if err != nil {
			return cfg, err
		}
		cfg.Tuning = tuning
	}
	frets := []struct {
		name string
		dst  *voicing.Fret
	}{
		{"min-fret", &cfg.MinFret},
		{"max-fret", &cfg.MaxFret},
		{"max-span", &cfg.MaxSpan},
	}
	for _, p := range frets {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q", p.name, v)
		}
		*p.dst = voicing.Fret(n)
	}
	return cfg, nil
}

func voicingToJSON(v voicing.Voicing, cfg voicing.Config) voicingJSON {
	notes := v.Notes()
	names := make([]string, 0, len(notes))
	for _, n := range notes {
		names = append(names, n.String())
	}
	return voicingJSON{
		Frets: v.String(),
		Notes: names,
		Chart: diagram.NewChart(v, cfg.MaxSpan, false).String(),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}
