package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	sc "stava/internal/corrector"
)

// Store persists counts learned through the API.
type Store interface {
	AddCounts(ctx context.Context, counts map[string]uint64) error
}

// Server serves a corrector over HTTP. Learning takes the write lock, lookups the read lock.
type Server struct {
	mu        sync.RWMutex
	corrector *sc.SpellCorrector
	store     Store
}

// New wraps corrector. store may be nil, in which case nothing is persisted.
func New(corrector *sc.SpellCorrector, store Store) *Server {
	return &Server{corrector: corrector, store: store}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/correct", s.handleCorrect)
	mux.HandleFunc("/api/v1/learn", s.handleLearn)
	mux.HandleFunc("/api/v1/custom-word", s.handleCustomWord)
	mux.HandleFunc("/api/v1/frequency", s.handleFrequency)
	return mux
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := sc.ValidateWord(req.Word); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.RLock()
	res := s.corrector.Lookup(req.Word)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLearn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	learned := sc.NewModel()
	learned.Learn(req.Text)
	if err := s.learn(r.Context(), learned); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "words": learned.Len()})
}

func (s *Server) handleCustomWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	word := strings.ToLower(strings.TrimSpace(req.Word))
	if !sc.IsWord(word) {
		writeError(w, http.StatusBadRequest, "word must consist of the letters a-z")
		return
	}

	learned := sc.NewModel()
	learned.Add(word, 1)
	if err := s.learn(r.Context(), learned); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleFrequency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	s.mu.RLock()
	n := s.corrector.Model().Count(word)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{"word": word, "count": n})
}

// learn journals the counts first so a failed write leaves the in-memory model untouched.
func (s *Server) learn(ctx context.Context, learned *sc.Model) error {
	if s.store != nil {
		if err := s.store.AddCounts(ctx, learned.Counts()); err != nil {
			log.Printf("[server] persist learned words: %v", err)
			return errors.New("failed to persist learned words")
		}
	}
	s.mu.Lock()
	s.corrector.Model().Merge(learned)
	s.mu.Unlock()
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
