// Package server exposes the answer surface and the listing store over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentscout/internal/agent"
	"rentscout/internal/engine"
	"rentscout/internal/logger"
	"rentscout/internal/models"
	"rentscout/internal/normalizer"
	"rentscout/internal/scraper"
)

// Server wires the pipeline components behind a mux router.
type Server struct {
	agent      *agent.Agent
	store      *engine.Store
	normalizer *normalizer.Normalizer
	scraper    *scraper.Client
	refreshURL string
	log        *logger.Logger
}

// New creates a server. refreshURL is the search page re-fetched on
// POST /api/refresh; an empty value disables that route's fetch.
func New(ag *agent.Agent, store *engine.Store, norm *normalizer.Normalizer, sc *scraper.Client, refreshURL string, log *logger.Logger) *Server {
	return &Server{
		agent:      ag,
		store:      store,
		normalizer: norm,
		scraper:    sc,
		refreshURL: refreshURL,
		log:        log,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/answer", s.handleAnswer).Methods(http.MethodGet)
	r.HandleFunc("/api/listings", s.handleListings).Methods(http.MethodGet)
	r.HandleFunc("/api/refresh", s.handleRefresh).Methods(http.MethodPost)

	return r
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	utterance := r.URL.Query().Get("q")
	if utterance == "" {
		s.writeError(w, http.StatusBadRequest, "missing q parameter")

		return
	}

	answer, err := s.agent.Answer(utterance)
	if err != nil {
		s.log.Error("answer failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "query execution failed")

		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"question": utterance,
		"answer":   answer,
	})
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    s.store.Len(),
		"listings": s.store.All(),
	})
}

// handleRefresh re-scrapes the configured search page and replaces the
// session store contents.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if s.refreshURL == "" {
		s.writeError(w, http.StatusServiceUnavailable, "no refresh source configured")

		return
	}

	records, err := s.scraper.Fetch(s.refreshURL)
	if err != nil {
		s.log.Error("refresh fetch failed", "url", s.refreshURL, "error", err)
		s.writeError(w, http.StatusBadGateway, "fetch failed")

		return
	}

	listings, rejections := s.normalizer.NormalizeBatch(records)

	s.store.Clear()
	s.store.AddBatch(listings)

	s.log.Info("store refreshed",
		"scraped", len(records),
		"stored", len(listings),
		"rejected", len(rejections),
	)

	s.writeJSON(w, http.StatusOK, map[string]int{
		"scraped":  len(records),
		"stored":   len(listings),
		"rejected": len(rejections),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// Seed populates the store from already-normalized listings, for startup.
func (s *Server) Seed(listings []models.Listing) {
	s.store.AddBatch(listings)
}
