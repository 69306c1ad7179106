// Package server binds the assistant to HTTP: session creation and one
// utterance per request, JSON in and out.
package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FACorreiaa/finchat/internal/assistant"
)

// Server owns the session registry and routes chat turns to the
// assistant service.
type Server struct {
	svc    *assistant.Service
	logger *slog.Logger

	mu sync.RWMutex
	// sessions only shrinks via DELETE /v1/sessions/{id}; clients that
	// navigate away without ending their session leak an entry.
	// TODO: sweep sessions whose last turn is older than a TTL.
	sessions map[uuid.UUID]*assistant.Session
}

// New creates a Server around an assistant service.
func New(svc *assistant.Service, logger *slog.Logger) *Server {
	return &Server{
		svc:      svc,
		logger:   logger,
		sessions: make(map[uuid.UUID]*assistant.Session),
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes(metricsEnabled bool) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sessions", s.handleCreateSession)
	mux.HandleFunc("POST /v1/sessions/{id}/messages", s.handleMessage)
	mux.HandleFunc("DELETE /v1/sessions/{id}", s.handleEndSession)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if metricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}
	return s.withLogging(mux)
}

func (s *Server) lookup(id uuid.UUID) (*assistant.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) add(sess *assistant.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *Server) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}
