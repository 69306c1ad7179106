package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/FACorreiaa/finchat/internal/assistant"
)

type createSessionResponse struct {
	SessionID string `json:"session_id"`
}

type messageRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := assistant.NewSession()
	s.add(sess)
	s.logger.Info("session created", "session_id", sess.ID)
	writeJSON(w, http.StatusCreated, createSessionResponse{SessionID: sess.ID.String()})
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid session id"})
		return
	}
	sess, ok := s.lookup(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "session not found"})
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	resp, err := s.svc.HandleMessage(r.Context(), sess, req.Text)
	if err != nil {
		if errors.Is(err, assistant.ErrBusy) {
			writeJSON(w, http.StatusConflict, errorResponse{Message: "session is busy"})
			return
		}
		s.logger.Error("message handling failed", "session_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid session id"})
		return
	}
	// Navigating away discards any partial accumulator with no side
	// effects; dropping the session is all that is needed.
	if !s.remove(id) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "session not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
