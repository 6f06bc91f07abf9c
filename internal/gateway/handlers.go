package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"roadtrip/internal/event"
	"roadtrip/internal/stream"
)

type tripRequest struct {
	UserID string `json:"user_id"`
	Prompt string `json:"prompt"`
}

func (s *Server) handleTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Prompt == "" {
		http.Error(w, `{"error":"user_id and prompt are required"}`, http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.GetOrCreate(r.Context(), req.UserID)
	if err != nil {
		http.Error(w, `{"error":"session unavailable"}`, http.StatusServiceUnavailable)
		return
	}

	sse := NewSSEWriter(w)

	src, err := s.runtime.RunAsync(r.Context(), req.UserID, sess.ID, req.Prompt)
	if err != nil {
		sse.Send("error", map[string]string{"error": err.Error()})
		return
	}

	// Every boundary event is classified and forwarded as its own SSE
	// event. A failed Send means the client is gone; returning stops the
	// iteration and the stream wrapper takes care of the shielded teardown.
	for ev := range stream.Drain(r.Context(), src) {
		for n := range event.Classify(ev) {
			if err := sse.Send(string(n.Kind), n); err != nil {
				slog.Debug("client disconnected mid-stream", "error", err)
				return
			}
		}
	}

	sse.Send("done", map[string]any{})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, `{"error":"user_id is required"}`, http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	runs, err := s.history.ListRuns(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, `{"error":"listing runs failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"runs": runs})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
