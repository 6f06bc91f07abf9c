// Package gateway exposes the copilot over HTTP: one SSE endpoint that
// streams a run's classified events, and a read endpoint for the run log.
package gateway

import (
	"net/http"

	"roadtrip/internal/copilot"
	"roadtrip/internal/history"
	"roadtrip/internal/session"
)

type Server struct {
	runtime  copilot.AgentRuntime
	sessions *session.Manager
	history  *history.Store
	mux      *http.ServeMux
}

func NewServer(runtime copilot.AgentRuntime, sessions *session.Manager, store *history.Store) *Server {
	s := &Server{
		runtime:  runtime,
		sessions: sessions,
		history:  store,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /v1/trip", s.handleTrip)
	s.mux.HandleFunc("GET /v1/runs", s.handleListRuns)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
