// Package api provides HTTP handlers and the server logic for ScholarDraft.
//
// It exposes JSON endpoints for triggering a draft action, listing the
// intent enumeration with its form labels, and health checking. The API
// integrates the drafter and genai modules; form rendering is the
// consuming surface's concern.
package api

import (
	"log/slog"
	"net/http"

	"github.com/scholarmail/ScholarDraft/internal/drafter"
	"github.com/scholarmail/ScholarDraft/internal/genai"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// Server holds the API dependencies and configuration.
type Server struct {
	addr    string
	drafter *drafter.Service
}

// Option configures the Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// NewServer creates an API server around the given draft service.
func NewServer(svc *drafter.Service, opts ...Option) *Server {
	s := &Server{addr: DefaultAddr, drafter: svc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/draft", s.draftHandler)
	mux.HandleFunc("/intents", s.intentsHandler)
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

// Run builds the modules from the given options and serves the API. A
// missing OpenAI credential is reported at startup and on every draft
// action, but the server still serves so the surface can display the
// configuration error.
func Run(genaiOpts []genai.Option, apiOpts []Option) error {
	var gen drafter.Generator
	client, err := genai.NewClient(genaiOpts...)
	if err != nil {
		slog.Error("API.Run: generation client unavailable", "error", err)
	} else {
		gen = client
	}

	svc := drafter.NewService(gen)
	srv := NewServer(svc, apiOpts...)

	slog.Info("API.Run: ScholarDraft API listening", "addr", srv.addr, "generation_configured", svc.Configured())
	return http.ListenAndServe(srv.addr, srv.Handler())
}
