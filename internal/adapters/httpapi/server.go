// Package httpapi exposes the conversation engine over HTTP. Each request
// carries a session ID; the handler loads the session state, runs one turn
// through the engine, saves the state back, and optionally renders the reply
// to speech.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/ports"
)

// Engine is the conversation core the HTTP adapter drives.
type Engine interface {
	Step(ctx context.Context, st *domain.ConversationState, message string) domain.Result
}

// Server wires the engine, session persistence and speech rendering behind
// the HTTP surface.
type Server struct {
	engine   Engine
	sessions ports.SessionStore
	speech   ports.SpeechRenderer
	log      *slog.Logger
	audioDir string
	registry *prometheus.Registry
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Default: slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithSpeech enables audio rendering of responses. audioDir is served under
// /audio/ so returned URLs resolve against this server.
func WithSpeech(r ports.SpeechRenderer, audioDir string) Option {
	return func(s *Server) {
		s.speech = r
		s.audioDir = audioDir
	}
}

// WithMetrics exposes the given registry on GET /metrics.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// NewServer creates a Server over the engine and session store.
func NewServer(engine Engine, sessions ports.SessionStore, opts ...Option) *Server {
	s := &Server{
		engine:   engine,
		sessions: sessions,
		speech:   nil,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router for the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/chat", s.handleChat)
	r.Post("/reset", s.handleReset)
	r.Get("/healthz", s.handleHealth)

	if s.registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	if s.audioDir != "" {
		fs := http.StripPrefix("/audio/", http.FileServer(http.Dir(s.audioDir)))
		r.Get("/audio/*", fs.ServeHTTP)
	}

	return r
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Voice     bool   `json:"voice,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
	AudioURL string `json:"audio_url,omitempty"`
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleChat runs one conversation turn for the session.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		s.log.Warn("chat: invalid request body", "err", err)
		return
	}
	if strings.TrimSpace(body.SessionID) == "" {
		s.writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	ctx := r.Context()

	st, err := s.sessions.Load(ctx, body.SessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		st = domain.NewState(time.Now())
	case err != nil:
		s.writeError(w, http.StatusInternalServerError, "session load failed")
		s.log.Error("chat: session load failed", "session_id", body.SessionID, "err", err)
		return
	}

	res := s.engine.Step(ctx, st, body.Message)

	if err := s.sessions.Save(ctx, body.SessionID, st); err != nil {
		s.writeError(w, http.StatusInternalServerError, "session save failed")
		s.log.Error("chat: session save failed", "session_id", body.SessionID, "err", err)
		return
	}

	resp := chatResponse{Response: res.Text}
	if body.Voice && s.speech != nil {
		audioURL, err := s.speech.Render(ctx, res.Text)
		if err != nil {
			// Speech is best effort. The text reply still goes out.
			s.log.Warn("chat: speech rendering failed", "session_id", body.SessionID, "err", err)
		} else {
			resp.AudioURL = audioURL
		}
	}

	s.log.Debug("chat turn handled",
		"session_id", body.SessionID,
		"stage", st.Stage,
		"effect", res.Effect.Kind,
	)
	s.writeJSON(w, http.StatusOK, resp)
}

// handleReset clears the session unconditionally.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var body resetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.SessionID) == "" {
		s.writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	if err := s.sessions.Clear(r.Context(), body.SessionID); err != nil {
		s.writeError(w, http.StatusInternalServerError, "session clear failed")
		s.log.Error("reset: session clear failed", "session_id", body.SessionID, "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
