package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/ports"
	"github.com/aretw0/taskboard/pkg/schema"
	"github.com/go-chi/chi/v5"
)

// maxActionBytes bounds POST /dispatch bodies.
const maxActionBytes = 64 << 10

// Server exposes a Dispatcher over HTTP.
type Server struct {
	Dispatcher ports.Dispatcher
	Streams    *StreamManager

	router      chi.Router
	metrics     http.Handler
	logger      *slog.Logger
	unsubscribe func()
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates the HTTP surface for d and starts forwarding board diffs to
// SSE clients. Call Close to stop forwarding.
func NewServer(d ports.Dispatcher, opts ...Option) *Server {
	s := &Server{
		Dispatcher: d,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams = NewStreamManager(s.logger)

	s.unsubscribe = d.Subscribe(func(oldBoard, newBoard *domain.Board) {
		diff := domain.Diff(oldBoard, newBoard)
		if diff == nil {
			return
		}
		data, err := json.Marshal(diff)
		if err != nil {
			s.logger.Error("SSE: failed to encode diff", "err", err)
			return
		}
		s.Streams.Broadcast(string(data))
	})

	r := chi.NewRouter()
	r.Use(enableCORS)

	r.Get("/", s.Index)
	r.Get("/board", s.GetBoard)
	r.Post("/dispatch", s.Dispatch)
	r.Get("/events", s.SubscribeEvents)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	s.router = r
	return s
}

// NewHandler is NewServer for callers that never shut the server down.
func NewHandler(d ports.Dispatcher, opts ...Option) http.Handler {
	return NewServer(d, opts...)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close detaches the server from the dispatcher.
func (s *Server) Close() {
	s.unsubscribe()
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Taskboard API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// Index serves the drag-and-drop board page.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// GetBoard handles the GET /board request.
func (s *Server) GetBoard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Dispatcher.GetState())
}

// Dispatch handles the POST /dispatch request.
func (s *Server) Dispatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxActionBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Dispatch: Invalid request body", "err", err)
		return
	}

	action, err := schema.DecodeAction(body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid action: %v", err), http.StatusBadRequest)
		s.logger.Warn("Dispatch: Invalid action", "err", err)
		return
	}

	if err := s.Dispatcher.Dispatch(r.Context(), action); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrIndexOutOfRange):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Dispatch error: %v", err), http.StatusInternalServerError)
			s.logger.Error("Dispatch failed", "err", err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, s.Dispatcher.GetState())
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	} else if err != nil {
		s.logger.Error("Failed to load OpenAPI spec", "err", err)
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "taskboard-http",
		"version":     strings.TrimSpace(taskboard.Version),
		"api_version": apiVersion,
	})
}

// SubscribeEvents handles the GET /events request (SSE).
// The first event carries the full board; later events carry diffs.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	watch := parseWatch(r.URL.Query().Get("watch"))

	// Subscribe before reading the snapshot so no change is lost in between.
	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	snapshot, err := json.Marshal(s.Dispatcher.GetState())
	if err != nil {
		http.Error(w, "Failed to encode board", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: board\ndata: %s\n\n", snapshot)
	flusher.Flush()
	s.logger.Info("SSE: client subscribed", "watch", r.URL.Query().Get("watch"))

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if len(watch) > 0 && !matchesWatch(msg, watch) {
				continue
			}
			fmt.Fprintf(w, "event: diff\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func parseWatch(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// matchesWatch reports whether a serialized diff touches any watched field.
func matchesWatch(msg string, watch []string) bool {
	var diff domain.BoardDiff
	if err := json.Unmarshal([]byte(msg), &diff); err != nil {
		return true
	}
	for _, field := range watch {
		switch field {
		case "order":
			if len(diff.Order) > 0 {
				return true
			}
		case "lists":
			if len(diff.Lists) > 0 || len(diff.Removed) > 0 {
				return true
			}
		case "drag":
			if diff.DraggedItem != nil || diff.DragCleared {
				return true
			}
		}
	}
	return false
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
