package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pacifisai/internal/util"
	"pacifisai/services/metrics/internal/app"
)

const defaultMaxUploadBytes = 16 << 20

// Config wires required dependencies for the HTTP server.
type Config struct {
	App            *app.App
	MaxUploadBytes int64
}

// Server exposes HTTP endpoints for the metrics service.
type Server struct {
	app            *app.App
	maxUploadBytes int64
	mux            *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	s := &Server{
		app:            cfg.App,
		maxUploadBytes: maxUpload,
		mux:            http.NewServeMux(),
	}
	s.routes()
	return s
}

// Router returns the configured handler with common middleware applied.
func (s *Server) Router() http.Handler {
	return util.WithCORS(
		util.WithSecurityHeaders(
			util.WithRequestID(
				util.WithRequestLog("metrics", s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.mux.HandleFunc("/metrics/overview", s.dataset(func() any { return s.app.Overview() }))
	s.mux.HandleFunc("/metrics/analytics", s.dataset(func() any { return s.app.Analytics() }))
	s.mux.HandleFunc("/metrics/feedback", s.dataset(func() any { return s.app.Feedback() }))
	s.mux.HandleFunc("/metrics/knowledge", s.dataset(func() any { return s.app.Knowledge() }))
	s.mux.HandleFunc("/metrics/escalation", s.dataset(func() any { return s.app.Escalation() }))
	s.mux.HandleFunc("/metrics/channels", s.dataset(func() any { return s.app.Channels() }))
	s.mux.HandleFunc("/metrics/notifications", s.dataset(func() any { return s.app.Notifications() }))
	s.mux.HandleFunc("/metrics/empathy", s.dataset(func() any { return s.app.Empathy() }))
	s.mux.HandleFunc("/metrics/snapshot", s.handleSnapshot)
	s.mux.HandleFunc("/metrics/knowledge/import", s.handleKnowledgeImport)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) dataset(payload func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		writeJSON(w, http.StatusOK, payload())
	}
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	snapshot, err := s.app.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleKnowledgeImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload")
		return
	}
	if int64(len(data)) > s.maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "document too large")
		return
	}
	article, err := s.app.ImportKnowledgePDF(header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmptyDocument), errors.Is(err, app.ErrInvalidDocument):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"article": article})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
