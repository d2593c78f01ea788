// Package api - HTTP surface for the tariff engine
// The API is only responsible for input ingestion, engine orchestration
// and output serialization; it never performs rate logic.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tariff-cost/core/engine"
	"tariff-cost/core/tables"
	"tariff-cost/internal/logging"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// Server is the API server.
type Server struct {
	router  chi.Router
	handler *Handler
	store   *tables.Store
	version string
}

// NewServer creates an API server around an engine and its dataset store.
func NewServer(eng *engine.Engine, store *tables.Store, version string) *Server {
	s := &Server{
		handler: NewHandler(eng),
		store:   store,
		version: version,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(logMiddleware)
	r.Post("/calculate", s.handler.HandleCalculate)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/tables", s.handleTables)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	tableList := s.store.Tables()
	infos := make([]TableInfo, 0, len(tableList))
	for _, t := range tableList {
		infos = append(infos, TableInfo{Name: t.Name, Rows: t.Len()})
	}
	writeJSON(w, infos, http.StatusOK)
}

// requestIDMiddleware assigns a request ID and echoes it in a header.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Duration("duration", time.Since(start)))
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
