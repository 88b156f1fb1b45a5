package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"scormd/internal/config"
	"scormd/internal/ingest"
	"scormd/internal/logging"
	"scormd/internal/store"
)

// Server exposes the course ingestion, attempt, runtime, and content routes.
type Server struct {
	cfg      *config.Config
	store    *store.Store
	ingestor *ingest.Ingestor
	logger   *slog.Logger

	listener net.Listener
	server   *http.Server
}

// New constructs a Server around an open store.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		store:    st,
		ingestor: ingest.New(st, cfg, logger),
		logger:   logging.WithComponent(logger, "server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	token := cfg.Paths.APIToken
	mux.HandleFunc("POST /api/courses", authMiddleware(token, s.handleUploadCourse))
	mux.HandleFunc("GET /api/courses", authMiddleware(token, s.handleListCourses))
	mux.HandleFunc("GET /api/courses/{id}", authMiddleware(token, s.handleGetCourse))
	mux.HandleFunc("DELETE /api/courses/{id}", authMiddleware(token, s.handleDeleteCourse))
	mux.HandleFunc("POST /api/attempts", authMiddleware(token, s.handleCreateAttempt))
	mux.HandleFunc("GET /api/stats", authMiddleware(token, s.handleStats))

	// Player, runtime, and content routes stay tokenless; the embedded frame
	// and the SCO's own asset loads cannot attach headers.
	mux.HandleFunc("GET /player/{attemptID}", s.handlePlayerShell)
	mux.HandleFunc("POST /runtime/{attemptID}/initialize", s.handleRuntimeInitialize)
	mux.HandleFunc("POST /runtime/{attemptID}/commit", s.handleRuntimeCommit)
	mux.HandleFunc("POST /runtime/{attemptID}/finish", s.handleRuntimeFinish)
	mux.Handle("GET /content/", http.StripPrefix("/content/", http.FileServer(http.Dir(cfg.Paths.DataDir))))

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       120 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the route handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start binds the configured address and serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Paths.APIBind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", slog.String("error", err.Error()))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound listen address, empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
