package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"scormd/internal/api"
	"scormd/internal/ingest"
	"scormd/internal/manifest"
	"scormd/internal/store"
)

// authMiddleware validates bearer tokens. An empty token disables auth.
func authMiddleware(token string, next http.HandlerFunc) http.HandlerFunc {
	if token == "" {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		if strings.TrimPrefix(auth, "Bearer ") != token {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}

// ingestStatus maps pipeline failures onto HTTP status codes: broken uploads
// are client errors, manifests that extract but do not resolve are
// unprocessable, anything else is on us.
func ingestStatus(err error) int {
	switch {
	case errors.Is(err, ingest.ErrBadArchive):
		return http.StatusBadRequest
	case errors.Is(err, manifest.ErrMissingManifest),
		errors.Is(err, manifest.ErrMalformedXML),
		errors.Is(err, manifest.ErrNoLaunchPath):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func storeStatus(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
