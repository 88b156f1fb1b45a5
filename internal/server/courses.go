package server

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"scormd/internal/api"
)

func (s *Server) handleUploadCourse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.writeError(w, http.StatusBadRequest, "parse multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "read upload: "+err.Error())
		return
	}

	course, err := s.ingestor.Ingest(r.Context(), r.FormValue("title"), header.Filename, data)
	if err != nil {
		s.logger.Warn("course ingestion failed",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		s.writeError(w, ingestStatus(err), err.Error())
		return
	}

	s.writeJSON(w, http.StatusCreated, api.FromCourse(course))
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.store.ListCourses(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromCourses(courses))
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.store.GetCourse(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}
	scos, err := s.store.ListSCOs(r.Context(), course.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.CourseDetail{
		Course: api.FromCourse(course),
		SCOs:   api.FromSCOs(scos),
	})
}

func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.store.GetCourse(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}
	if err := s.store.DeleteCourse(r.Context(), course.ID); err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}
	// Extracted content is removed after the rows so a failed delete never
	// strands a course pointing at missing files.
	if course.BasePath != "" {
		_ = os.RemoveAll(filepath.Join(s.cfg.Paths.DataDir, filepath.FromSlash(course.BasePath)))
	}
	s.writeJSON(w, http.StatusOK, api.OKResponse{OK: true})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromStats(stats))
}
