package server

import (
	"encoding/json"
	"net/http"
	"path"

	"scormd/internal/api"
	"scormd/internal/player"
)

func (s *Server) handleCreateAttempt(w http.ResponseWriter, r *http.Request) {
	var req api.CreateAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}
	if req.LearnerID == "" {
		s.writeError(w, http.StatusBadRequest, "learner_id is required")
		return
	}

	attempt, err := s.store.CreateAttempt(r.Context(), req.CourseID, req.LearnerID, req.SCOID)
	if err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, api.FromAttempt(attempt))
}

func (s *Server) handlePlayerShell(w http.ResponseWriter, r *http.Request) {
	attempt, err := s.store.GetAttempt(r.Context(), r.PathValue("attemptID"))
	if err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}
	course, err := s.store.GetCourse(r.Context(), attempt.CourseID)
	if err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}

	// Launch the attempt's SCO when one was pinned, else the course default.
	href := course.LaunchHref
	if attempt.SCOID != "" {
		sco, err := s.store.GetSCO(r.Context(), attempt.SCOID)
		if err != nil {
			s.writeError(w, storeStatus(err), err.Error())
			return
		}
		href = sco.LaunchHref + sco.Parameters
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = player.RenderShell(w, player.ShellData{
		AttemptID: attempt.ID,
		LaunchURL: "/content/" + path.Join(course.BasePath, href),
		Title:     course.Title,
	})
	if err != nil {
		s.logger.Error("render player shell", "error", err.Error())
	}
}
