package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scormd/internal/api"
	"scormd/internal/cmi"
	"scormd/internal/logging"
	"scormd/internal/store"
)

func (s *Server) handleRuntimeInitialize(w http.ResponseWriter, r *http.Request) {
	attempt, err := s.store.GetAttempt(r.Context(), r.PathValue("attemptID"))
	if err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}
	values, err := s.store.GetCMIValues(r.Context(), attempt.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.InitializeResponse{Values: values})
}

func (s *Server) handleRuntimeCommit(w http.ResponseWriter, r *http.Request) {
	attempt, err := s.store.GetAttempt(r.Context(), r.PathValue("attemptID"))
	if err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}

	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		s.writeError(w, http.StatusBadRequest, "decode commit payload: "+err.Error())
		return
	}

	accepted := cmi.Filter(values)
	if err := s.store.SetCMIValues(r.Context(), attempt.ID, accepted); err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}

	// A terminal lesson status completes the attempt as part of the same
	// commit; players that never call finish still get a closed record.
	completed := attempt.Status == store.AttemptCompleted
	if status, ok := accepted[cmi.ElementLessonStatus]; ok && cmi.IsTerminalStatus(status) {
		if err := s.store.FinishAttempt(r.Context(), attempt.ID); err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		completed = true
	}

	rejected := len(values) - len(accepted)
	if rejected > 0 {
		s.logger.Debug("commit dropped noncompliant values",
			slog.String(logging.FieldAttemptID, attempt.ID),
			slog.Int("rejected", rejected))
	}

	s.writeJSON(w, http.StatusOK, api.CommitResponse{
		OK:        true,
		Accepted:  len(accepted),
		Rejected:  rejected,
		Completed: completed,
	})
}

func (s *Server) handleRuntimeFinish(w http.ResponseWriter, r *http.Request) {
	attempt, err := s.store.GetAttempt(r.Context(), r.PathValue("attemptID"))
	if err != nil {
		s.writeError(w, storeStatus(err), err.Error())
		return
	}
	if err := s.store.FinishAttempt(r.Context(), attempt.ID); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.OKResponse{OK: true})
}
