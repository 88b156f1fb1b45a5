package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const attemptColumns = "id, course_id, learner_id, sco_id, status, started_at, finished_at, created_at"

// CreateAttempt starts a new in-progress attempt for a learner. The course
// (and SCO, when given) must exist.
func (s *Store) CreateAttempt(ctx context.Context, courseID, learnerID, scoID string) (*Attempt, error) {
	if learnerID == "" {
		return nil, fmt.Errorf("learner id is required")
	}
	if _, err := s.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}
	if scoID != "" {
		sco, err := s.GetSCO(ctx, scoID)
		if err != nil {
			return nil, err
		}
		if sco.CourseID != courseID {
			return nil, fmt.Errorf("sco %s belongs to another course: %w", scoID, ErrNotFound)
		}
	}

	id := uuid.NewString()
	timestamp := nowTimestamp()
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO attempts (id, course_id, learner_id, sco_id, status, started_at, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		courseID,
		learnerID,
		nullableString(scoID),
		AttemptInProgress,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert attempt: %w", err)
	}

	return s.GetAttempt(ctx, id)
}

// GetAttempt fetches an attempt by identifier.
func (s *Store) GetAttempt(ctx context.Context, id string) (*Attempt, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+attemptColumns+` FROM attempts WHERE id = ?`, id)
	attempt, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	return attempt, nil
}

// FinishAttempt transitions an attempt to completed and stamps finished_at.
// Finishing an already-completed attempt is a no-op.
func (s *Store) FinishAttempt(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE attempts SET status = ?, finished_at = ? WHERE id = ? AND status != ?`,
		AttemptCompleted,
		nowTimestamp(),
		id,
		AttemptCompleted,
	)
	if err != nil {
		return fmt.Errorf("finish attempt: %w", err)
	}
	if _, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("finish attempt rows affected: %w", err)
	}
	return nil
}

// Stats returns aggregate row counts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	queries := []struct {
		dest  *int
		query string
	}{
		{&stats.Courses, "SELECT COUNT(1) FROM courses"},
		{&stats.SCOs, "SELECT COUNT(1) FROM scos"},
		{&stats.Attempts, "SELECT COUNT(1) FROM attempts"},
		{&stats.AttemptsCompleted, "SELECT COUNT(1) FROM attempts WHERE status = 'completed'"},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return Stats{}, fmt.Errorf("stats query: %w", err)
		}
	}
	return stats, nil
}

func scanAttempt(row rowScanner) (*Attempt, error) {
	var attempt Attempt
	var scoID sql.NullString
	var startedAt, finishedAt sql.NullString
	var status, createdAt string
	if err := row.Scan(&attempt.ID, &attempt.CourseID, &attempt.LearnerID, &scoID, &status, &startedAt, &finishedAt, &createdAt); err != nil {
		return nil, err
	}
	attempt.SCOID = scoID.String
	attempt.Status = AttemptStatus(status)

	started, err := parseNullableTimestamp(startedAt)
	if err != nil {
		return nil, err
	}
	attempt.StartedAt = started

	finished, err := parseNullableTimestamp(finishedAt)
	if err != nil {
		return nil, err
	}
	attempt.FinishedAt = finished

	created, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	attempt.CreatedAt = created
	return &attempt, nil
}
