package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NewCourse carries everything needed to persist one ingested package.
type NewCourse struct {
	ID            string
	Title         string
	OrgIdentifier string
	LaunchHref    string
	BasePath      string
	SCOs          []NewSCO
}

// NewSCO is one launchable item to persist alongside its course.
type NewSCO struct {
	Identifier string
	LaunchHref string
	Parameters string
}

const courseColumns = "id, title, org_identifier, launch_href, base_path, created_at"

// CreateCourse inserts a course and its SCO rows in one transaction. Ingestion
// is all-or-nothing: any failure leaves no rows behind.
func (s *Store) CreateCourse(ctx context.Context, course NewCourse) (*Course, error) {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.LaunchHref == "" {
		return nil, fmt.Errorf("course launch href is required")
	}
	timestamp := nowTimestamp()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin course tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO courses (id, title, org_identifier, launch_href, base_path, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		course.ID,
		course.Title,
		nullableString(course.OrgIdentifier),
		course.LaunchHref,
		course.BasePath,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	for position, sco := range course.SCOs {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO scos (id, course_id, identifier, launch_href, parameters, position, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(),
			course.ID,
			sco.Identifier,
			sco.LaunchHref,
			nullableString(sco.Parameters),
			position,
			timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("insert sco %q: %w", sco.Identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit course: %w", err)
	}

	return s.GetCourse(ctx, course.ID)
}

// GetCourse fetches a course by identifier.
func (s *Store) GetCourse(ctx context.Context, id string) (*Course, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// ListCourses returns all courses, newest first.
func (s *Store) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return courses, nil
}

// DeleteCourse removes a course; SCO, attempt, and tracking rows cascade.
func (s *Store) DeleteCourse(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete course rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("course %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListSCOs returns a course's SCOs in manifest document order.
func (s *Store) ListSCOs(ctx context.Context, courseID string) ([]SCO, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, course_id, identifier, launch_href, parameters, position, created_at
         FROM scos WHERE course_id = ? ORDER BY position`,
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("list scos: %w", err)
	}
	defer rows.Close()

	var scos []SCO
	for rows.Next() {
		sco, err := scanSCO(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sco: %w", err)
		}
		scos = append(scos, *sco)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scos: %w", err)
	}
	return scos, nil
}

// GetSCO fetches a single SCO by identifier.
func (s *Store) GetSCO(ctx context.Context, id string) (*SCO, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, course_id, identifier, launch_href, parameters, position, created_at
         FROM scos WHERE id = ?`,
		id,
	)
	sco, err := scanSCO(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sco %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get sco: %w", err)
	}
	return sco, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*Course, error) {
	var course Course
	var orgIdentifier sql.NullString
	var createdAt string
	if err := row.Scan(&course.ID, &course.Title, &orgIdentifier, &course.LaunchHref, &course.BasePath, &createdAt); err != nil {
		return nil, err
	}
	course.OrgIdentifier = orgIdentifier.String
	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	course.CreatedAt = ts
	return &course, nil
}

func scanSCO(row rowScanner) (*SCO, error) {
	var sco SCO
	var parameters sql.NullString
	var createdAt string
	if err := row.Scan(&sco.ID, &sco.CourseID, &sco.Identifier, &sco.LaunchHref, &parameters, &sco.Position, &createdAt); err != nil {
		return nil, err
	}
	sco.Parameters = parameters.String
	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	sco.CreatedAt = ts
	return &sco, nil
}
