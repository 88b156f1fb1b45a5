package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SetCMIValues upserts tracking values for an attempt in one transaction.
// Callers are expected to pass values already filtered by the cmi package.
func (s *Store) SetCMIValues(ctx context.Context, attemptID string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	if _, err := s.GetAttempt(ctx, attemptID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cmi tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	timestamp := nowTimestamp()
	for element, value := range values {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO cmi_values (attempt_id, element, value, updated_at)
             VALUES (?, ?, ?, ?)
             ON CONFLICT (attempt_id, element)
             DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			attemptID,
			element,
			value,
			timestamp,
		)
		if err != nil {
			return fmt.Errorf("upsert cmi value %q: %w", element, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cmi values: %w", err)
	}
	return nil
}

// GetCMIValues returns all stored tracking values for an attempt.
func (s *Store) GetCMIValues(ctx context.Context, attemptID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT element, value FROM cmi_values WHERE attempt_id = ?`,
		attemptID,
	)
	if err != nil {
		return nil, fmt.Errorf("get cmi values: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var element string
		var value sql.NullString
		if err := rows.Scan(&element, &value); err != nil {
			return nil, fmt.Errorf("scan cmi value: %w", err)
		}
		values[element] = value.String
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cmi values: %w", err)
	}
	return values, nil
}
