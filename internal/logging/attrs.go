package logging

import "log/slog"

// Shared attribute keys so log lines stay greppable across packages.
const (
	FieldComponent = "component"
	FieldCourseID  = "course_id"
	FieldAttemptID = "attempt_id"
)

// WithComponent tags a logger with the owning component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}
