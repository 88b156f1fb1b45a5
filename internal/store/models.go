package store

import "time"

// AttemptStatus represents the lifecycle of a tracking attempt.
type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
)

// Course is one ingested content package.
type Course struct {
	ID            string
	Title         string
	OrgIdentifier string
	LaunchHref    string
	// BasePath is relative to the data directory, e.g. "courses/<uuid>";
	// extracted content is served from there.
	BasePath  string
	CreatedAt time.Time
}

// SCO is one launchable learning object within a course. Position preserves
// manifest document order.
type SCO struct {
	ID         string
	CourseID   string
	Identifier string
	LaunchHref string
	Parameters string
	Position   int
	CreatedAt  time.Time
}

// Attempt is one learner session against a course (optionally a single SCO).
type Attempt struct {
	ID         string
	CourseID   string
	LearnerID  string
	SCOID      string
	Status     AttemptStatus
	StartedAt  *time.Time
	FinishedAt *time.Time
	CreatedAt  time.Time
}

// Stats aggregates row counts for the CLI status view.
type Stats struct {
	Courses           int
	SCOs              int
	Attempts          int
	AttemptsCompleted int
}
