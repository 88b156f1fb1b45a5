package api

import "time"

// Course is the transport representation of an ingested package.
type Course struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	OrgIdentifier string    `json:"org_identifier,omitempty"`
	LaunchHref    string    `json:"launch_href"`
	BasePath      string    `json:"base_path"`
	CreatedAt     time.Time `json:"created_at"`
}

// CourseDetail is a course plus its launchable SCO list.
type CourseDetail struct {
	Course
	SCOs []SCO `json:"scos"`
}

// SCO is the transport representation of one launchable item.
type SCO struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id"`
	Identifier string    `json:"identifier"`
	LaunchHref string    `json:"launch_href"`
	Parameters string    `json:"parameters,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Attempt is the transport representation of a learner session.
type Attempt struct {
	ID         string     `json:"id"`
	CourseID   string     `json:"course_id"`
	LearnerID  string     `json:"learner_id"`
	SCOID      string     `json:"sco_id,omitempty"`
	Status     string     `json:"status"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreateAttemptRequest starts a tracking session.
type CreateAttemptRequest struct {
	CourseID  string `json:"course_id"`
	LearnerID string `json:"learner_id"`
	SCOID     string `json:"sco_id,omitempty"`
}

// InitializeResponse seeds the player's runtime cache.
type InitializeResponse struct {
	Values map[string]string `json:"values"`
}

// CommitResponse acknowledges a runtime commit.
type CommitResponse struct {
	OK        bool `json:"ok"`
	Accepted  int  `json:"accepted"`
	Rejected  int  `json:"rejected"`
	Completed bool `json:"completed"`
}

// OKResponse is the generic acknowledgement payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatsResponse aggregates store counts for the CLI status view.
type StatsResponse struct {
	Courses           int `json:"courses"`
	SCOs              int `json:"scos"`
	Attempts          int `json:"attempts"`
	AttemptsCompleted int `json:"attempts_completed"`
}
