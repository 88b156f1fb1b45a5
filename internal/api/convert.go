package api

import "scormd/internal/store"

// FromCourse converts a store course into its transport form.
func FromCourse(course *store.Course) Course {
	return Course{
		ID:            course.ID,
		Title:         course.Title,
		OrgIdentifier: course.OrgIdentifier,
		LaunchHref:    course.LaunchHref,
		BasePath:      course.BasePath,
		CreatedAt:     course.CreatedAt,
	}
}

// FromCourses converts a course slice.
func FromCourses(courses []store.Course) []Course {
	out := make([]Course, 0, len(courses))
	for i := range courses {
		out = append(out, FromCourse(&courses[i]))
	}
	return out
}

// FromSCO converts a store SCO into its transport form.
func FromSCO(sco *store.SCO) SCO {
	return SCO{
		ID:         sco.ID,
		CourseID:   sco.CourseID,
		Identifier: sco.Identifier,
		LaunchHref: sco.LaunchHref,
		Parameters: sco.Parameters,
		CreatedAt:  sco.CreatedAt,
	}
}

// FromSCOs converts a SCO slice.
func FromSCOs(scos []store.SCO) []SCO {
	out := make([]SCO, 0, len(scos))
	for i := range scos {
		out = append(out, FromSCO(&scos[i]))
	}
	return out
}

// FromAttempt converts a store attempt into its transport form.
func FromAttempt(attempt *store.Attempt) Attempt {
	return Attempt{
		ID:         attempt.ID,
		CourseID:   attempt.CourseID,
		LearnerID:  attempt.LearnerID,
		SCOID:      attempt.SCOID,
		Status:     string(attempt.Status),
		StartedAt:  attempt.StartedAt,
		FinishedAt: attempt.FinishedAt,
		CreatedAt:  attempt.CreatedAt,
	}
}

// FromStats converts aggregate counts.
func FromStats(stats store.Stats) StatsResponse {
	return StatsResponse{
		Courses:           stats.Courses,
		SCOs:              stats.SCOs,
		Attempts:          stats.Attempts,
		AttemptsCompleted: stats.AttemptsCompleted,
	}
}
