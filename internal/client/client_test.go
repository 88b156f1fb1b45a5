package client_test

import (
	"net/http/httptest"
	"testing"

	"scormd/internal/client"
	"scormd/internal/logging"
	"scormd/internal/server"
	"scormd/internal/testsupport"
)

func newClientAgainstServer(t *testing.T, token string) *client.Client {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	cfg.Paths.APIToken = token
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	st := testsupport.MustOpenStore(t, cfg)
	srv := server.New(cfg, st, logging.NewNop())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return client.New(ts.URL, token)
}

func TestClientRoundTrip(t *testing.T) {
	c := newClientAgainstServer(t, "secret")
	ctx := t.Context()

	if err := c.Health(ctx); err != nil {
		t.Fatalf("Health failed: %v", err)
	}

	archive := testsupport.BuildZip(t, map[string]string{
		"imsmanifest.xml": testsupport.MinimalManifest,
		"index.html":      "<html></html>",
	})
	course, err := c.UploadCourse(ctx, "Round Trip", "course.zip", archive)
	if err != nil {
		t.Fatalf("UploadCourse failed: %v", err)
	}
	if course.Title != "Round Trip" {
		t.Fatalf("unexpected title %q", course.Title)
	}

	courses, err := c.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected one course, got %d", len(courses))
	}

	detail, err := c.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourse failed: %v", err)
	}
	if len(detail.SCOs) != 1 {
		t.Fatalf("expected one sco, got %d", len(detail.SCOs))
	}

	attempt, err := c.CreateAttempt(ctx, course.ID, "alice", "")
	if err != nil {
		t.Fatalf("CreateAttempt failed: %v", err)
	}
	if attempt.CourseID != course.ID {
		t.Fatalf("attempt bound to wrong course: %q", attempt.CourseID)
	}

	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Courses != 1 || stats.Attempts != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if err := c.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}
	courses, err = c.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses after delete failed: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected empty course list, got %d", len(courses))
	}
}

func TestClientSurfacesServerErrors(t *testing.T) {
	c := newClientAgainstServer(t, "")

	if _, err := c.GetCourse(t.Context(), "missing"); err == nil {
		t.Fatal("expected error for unknown course")
	}
}

func TestClientRejectedWithoutToken(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.APIToken = "secret"
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	st := testsupport.MustOpenStore(t, cfg)
	srv := server.New(cfg, st, logging.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c := client.New(ts.URL, "")
	if _, err := c.ListCourses(t.Context()); err == nil {
		t.Fatal("expected unauthorized error")
	}
}
