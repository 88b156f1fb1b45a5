package testsupport

import (
	"context"
	"testing"

	"scormd/internal/config"
	"scormd/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// MustCreateCourse persists a minimal course for tests.
func MustCreateCourse(t testing.TB, st *store.Store, title string, scos ...store.NewSCO) *store.Course {
	t.Helper()

	course, err := st.CreateCourse(context.Background(), store.NewCourse{
		Title:      title,
		LaunchHref: "index.html",
		BasePath:   "courses/test",
		SCOs:       scos,
	})
	if err != nil {
		t.Fatalf("store.CreateCourse: %v", err)
	}
	return course
}
