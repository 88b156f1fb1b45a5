package main

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scormd/internal/config"
	"scormd/internal/logging"
	"scormd/internal/server"
	"scormd/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	serverURL  string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	st := testsupport.MustOpenStore(t, cfg)
	srv := server.New(cfg, st, logging.NewNop())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	configPath := filepath.Join(filepath.Dir(cfg.Paths.DataDir), "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		serverURL:  ts.URL,
		configPath: configPath,
	}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\napi_bind = %q\n",
		cfg.Paths.DataDir,
		cfg.Paths.LogDir,
		cfg.Paths.APIBind,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, serverURL, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--server", serverURL}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got %q", needle, haystack)
	}
}

func TestCLICourseCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	archive := testsupport.BuildZip(t, map[string]string{
		"imsmanifest.xml": testsupport.MinimalManifest,
		"index.html":      "<html></html>",
	})
	packagePath := filepath.Join(t.TempDir(), "widgets-101.zip")
	if err := os.WriteFile(packagePath, archive, 0o644); err != nil {
		t.Fatalf("write package: %v", err)
	}

	out, _, err := runCLI(t, []string{"course", "upload", packagePath}, env.serverURL, env.configPath)
	if err != nil {
		t.Fatalf("course upload: %v", err)
	}
	requireContains(t, out, "Ingested")
	requireContains(t, out, "Widgets 101")

	out, _, err = runCLI(t, []string{"course", "list"}, env.serverURL, env.configPath)
	if err != nil {
		t.Fatalf("course list: %v", err)
	}
	requireContains(t, out, "Widgets 101")
	requireContains(t, out, "index.html")

	courseID := extractCourseID(t, env)

	out, _, err = runCLI(t, []string{"course", "show", courseID}, env.serverURL, env.configPath)
	if err != nil {
		t.Fatalf("course show: %v", err)
	}
	requireContains(t, out, "ITEM-1")

	out, _, err = runCLI(t, []string{"attempt", "new", "--course", courseID, "--learner", "alice"}, env.serverURL, env.configPath)
	if err != nil {
		t.Fatalf("attempt new: %v", err)
	}
	requireContains(t, out, "Attempt ")
	requireContains(t, out, "/player/")

	out, _, err = runCLI(t, []string{"course", "delete", courseID}, env.serverURL, env.configPath)
	if err != nil {
		t.Fatalf("course delete: %v", err)
	}
	requireContains(t, out, "Deleted course")

	out, _, err = runCLI(t, []string{"course", "list"}, env.serverURL, env.configPath)
	if err != nil {
		t.Fatalf("course list after delete: %v", err)
	}
	requireContains(t, out, "No courses ingested")
}

func extractCourseID(t *testing.T, env *cliTestEnv) string {
	t.Helper()

	out, _, err := runCLI(t, []string{"course", "list", "--json"}, env.serverURL, env.configPath)
	if err != nil {
		t.Fatalf("course list --json: %v", err)
	}
	idx := strings.Index(out, `"id": "`)
	if idx < 0 {
		t.Fatalf("no course id in output: %q", out)
	}
	rest := out[idx+len(`"id": "`):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		t.Fatalf("malformed course id in output: %q", out)
	}
	return rest[:end]
}

func TestCLIUploadRejectsBadPackage(t *testing.T) {
	env := setupCLITestEnv(t)

	packagePath := filepath.Join(t.TempDir(), "broken.zip")
	if err := os.WriteFile(packagePath, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("write package: %v", err)
	}

	_, _, err := runCLI(t, []string{"course", "upload", packagePath}, env.serverURL, env.configPath)
	if err == nil {
		t.Fatal("expected upload of a broken archive to fail")
	}
}

func TestCLIStatusWithoutServer(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, "http://127.0.0.1:1", env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Not running")
	requireContains(t, out, env.cfg.Paths.DataDir)
}
