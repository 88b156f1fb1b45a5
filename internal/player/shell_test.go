package player_test

import (
	"bytes"
	"strings"
	"testing"

	"scormd/internal/player"
)

func TestRenderShell(t *testing.T) {
	var buf bytes.Buffer
	err := player.RenderShell(&buf, player.ShellData{
		AttemptID: "attempt-1",
		LaunchURL: "/content/courses/abc/index.html",
		Title:     "Widgets 101",
	})
	if err != nil {
		t.Fatalf("RenderShell failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"attempt-1",
		"/content/courses/abc/index.html",
		"Widgets 101",
		"window.API",
		"LMSCommit",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("shell missing %q", want)
		}
	}
}
