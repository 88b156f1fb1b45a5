package player

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed shell.html.tmpl
var shellTemplate string

var shell = template.Must(template.New("shell").Parse(shellTemplate))

// ShellData feeds the player shell template.
type ShellData struct {
	AttemptID string
	LaunchURL string
	Title     string
}

// RenderShell writes the HTML page that hosts a SCO in an iframe and exposes
// the SCORM 1.2 API object the content expects to find on its parent window.
func RenderShell(w io.Writer, data ShellData) error {
	if err := shell.Execute(w, data); err != nil {
		return fmt.Errorf("render player shell: %w", err)
	}
	return nil
}
