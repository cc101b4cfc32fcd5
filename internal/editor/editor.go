// Package editor shells out to the user's text editor for snippet and
// whole-document edits.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const snippetHeader = `# Fix: %s
# Delete nothing above this line; edit the text below, then save and exit.

`

// CommandEditor runs an external editor command attached to the terminal.
type CommandEditor struct {
	Command string
}

// New creates a CommandEditor. An empty command falls back to $EDITOR,
// then to nano.
func New(command string) *CommandEditor {
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	if command == "" {
		command = "nano"
	}
	return &CommandEditor{Command: command}
}

// EditSnippet writes the snippet to a temp file with an instruction header,
// opens the editor on it, and returns the edited text with header comment
// lines stripped. An unchanged or emptied snippet is returned as-is so the
// caller can detect a no-op edit.
func (e *CommandEditor) EditSnippet(snippet, description string) (string, error) {
	tmp, err := os.CreateTemp("", "prosecoach-snippet-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	content := fmt.Sprintf(snippetHeader, description) + snippet
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	if err := e.EditDocument(path); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}

	return stripHeader(string(edited)), nil
}

// stripHeader removes the instruction comment lines added by EditSnippet.
func stripHeader(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// EditDocument opens path in the editor and blocks until it exits.
func (e *CommandEditor) EditDocument(path string) error {
	parts := strings.Fields(e.Command)
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", e.Command, err)
	}
	return nil
}
