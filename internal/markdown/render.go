// Package markdown renders note content for terminal display.
package markdown

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// DefaultWidth is the wrap width used when stdout is not a terminal.
const DefaultWidth = 80

// TermWidth returns the current terminal width, or fallback when stdout is
// not a terminal or its size cannot be determined.
func TermWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Render formats markdown content for the terminal, wrapped at width.
func Render(content []byte, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return "", fmt.Errorf("markdown: new renderer: %w", err)
	}
	out, err := r.Render(string(content))
	if err != nil {
		return "", fmt.Errorf("markdown: render: %w", err)
	}
	return out, nil
}
