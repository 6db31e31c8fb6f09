package exttool

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/seldre/nt/internal/markdown"
	"github.com/seldre/nt/internal/tui"
)

// DefaultEditor is the editor of last resort when neither $EDITOR nor the
// configured fallback is set.
const DefaultEditor = "ed"

// Options configures a Shell. Command strings are split on whitespace, so
// they may carry arguments ("fzf --height 40%").
type Options struct {
	// Interactive enables choice prompting. When false, PromptChoice
	// returns the empty selection without running anything.
	Interactive bool
	// ChooserCommand is an external single-choice program, fzf style:
	// options on stdin, selection on stdout, UI on stderr. Empty selects
	// the built-in picker.
	ChooserCommand string
	// RenderEnabled gates RenderView entirely.
	RenderEnabled bool
	// RendererCommand is an external viewer given the file path as its last
	// argument. Empty selects the built-in markdown renderer.
	RendererCommand string
	// EditorFallback is consulted when $EDITOR is unset.
	EditorFallback string
	// Stdout receives viewer output. Defaults to os.Stdout.
	Stdout io.Writer
	Logger *slog.Logger
}

// Shell implements Adapter with subprocesses, falling back to built-in
// terminal UIs when no command is configured.
type Shell struct {
	opts   Options
	log    *slog.Logger
	stdout io.Writer
}

var _ Adapter = (*Shell)(nil)

// NewShell builds a Shell from opts, filling in the defaults.
func NewShell(opts Options) *Shell {
	s := &Shell{opts: opts, log: opts.Logger, stdout: opts.Stdout}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	return s
}

// PromptChoice presents options through the chooser. The selection is the
// chooser's raw stdout, trailing newline included. A chooser dismissed
// without selecting yields ("", nil).
func (s *Shell) PromptChoice(options []string) (string, error) {
	if !s.opts.Interactive || len(options) == 0 {
		return "", nil
	}
	argv := strings.Fields(s.opts.ChooserCommand)
	if len(argv) == 0 {
		return tui.Pick("nt", options)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n") + "\n")
	// Full-screen choosers draw their UI on stderr.
	cmd.Stderr = os.Stderr
	var out bytes.Buffer
	cmd.Stdout = &out

	err := cmd.Run()
	selection := out.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && selection == "" {
			// fzf and friends exit non-zero on esc or ctrl-c.
			s.log.Debug("chooser cancelled", slog.Int("status", exitErr.ExitCode()))
			return "", nil
		}
		return "", fmt.Errorf("exttool: chooser %s: %w", argv[0], err)
	}
	return selection, nil
}

// RenderView displays the file at path. An external viewer owns its own exit
// status; quitting a pager is not a failed view. The built-in renderer fails
// when the file cannot be read.
func (s *Shell) RenderView(path string) error {
	if !s.opts.RenderEnabled {
		return nil
	}
	argv := strings.Fields(s.opts.RendererCommand)
	if len(argv) == 0 {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("exttool: render %s: %w", path, err)
		}
		out, err := markdown.Render(content, markdown.TermWidth(markdown.DefaultWidth))
		if err != nil {
			return err
		}
		_, err = io.WriteString(s.stdout, out)
		return err
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("exttool: renderer %s: %w", argv[0], err)
		}
		s.log.Debug("renderer exited",
			slog.String("command", argv[0]),
			slog.Int("status", exitErr.ExitCode()))
	}
	return nil
}

// InvokeEditor opens path in the resolved editor and blocks until it exits.
func (s *Shell) InvokeEditor(path string) error {
	argv := s.editor()
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	s.log.Debug("invoking editor",
		slog.String("command", strings.Join(argv, " ")),
		slog.String("path", path))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with non-zero status: %d", exitErr.ExitCode())
		}
		return fmt.Errorf("exttool: editor %s: %w", argv[0], err)
	}
	return nil
}

// editor resolves the editor command line: $EDITOR, then the configured
// fallback, then DefaultEditor.
func (s *Shell) editor() []string {
	for _, candidate := range []string{os.Getenv("EDITOR"), s.opts.EditorFallback} {
		if argv := strings.Fields(candidate); len(argv) > 0 {
			return argv
		}
	}
	return []string{DefaultEditor}
}
