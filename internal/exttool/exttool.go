// Package exttool is the boundary between nt and the programs it delegates
// to: the chooser, the viewer, and the editor. The dispatcher never runs a
// subprocess directly.
package exttool

// Adapter presents notes to the user and collects choices. Implementations
// may shell out (Shell) or stay in-process; the dispatcher does not care.
type Adapter interface {
	// PromptChoice presents options and returns the selection. An empty
	// selection means nothing was chosen and callers fall back to their
	// non-interactive behavior. The selection may carry a trailing newline;
	// callers are expected to trim it.
	PromptChoice(options []string) (string, error)

	// RenderView displays the file at path, blocking until the viewer is
	// done.
	RenderView(path string) error

	// InvokeEditor opens the file at path in the user's editor and blocks
	// until it exits. A non-zero editor exit is returned as an error.
	InvokeEditor(path string) error
}
