package internal

import (
	"io"
	"log/slog"

	"github.com/seldre/nt/internal/exttool"
	"github.com/seldre/nt/internal/storage"
)

// Option is a functional option for configuring the application.
type Option func(*App)

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) {
		a.cfg = cfg
	}
}

// WithLogger replaces the logger derived from the configuration.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithStore replaces the note store derived from the configuration.
func WithStore(store storage.Provider) Option {
	return func(a *App) {
		a.store = store
	}
}

// WithTools replaces the external tool adapter derived from the
// configuration.
func WithTools(tools exttool.Adapter) Option {
	return func(a *App) {
		a.tools = tools
	}
}

// WithStdout redirects listing and rendering output, mainly for tests.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}
