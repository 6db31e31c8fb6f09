// Package internal wires nt together: configuration, the note store, the
// external tool adapter, and the command dispatcher.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/seldre/nt/internal/exttool"
	"github.com/seldre/nt/internal/models"
	"github.com/seldre/nt/internal/storage"
)

// Actions offered for a chosen note in interactive listings.
const (
	actionView = "view"
	actionEdit = "edit"
)

// App executes nt commands against the note store, reaching the user only
// through the external tool adapter.
type App struct {
	cfg    *Config
	log    *slog.Logger
	store  storage.Provider
	tools  exttool.Adapter
	stdout io.Writer
}

// New builds an App from options. A config is required; the logger, store,
// and tool adapter are derived from it unless overridden.
func New(opts ...Option) (*App, error) {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}

	if app.cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := app.cfg.Validate(); err != nil {
		return nil, err
	}

	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.log == nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: app.cfg.App.Level(),
		}))
		slog.SetDefault(logger)
		app.log = logger
	}
	if app.store == nil {
		app.store = storage.NewDir(app.cfg.Notes.Dir)
	}
	if app.tools == nil {
		app.tools = exttool.NewShell(exttool.Options{
			Interactive:     app.cfg.Tools.Chooser.Enabled,
			ChooserCommand:  app.cfg.Tools.Chooser.Command,
			RenderEnabled:   app.cfg.Tools.Renderer.Enabled,
			RendererCommand: app.cfg.Tools.Renderer.Command,
			EditorFallback:  app.cfg.Tools.Editor.Command,
			Stdout:          app.stdout,
			Logger:          app.log,
		})
	}
	return app, nil
}

// Init creates the base directory. Running it twice is harmless.
func (a *App) Init(_ context.Context) error {
	if a.store.BaseExists() {
		a.log.Debug("base directory already initialized", slog.String("dir", a.store.Base()))
		return nil
	}
	if err := a.store.EnsureBase(); err != nil {
		return err
	}
	a.log.Info("base directory created", slog.String("dir", a.store.Base()))
	return nil
}

// List shows the notes. The adapter is always asked for a selection first:
// an empty selection (interactive mode off, or the chooser dismissed) falls
// back to printing one name per line. With watch set, the plain listing is
// reprinted whenever the base directory changes, until ctx is cancelled.
func (a *App) List(ctx context.Context, watch bool) error {
	if !a.store.BaseExists() {
		a.log.Debug("base directory missing, nothing to list", slog.String("dir", a.store.Base()))
		return nil
	}
	notes, err := a.store.List()
	if err != nil {
		return err
	}

	selection, err := a.tools.PromptChoice(models.Names(notes))
	if err != nil {
		return err
	}
	if name := trimSelection(selection); name != "" {
		return a.actOn(name, notes)
	}

	if err := a.printListing(notes); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return storage.Watch(ctx, a.store.Base(), a.log, func() {
		current, listErr := a.store.List()
		if listErr != nil {
			a.log.Warn("relist failed", slog.String("error", listErr.Error()))
			return
		}
		if printErr := a.printListing(current); printErr != nil {
			a.log.Warn("relist failed", slog.String("error", printErr.Error()))
		}
	})
}

// actOn asks which of view or edit to apply to the chosen note. Selections
// are matched exactly; anything else is a no-op.
func (a *App) actOn(name string, notes []models.Note) error {
	idx := slices.IndexFunc(notes, func(n models.Note) bool { return n.Name == name })
	if idx < 0 {
		a.log.Debug("selection is not a note", slog.String("name", name))
		return nil
	}
	note := notes[idx]
	action, err := a.tools.PromptChoice([]string{actionView, actionEdit})
	if err != nil {
		return err
	}
	switch trimSelection(action) {
	case actionView:
		return a.tools.RenderView(note.Path)
	case actionEdit:
		return a.tools.InvokeEditor(note.Path)
	default:
		a.log.Debug("no action chosen", slog.String("name", name))
		return nil
	}
}

func (a *App) printListing(notes []models.Note) error {
	for _, n := range notes {
		if _, err := fmt.Fprintln(a.stdout, n.Name); err != nil {
			return err
		}
	}
	return nil
}

// View renders the named note without checking that it exists; what a
// missing file shows is the viewer's business.
func (a *App) View(_ context.Context, name string) error {
	if name == "" {
		return nil
	}
	if !a.store.BaseExists() {
		a.log.Debug("base directory missing", slog.String("dir", a.store.Base()))
		return nil
	}
	return a.tools.RenderView(a.store.Path(name))
}

// Add creates an empty note if it does not already exist. Existing notes
// keep their content.
func (a *App) Add(_ context.Context, name string) error {
	if name == "" {
		return nil
	}
	if err := a.store.Touch(name); err != nil {
		return err
	}
	a.log.Debug("note touched", slog.String("name", name))
	return nil
}

// Edit opens the named note in the editor. The note is not created first;
// editors handle new files themselves.
func (a *App) Edit(_ context.Context, name string) error {
	if name == "" {
		return nil
	}
	return a.tools.InvokeEditor(a.store.Path(name))
}

// Delete removes the named note. Deleting a note that does not exist is an
// error.
func (a *App) Delete(_ context.Context, name string) error {
	if name == "" {
		return nil
	}
	if err := a.store.Remove(name); err != nil {
		return fmt.Errorf("could not delete %q: %w", name, err)
	}
	a.log.Debug("note deleted", slog.String("name", name))
	return nil
}

// trimSelection drops the trailing line break a chooser emits with the
// selected option.
func trimSelection(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
