package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/seldre/nt/internal/apperr"
	"github.com/seldre/nt/internal/models"
)

// Dir implements Provider over a single flat directory.
type Dir struct {
	base string
}

var _ Provider = (*Dir)(nil)

// NewDir creates a store rooted at base. The directory does not have to
// exist yet: EnsureBase creates it, and List treats a missing base as empty.
func NewDir(base string) *Dir {
	return &Dir{base: base}
}

// Path joins the base directory with the given segments. It performs no
// validation and never touches the file system.
func (d *Dir) Path(parts ...string) string {
	return filepath.Join(append([]string{d.base}, parts...)...)
}

// Base returns the base directory path.
func (d *Dir) Base() string { return d.base }

// BaseExists reports whether the base directory currently exists.
func (d *Dir) BaseExists() bool {
	info, err := os.Stat(d.base)
	return err == nil && info.IsDir()
}

// EnsureBase creates the base directory. Safe to call repeatedly.
func (d *Dir) EnsureBase() error {
	if err := os.MkdirAll(d.base, 0o755); err != nil {
		return fmt.Errorf("storage: create base %s: %w", d.base, err)
	}
	return nil
}

// List returns every direct child of the base directory whose name does not
// start with a dot, in lexical order by name. A missing base directory
// yields an empty listing rather than an error.
func (d *Dir) List() ([]models.Note, error) {
	entries, err := os.ReadDir(d.base)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: list %s: %w", d.base, err)
	}
	var out []models.Note
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		out = append(out, models.Note{Name: name, Path: d.Path(name)})
	}
	return out, nil
}

// Touch creates the named note if it is missing and bumps its modification
// time if it exists. Existing content is never altered. Empty names are
// ignored.
func (d *Dir) Touch(name string) error {
	if name == "" {
		return nil
	}
	path := d.Path(name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: touch %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: touch %s: %w", name, err)
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return fmt.Errorf("storage: touch %s: %w", name, err)
	}
	return nil
}

// Remove deletes the named note. Empty names are ignored. The returned error
// wraps apperr.ErrNotFound when the note does not exist.
func (d *Dir) Remove(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(d.Path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("storage: delete %s: %w", name, apperr.ErrNotFound)
		}
		return fmt.Errorf("storage: delete %s: %w", name, err)
	}
	return nil
}
