// Package storage implements the note store over a flat base directory.
package storage

import "github.com/seldre/nt/internal/models"

// Provider is the interface for note store operations.
type Provider interface {
	// Path joins the base directory with the given path segments.
	Path(parts ...string) string
	// Base returns the base directory path.
	Base() string
	// BaseExists reports whether the base directory currently exists.
	BaseExists() bool
	// EnsureBase creates the base directory if it is missing.
	EnsureBase() error
	// List returns every non-hidden direct child of the base directory.
	List() ([]models.Note, error)
	// Touch creates the named note if it does not exist.
	Touch(name string) error
	// Remove deletes the named note.
	Remove(name string) error
}
