// Package apperr holds the sentinel errors shared across nt's packages.
package apperr

import "errors"

var (
	// ErrNotFound marks operations that referenced a note which does not
	// exist in the base directory.
	ErrNotFound = errors.New("not found")
)
