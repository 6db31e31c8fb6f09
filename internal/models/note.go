// Package models defines the domain types for nt.
package models

// Note is a single entry in the base directory. Content lives on disk and is
// never loaded here; a Note carries the name listings match on and the
// resolved path handed to the viewer and editor.
type Note struct {
	Name string
	Path string
}

// Names flattens notes to their names, preserving order.
func Names(notes []Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Name)
	}
	return out
}
