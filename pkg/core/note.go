package core

import "github.com/google/uuid"

// Default geometry applied to notes created without a style template.
const (
	DefaultWidth  = 220.0
	DefaultHeight = 180.0
)

// Note is the central entity of the domain.
// It represents a single freestanding on-screen note identified by an ID.
// It is agnostic to rendering; a View binds to it by ID while displayed.
type Note struct {
	ID        string
	X, Y      float64
	W, H      float64
	Content   string
	IsDefault bool
}

// NewNote creates a fresh non-default note with a generated ID and the
// built-in default geometry. Callers styling from a template overwrite
// the geometry afterwards.
func NewNote() *Note {
	return &Note{
		ID: uuid.NewString(),
		W:  DefaultWidth,
		H:  DefaultHeight,
	}
}

// NewDefaultNote creates the style-template entity. It is never shown
// as a window; exactly one of these exists per store.
func NewDefaultNote() *Note {
	n := NewNote()
	n.IsDefault = true
	return n
}

// Clone returns a deep copy of the note.
func (n *Note) Clone() *Note {
	c := *n
	return &c
}
