package core

import "testing"

func TestNewNote(t *testing.T) {
	a := NewNote()
	b := NewNote()

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected generated IDs")
	}
	if a.ID == b.ID {
		t.Error("expected unique IDs per creation")
	}
	if a.IsDefault {
		t.Error("NewNote must not create default notes")
	}
	if a.W != DefaultWidth || a.H != DefaultHeight {
		t.Errorf("expected default geometry %vx%v, got %vx%v", DefaultWidth, DefaultHeight, a.W, a.H)
	}
}

func TestNewDefaultNote(t *testing.T) {
	d := NewDefaultNote()
	if !d.IsDefault {
		t.Error("expected IsDefault to be set")
	}
	if d.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestClone(t *testing.T) {
	n := NewNote()
	n.Content = "hello"

	c := n.Clone()
	c.Content = "changed"
	c.X = 42

	if n.Content != "hello" || n.X != 0 {
		t.Error("Clone must not share state with the original")
	}
}
