package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/stickies/pkg/core"
)

// setupStore helps create a store persisting into a temp directory.
func setupStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(Config{Path: filepath.Join(t.TempDir(), "notes.xml")})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File Yields One Default", func(t *testing.T) {
		s := setupStore(t)

		if err := s.Load(ctx); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		assertOneDefault(t, s)
		if s.Len() != 1 {
			t.Errorf("expected only the synthesized default, got %d notes", s.Len())
		}
	})

	t.Run("Empty File Yields One Default", func(t *testing.T) {
		s := setupStore(t)
		if err := os.WriteFile(s.Path(), []byte("  \n"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := s.Load(ctx); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		assertOneDefault(t, s)
	})

	t.Run("Corrupt File Degrades To Default Only", func(t *testing.T) {
		s := setupStore(t)
		if err := os.WriteFile(s.Path(), []byte("<notes><note></nope>"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := s.Load(ctx); err != nil {
			t.Fatalf("Load must swallow parse errors, got: %v", err)
		}
		assertOneDefault(t, s)
		if s.Len() != 1 {
			t.Errorf("expected 1 note after corrupt load, got %d", s.Len())
		}
	})

	t.Run("Bulk Load Fires One Aggregate Event", func(t *testing.T) {
		s := setupStore(t)
		seedFile(t, s, []*core.Note{core.NewDefaultNote(), core.NewNote(), core.NewNote()})

		var events []core.Event
		s.coll.OnChange(func(e core.Event) { events = append(events, e) })

		if err := s.Load(ctx); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(events) != 1 || events[0].Type != core.EventReset {
			t.Errorf("expected a single Reset event, got %v", events)
		}
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("Reproduces Field Values", func(t *testing.T) {
		s := setupStore(t)
		if err := s.Load(ctx); err != nil {
			t.Fatal(err)
		}

		a := core.NewNote()
		a.X, a.Y, a.W, a.H = 10.5, 20, 300, 144
		a.Content = "buy <gysahl> greens & carrots"
		if err := s.Add(a); err != nil {
			t.Fatal(err)
		}

		if err := s.Save(ctx); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		fresh, err := New(Config{Path: s.Path()})
		if err != nil {
			t.Fatal(err)
		}
		if err := fresh.Load(ctx); err != nil {
			t.Fatalf("reload failed: %v", err)
		}

		assertOneDefault(t, fresh)
		if fresh.Len() != s.Len() {
			t.Fatalf("expected %d notes after reload, got %d", s.Len(), fresh.Len())
		}

		got := fresh.Get(a.ID)
		if got == nil {
			t.Fatalf("note %s missing after reload", a.ID)
		}
		if *got != *a {
			t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, a)
		}
	})

	t.Run("No Duplicate Default After Reload", func(t *testing.T) {
		s := setupStore(t)
		if err := s.Load(ctx); err != nil {
			t.Fatal(err)
		}
		if err := s.Save(ctx); err != nil {
			t.Fatal(err)
		}

		fresh, err := New(Config{Path: s.Path()})
		if err != nil {
			t.Fatal(err)
		}
		if err := fresh.Load(ctx); err != nil {
			t.Fatal(err)
		}
		assertOneDefault(t, fresh)
	})
}

func TestReloadReplacesCollection(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	def := core.NewDefaultNote()
	a := core.NewNote()
	a.Content = "old content"
	b := core.NewNote()
	seedFile(t, s, []*core.Note{def, a, b})
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	// Another process edits a, deletes b and swaps the default note.
	edited := a.Clone()
	edited.Content = "new content"
	newDef := core.NewDefaultNote()
	seedFile(t, s, []*core.Note{newDef, edited})

	if err := s.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	got := s.Get(a.ID)
	if got == nil || got.Content != "new content" {
		t.Errorf("expected reload to pick up the external edit, got %+v", got)
	}
	if s.Get(b.ID) != nil {
		t.Error("expected reload to drop the externally deleted note")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 notes after reload, got %d", s.Len())
	}
	assertOneDefault(t, s)
	if s.DefaultNote().ID != newDef.ID {
		t.Errorf("expected the file's default note to win, got %s", s.DefaultNote().ID)
	}
}

func TestSaveErrors(t *testing.T) {
	t.Run("Unwritable Target Propagates", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("root ignores permission bits")
		}

		dir := t.TempDir()
		if err := os.Chmod(dir, 0555); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

		s, err := New(Config{Path: filepath.Join(dir, "notes.xml")})
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Save(context.Background()); err == nil {
			t.Error("expected Save to propagate the write error")
		}
	})
}

func TestRemove(t *testing.T) {
	s := setupStore(t)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	n := core.NewNote()
	if err := s.Add(n); err != nil {
		t.Fatal(err)
	}
	before := s.Len()

	if !s.Remove(n.ID) {
		t.Error("expected Remove to report success")
	}
	if s.Len() != before-1 {
		t.Errorf("expected length %d, got %d", before-1, s.Len())
	}

	// Removing an absent ID is a no-op.
	if s.Remove(n.ID) {
		t.Error("expected second Remove to be a no-op")
	}
	if s.Len() != before-1 {
		t.Errorf("length changed by no-op remove")
	}
}

func TestAddDuplicate(t *testing.T) {
	s := setupStore(t)
	n := core.NewNote()
	if err := s.Add(n); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(n.Clone()); err == nil {
		t.Error("expected duplicate ID to be rejected")
	}
}

func TestConcurrentLoadSave(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Save(ctx)
			_ = s.Load(ctx)
		}()
	}
	wg.Wait()

	assertOneDefault(t, s)
}

func TestDefaultPathShape(t *testing.T) {
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if !strings.HasSuffix(p, ".xml") {
		t.Errorf("expected .xml extension, got %s", p)
	}
	exe, _ := os.Executable()
	if filepath.Dir(p) != filepath.Dir(exe) {
		t.Errorf("expected file beside executable, got %s", p)
	}
}

// assertOneDefault verifies the default-note invariant.
func assertOneDefault(t *testing.T, s *Store) {
	t.Helper()

	defaults := 0
	for _, n := range s.Notes() {
		if n.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default note, got %d", defaults)
	}
	if s.DefaultNote() == nil {
		t.Fatal("DefaultNote returned nil despite invariant holding")
	}
}

// seedFile writes a valid notes document directly to the store's path.
func seedFile(t *testing.T, s *Store, notes []*core.Note) {
	t.Helper()

	data, err := encodeNotes(notes)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		t.Fatal(err)
	}
}
