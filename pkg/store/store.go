package store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/stickies/pkg/core"
)

// Store owns the ordered collection of notes and its persistence.
//
// Load and Save are serialized by one coarse lock per instance; the
// collection is small and operations are infrequent, so no finer-grained
// locking is needed. After initialization the collection always contains
// exactly one default note (the style template).
type Store struct {
	mu     sync.Mutex
	path   string
	coll   *core.Collection
	logger *slog.Logger

	stateMu       sync.RWMutex
	watcherActive bool

	// lastSelfWrite is the unix-nano time of our own last Save. The
	// reload worker ignores filesystem events inside a short window
	// after it, so an atomic replace (which surfaces as several events)
	// never reads back as an external edit.
	lastSelfWrite atomic.Int64
}

// selfWriteWindow is how long after a Save filesystem events on the
// notes file are attributed to that Save.
const selfWriteWindow = 500 * time.Millisecond

// Config holds the configuration for a Store.
type Config struct {
	// Path of the persisted file. Empty means DefaultPath().
	Path   string
	Logger *slog.Logger
}

// New creates a Store persisting at the configured path.
func New(cfg Config) (*Store, error) {
	path := cfg.Path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// The reload worker compares cleaned event paths against this one.
	return &Store{
		path:   filepath.Clean(path),
		coll:   core.NewCollection(),
		logger: cfg.Logger,
	}, nil
}

// DefaultPath derives the persisted file location from the running
// program: same directory, same base name, fixed .xml extension.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	return filepath.Join(filepath.Dir(exe), base+".xml"), nil
}

// Path returns the persisted file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted file and replaces the collection with its
// contents, so a reload picks up external edits and deletions. A missing
// or empty file is a no-op that keeps whatever is in memory. Read and
// parse failures are swallowed: a corrupt file degrades to the previous
// contents (or a fresh default on first load) rather than an error. On
// every exit path the default-note invariant is restored.
func (s *Store) Load(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.ensureDefault()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) && s.logger != nil {
			s.logger.Debug("notes file unreadable, starting empty", "path", s.path, "error", err)
		}
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	notes, err := decodeNotes(data)
	if err != nil {
		if s.logger != nil {
			s.logger.Debug("notes file corrupt, starting empty", "path", s.path, "error", err)
		}
		return nil
	}

	// Full replace; a reload must drop in-memory entries the file no
	// longer carries. One aggregate Reset event.
	s.coll.Replace(notes)
	return nil
}

// Save serializes the full ordered collection and writes it atomically.
// The whole file is replaced; last writer wins. Errors propagate to the
// caller.
func (s *Store) Save(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	data, err := encodeNotes(s.coll.Notes())
	if err != nil {
		return err
	}

	s.lastSelfWrite.Store(time.Now().UnixNano())
	return writeFileAtomic(s.path, data, 0644)
}

// DefaultNote returns the first note with IsDefault set. A nil return
// means the invariant was violated by a bug; it is logged, not fatal.
func (s *Store) DefaultNote() *core.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.coll.FirstDefault()
	if d == nil && s.logger != nil {
		s.logger.Error("default note missing, invariant violated")
	}
	return d
}

// Add appends a note to the collection.
func (s *Store) Add(n *core.Note) error {
	if n == nil {
		return fmt.Errorf("cannot add nil note")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.coll.Add(n) {
		return fmt.Errorf("%w: %s", core.ErrDuplicateID, n.ID)
	}
	return nil
}

// Remove deletes the note with the given ID. Removing an unknown ID is a
// no-op and returns false.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coll.Remove(id) != nil
}

// Get returns the note with the given ID, or nil.
func (s *Store) Get(id string) *core.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coll.Get(id)
}

// Notes returns a snapshot of the ordered collection.
func (s *Store) Notes() []*core.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coll.Notes()
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coll.Len()
}

// OnChange registers the collection notification hook. The hook runs
// synchronously under the store lock and must not call back into the
// store.
func (s *Store) OnChange(hook func(core.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coll.OnChange(hook)
}

// ensureDefault restores the default-note invariant. Caller holds s.mu.
func (s *Store) ensureDefault() {
	if s.coll.FirstDefault() != nil {
		return
	}
	s.coll.Add(core.NewDefaultNote())
	if s.logger != nil {
		s.logger.Debug("synthesized default note")
	}
}

// isSelfWrite reports whether a filesystem event observed now falls
// inside the suppression window of our own last Save.
func (s *Store) isSelfWrite() bool {
	last := s.lastSelfWrite.Load()
	return last != 0 && time.Since(time.Unix(0, last)) < selfWriteWindow
}

func (s *Store) setWatcherActive(active bool) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.watcherActive = active
}
