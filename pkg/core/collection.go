package core

import "time"

// Collection is an ordered, duplicate-ID-free sequence of notes.
//
// It is not safe for concurrent use; the owning store serializes access.
// Change notifications are delivered synchronously to a single registered
// hook. A batch started with BeginBatch suspends per-item notification and
// EndBatch fires one aggregate Reset event covering the batch.
type Collection struct {
	notes   []*Note
	hook    func(Event)
	batch   bool
	pending []*Note
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// OnChange registers the notification hook. Passing nil disables
// notifications.
func (c *Collection) OnChange(hook func(Event)) {
	c.hook = hook
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	return len(c.notes)
}

// Notes returns a snapshot of the ordered sequence.
func (c *Collection) Notes() []*Note {
	out := make([]*Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Get returns the note with the given ID, or nil.
func (c *Collection) Get(id string) *Note {
	for _, n := range c.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// FirstDefault returns the first note with IsDefault set, or nil.
func (c *Collection) FirstDefault() *Note {
	for _, n := range c.notes {
		if n.IsDefault {
			return n
		}
	}
	return nil
}

// Add appends a note. It returns false if a note with the same ID is
// already present.
func (c *Collection) Add(n *Note) bool {
	if n == nil || c.Get(n.ID) != nil {
		return false
	}
	c.notes = append(c.notes, n)
	c.notify(EventAdd, []*Note{n})
	return true
}

// AddRange bulk-inserts notes with notifications suspended, then fires a
// single Reset event for the notes actually inserted. Duplicate IDs are
// skipped. It returns the number of notes inserted.
func (c *Collection) AddRange(notes []*Note) int {
	c.BeginBatch()
	inserted := 0
	for _, n := range notes {
		if c.Add(n) {
			inserted++
		}
	}
	c.EndBatch()
	return inserted
}

// Replace swaps the entire contents for the given notes, firing one
// Reset event covering the new state. Nil entries and duplicate IDs
// within the input are skipped. It returns the number of notes kept.
func (c *Collection) Replace(notes []*Note) int {
	c.notes = nil
	for _, n := range notes {
		if n == nil || c.Get(n.ID) != nil {
			continue
		}
		c.notes = append(c.notes, n)
	}
	c.notify(EventReset, c.Notes())
	return len(c.notes)
}

// Remove deletes the note with the given ID, preserving order. It returns
// the removed note, or nil if no note matched.
func (c *Collection) Remove(id string) *Note {
	for i, n := range c.notes {
		if n.ID == id {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			c.notify(EventRemove, []*Note{n})
			return n
		}
	}
	return nil
}

// BeginBatch suspends per-item notifications until EndBatch.
func (c *Collection) BeginBatch() {
	c.batch = true
	c.pending = nil
}

// EndBatch fires one aggregate Reset event for everything accumulated
// since BeginBatch, then resumes per-item notifications.
func (c *Collection) EndBatch() {
	c.batch = false
	if len(c.pending) > 0 && c.hook != nil {
		c.hook(Event{Type: EventReset, Notes: c.pending, Timestamp: time.Now().Unix()})
	}
	c.pending = nil
}

func (c *Collection) notify(t EventType, notes []*Note) {
	if c.batch {
		c.pending = append(c.pending, notes...)
		return
	}
	if c.hook != nil {
		c.hook(Event{Type: t, Notes: notes, Timestamp: time.Now().Unix()})
	}
}
