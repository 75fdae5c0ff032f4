package core

// EventType represents the type of change in a note collection.
type EventType string

const (
	EventAdd    EventType = "ADD"
	EventRemove EventType = "REMOVE"
	// EventReset is fired once for a bulk insertion performed with
	// notifications suspended.
	EventReset EventType = "RESET"
)

// Event represents a change in a note collection. For Add and Remove it
// carries the single affected note; for Reset it carries every note
// inserted by the batch.
type Event struct {
	Type      EventType
	Notes     []*Note
	Timestamp int64 // Unix timestamp
}
