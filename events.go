package lingo

import "github.com/dmitrymomot/lingo/pkg/langtree"

// EventKind classifies a lifecycle notification.
type EventKind uint8

const (
	// EventAdded fires when a language appears for the first time through
	// a watch event or manual reload.
	EventAdded EventKind = iota

	// EventUpdated fires when an already-loaded language is replaced with
	// new content.
	EventUpdated

	// EventRemoved fires when a language file disappears and eviction on
	// removal is enabled.
	EventRemoved
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventUpdated:
		return "updated"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is a lifecycle notification delivered to the configured handler.
// Tree is nil for EventRemoved.
type Event struct {
	Kind EventKind
	Code string
	Tree *langtree.Tree
}
