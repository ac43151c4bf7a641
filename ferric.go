package ferric

import (
	"sync"
)

// EventType classifies lifecycle events emitted by the ownership types.
type EventType uint8

const (
	EventCreated EventType = iota
	EventCopied
	EventMoved
	EventShared
	EventUnshared
	EventDropped
)

// String returns the event type name used in trace output.
func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventCopied:
		return "copied"
	case EventMoved:
		return "moved"
	case EventShared:
		return "shared"
	case EventUnshared:
		return "unshared"
	case EventDropped:
		return "dropped"
	}
	return "unknown"
}

// Event describes a single lifecycle transition of an owned value.
type Event struct {
	Value     any
	Component string
	Detail    string
	Type      EventType
}

// Observer receives notifications about ownership lifecycle events.
type Observer interface {
	OnLifecycleEvent(Event)
}

// Dropper is optionally implemented by owned payloads that need cleanup
// when their owner releases them.
type Dropper interface {
	Drop()
}

var (
	observers []Observer
	obsMu     sync.RWMutex
)

// Subscribe adds an observer for lifecycle events across all components.
func Subscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	observers = append(observers, o)
}

// Unsubscribe removes an observer.
func Unsubscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	for i, obs := range observers {
		if obs == o {
			observers = append(observers[:i], observers[i+1:]...)
			return
		}
	}
}

// Notify delivers an event to every registered observer in subscription
// order. Components call this at each ownership transition; with no
// observers registered it is a cheap no-op.
func Notify(e Event) {
	obsMu.RLock()
	defer obsMu.RUnlock()
	for _, o := range observers {
		o.OnLifecycleEvent(e)
	}
}
