// Package guard demonstrates scoped resource acquisition: a Guard opens
// on construction, releases exactly once on Close, and can transfer its
// open state to another guard but never duplicate it.
package guard

import (
	ferric "github.com/phi9t/ferric-continuum"
	"github.com/phi9t/ferric-continuum/errors"
)

// noCopy trips go vet's copylocks check when a Guard is copied by
// value. Guards are not duplicable; transfer them with Take or MoveFrom.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard wraps an external acquisition identified by name. At most one
// guard holds the open state for a given acquisition; moving transfers
// it, and Close releases it idempotently. Once closed, a guard never
// reopens.
type Guard struct {
	noCopy  noCopy
	release func() error
	name    string
	open    bool
}

// Open acquires the named resource and returns its guard in the open
// state.
func Open(name string) *Guard {
	return OpenWithRelease(name, nil)
}

// OpenWithRelease acquires the named resource with an explicit release
// hook, called exactly once when the guard closes while open. A nil
// hook releases silently.
func OpenWithRelease(name string, release func() error) *Guard {
	ferric.Notify(ferric.Event{Component: "guard", Type: ferric.EventCreated, Detail: name})
	return &Guard{name: name, open: true, release: release}
}

// Name returns the guarded resource's identifier. It survives moves and
// closes.
func (g *Guard) Name() string {
	return g.name
}

// IsOpen reports whether this guard currently holds the acquisition.
func (g *Guard) IsOpen() bool {
	return g.open
}

// Close releases the acquisition. Closing an already-closed guard is a
// no-op, never an error. A failure reported by the release hook is
// returned wrapped; the guard still transitions to closed.
func (g *Guard) Close() error {
	if !g.open {
		return nil
	}
	g.open = false
	ferric.Notify(ferric.Event{Component: "guard", Type: ferric.EventDropped, Detail: g.name})
	if g.release != nil {
		if err := g.release(); err != nil {
			return errors.ReleaseFailed(g.name, err)
		}
	}
	return nil
}

// Take transfers the guard's identifier and state to a new guard and
// forces the receiver closed. The source's acquisition is not released;
// it now belongs to the destination.
func (g *Guard) Take() *Guard {
	dst := &Guard{name: g.name, open: g.open, release: g.release}
	g.open = false
	g.release = nil
	ferric.Notify(ferric.Event{Component: "guard", Type: ferric.EventMoved, Detail: g.name})
	return dst
}

// MoveFrom releases whatever the receiver currently holds, then adopts
// src's identifier and state, forcing src closed. Moving a guard onto
// itself is a no-op. The error, if any, comes from releasing the
// receiver's previous acquisition.
func (g *Guard) MoveFrom(src *Guard) error {
	if g == src {
		return nil
	}
	err := g.Close()
	g.name = src.name
	g.open = src.open
	g.release = src.release
	src.open = false
	src.release = nil
	ferric.Notify(ferric.Event{Component: "guard", Type: ferric.EventMoved, Detail: g.name})
	return err
}
