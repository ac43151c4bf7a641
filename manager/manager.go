// Package manager demonstrates the manual discipline that the other
// ownership types automate: a raw owned buffer with every construction,
// copy, transfer, and destruction spelled out and counted individually.
package manager

import (
	ferric "github.com/phi9t/ferric-continuum"
)

var (
	defaultConstructions ferric.Counter
	copyConstructions    ferric.Counter
	moveConstructions    ferric.Counter
	destructions         ferric.Counter
)

// DefaultConstructions returns plain constructions since the last reset.
func DefaultConstructions() int64 { return defaultConstructions.Value() }

// CopyConstructions returns deep copies since the last reset.
func CopyConstructions() int64 { return copyConstructions.Value() }

// MoveConstructions returns ownership transfers since the last reset.
func MoveConstructions() int64 { return moveConstructions.Value() }

// Destructions returns explicit destructions since the last reset.
func Destructions() int64 { return destructions.Value() }

// ResetStats zeroes all four counters.
func ResetStats() {
	defaultConstructions.Reset()
	copyConstructions.Reset()
	moveConstructions.Reset()
	destructions.Reset()
}

// Manager owns a raw sized buffer. Exactly one valid Manager owns a
// given buffer; Clone duplicates storage, Take transfers it. A
// moved-from or destroyed Manager is the valid empty state: size zero,
// IsValid false.
type Manager struct {
	data      []int
	destroyed bool
}

// New allocates a zero-initialized buffer of size elements. Size zero
// yields a valid instance with no storage, signalled by IsValid() ==
// false — that is the documented empty state, not an error.
func New(size int) *Manager {
	m := &Manager{}
	if size > 0 {
		m.data = make([]int, size)
	}
	defaultConstructions.Add(1)
	ferric.Notify(ferric.Event{Component: "manager", Type: ferric.EventCreated})
	return m
}

// Size returns the element count; zero once moved-from or destroyed.
func (m *Manager) Size() int {
	return len(m.data)
}

// IsValid reports whether the manager currently owns storage.
func (m *Manager) IsValid() bool {
	return m.data != nil
}

// At returns the element at index i.
func (m *Manager) At(i int) int {
	return m.data[i]
}

// Set writes the element at index i.
func (m *Manager) Set(i, value int) {
	m.data[i] = value
}

// Clone deep-copies the buffer into a new manager.
func (m *Manager) Clone() *Manager {
	dst := &Manager{}
	if len(m.data) > 0 {
		dst.data = make([]int, len(m.data))
		copy(dst.data, m.data)
	}
	copyConstructions.Add(1)
	ferric.Notify(ferric.Event{Component: "manager", Type: ferric.EventCopied})
	return dst
}

// CopyFrom replaces the receiver's buffer with a deep copy of src's.
// Self copy-assignment is a no-op.
func (m *Manager) CopyFrom(src *Manager) {
	if m == src {
		return
	}
	m.data = nil
	if len(src.data) > 0 {
		m.data = make([]int, len(src.data))
		copy(m.data, src.data)
	}
}

// Take transfers the buffer to a new manager, leaving the receiver
// empty and invalid.
func (m *Manager) Take() *Manager {
	dst := &Manager{data: m.data}
	m.data = nil
	moveConstructions.Add(1)
	ferric.Notify(ferric.Event{Component: "manager", Type: ferric.EventMoved})
	return dst
}

// MoveFrom releases the receiver's buffer and adopts src's, leaving src
// empty and invalid. Self move-assignment is a no-op.
func (m *Manager) MoveFrom(src *Manager) {
	if m == src {
		return
	}
	m.data = src.data
	src.data = nil
}

// Destroy releases the buffer and counts the destruction. Destroying an
// already-destroyed manager is a no-op.
func (m *Manager) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.data = nil
	destructions.Add(1)
	ferric.Notify(ferric.Event{Component: "manager", Type: ferric.EventDropped})
}

// Create builds a manager in place; the result reaches the caller
// without any counted copy.
func Create(size int) *Manager {
	return New(size)
}

// CreateBatch builds count managers of the given size. Filling the
// slice involves no copies.
func CreateBatch(count, size int) []*Manager {
	out := make([]*Manager, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, New(size))
	}
	return out
}
