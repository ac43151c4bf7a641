// Package shared demonstrates reference-counted shared ownership: a
// resource stays alive exactly as long as at least one handle refers to
// it, and is destroyed exactly once when the last handle is released.
//
// The reference count is a plain integer by contract: sharing is scoped
// to a single owner domain and a thread-safe variant is a non-goal.
package shared

import (
	ferric "github.com/phi9t/ferric-continuum"
)

var instances ferric.Counter

// InstanceCount returns the number of resources currently alive in the
// process. It is a pure query with no side effects.
func InstanceCount() int64 {
	return instances.Value()
}

// Resource is an identity-bearing value kept alive by its handles.
type Resource struct {
	id int
}

// ID returns the resource's identity.
func (r *Resource) ID() int {
	return r.id
}

// cell couples a resource with its reference count. All handles to one
// resource point at the same cell.
type cell struct {
	res  *Resource
	refs int
}

// Handle is one owner reference to a shared resource. Handles are
// duplicated with Clone and dropped with Release; the resource is
// destroyed when the last handle goes.
type Handle struct {
	cell     *cell
	released bool
}

// New constructs a resource and returns its first handle. The process
// live-instance count increments by one.
func New(id int) *Handle {
	res := &Resource{id: id}
	instances.Add(1)
	ferric.Notify(ferric.Event{Component: "shared", Type: ferric.EventCreated, Value: id})
	return &Handle{cell: &cell{res: res, refs: 1}}
}

// Get returns the underlying resource, or nil for a released handle.
func (h *Handle) Get() *Resource {
	if h.released {
		return nil
	}
	return h.cell.res
}

// UseCount returns the number of live handles to the resource. A
// released handle reports zero.
func (h *Handle) UseCount() int {
	if h.released {
		return 0
	}
	return h.cell.refs
}

// Clone duplicates the handle: the share count goes up by one, no new
// resource is created. Cloning a released handle yields a released
// handle.
func (h *Handle) Clone() *Handle {
	if h.released {
		return &Handle{released: true}
	}
	h.cell.refs++
	ferric.Notify(ferric.Event{Component: "shared", Type: ferric.EventShared, Value: h.cell.res.id})
	return &Handle{cell: h.cell}
}

// Release drops this handle. Releasing the last handle destroys the
// resource and decrements the live-instance count, exactly once.
// Releasing an already-released handle is a no-op.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.cell.refs--
	ferric.Notify(ferric.Event{Component: "shared", Type: ferric.EventUnshared, Value: h.cell.res.id})
	if h.cell.refs == 0 {
		id := h.cell.res.id
		h.cell.res = nil
		instances.Add(-1)
		ferric.Notify(ferric.Event{Component: "shared", Type: ferric.EventDropped, Value: id})
	}
}

// ShareResource mints copies additional handles to h's resource.
// Repeated calls are cumulative: each call adds copies more live
// handles. Zero copies yields an empty, valid slice.
func ShareResource(h *Handle, copies int) []*Handle {
	handles := make([]*Handle, 0, copies)
	for i := 0; i < copies; i++ {
		handles = append(handles, h.Clone())
	}
	return handles
}
