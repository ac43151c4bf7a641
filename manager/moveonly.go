package manager

import (
	ferric "github.com/phi9t/ferric-continuum"
)

// noCopy trips go vet's copylocks check when a MoveOnly is copied by
// value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// MoveOnly is a named resource whose ownership can be transferred but
// never duplicated: there is deliberately no Clone or CopyFrom, and
// value copies are flagged by go vet. Use Take or MoveFrom.
type MoveOnly struct {
	noCopy noCopy
	name   string
	valid  bool
}

// NewMoveOnly acquires a uniquely-owned resource with the given name.
func NewMoveOnly(name string) *MoveOnly {
	ferric.Notify(ferric.Event{Component: "manager", Type: ferric.EventCreated, Detail: name})
	return &MoveOnly{name: name, valid: true}
}

// Name returns the resource's name. It survives moves.
func (r *MoveOnly) Name() string {
	return r.name
}

// IsValid reports whether this instance still owns the resource.
func (r *MoveOnly) IsValid() bool {
	return r.valid
}

// Take transfers ownership to a new instance and invalidates the
// receiver.
func (r *MoveOnly) Take() *MoveOnly {
	dst := &MoveOnly{name: r.name, valid: r.valid}
	r.valid = false
	ferric.Notify(ferric.Event{Component: "manager", Type: ferric.EventMoved, Detail: r.name})
	return dst
}

// MoveFrom adopts src's resource and invalidates src. Self move is a
// no-op.
func (r *MoveOnly) MoveFrom(src *MoveOnly) {
	if r == src {
		return
	}
	r.name = src.name
	r.valid = src.valid
	src.valid = false
	ferric.Notify(ferric.Event{Component: "manager", Type: ferric.EventMoved, Detail: r.name})
}
