// Package buffer demonstrates move semantics over a sized owned buffer:
// deep copies are expensive and counted, ownership transfer is cheap
// and leaves the source empty.
package buffer

import (
	ferric "github.com/phi9t/ferric-continuum"
)

var (
	copies ferric.Counter
	moves  ferric.Counter
)

// CopyCount returns the number of deep copies since the last reset.
func CopyCount() int64 { return copies.Value() }

// MoveCount returns the number of ownership transfers since the last reset.
func MoveCount() int64 { return moves.Value() }

// ResetCounts zeroes both counters. Call at the start of any test that
// asserts counter values.
func ResetCounts() {
	copies.Reset()
	moves.Reset()
}

// Buffer owns a contiguous block of ints. Exactly one live Buffer owns
// a given block: Clone duplicates the storage, Take transfers it and
// empties the source. The zero value and a moved-from Buffer are the
// same valid empty state.
type Buffer struct {
	data []int
}

// New allocates a zero-initialized buffer of size elements. Size zero
// yields a valid empty buffer.
func New(size int) *Buffer {
	b := &Buffer{}
	if size > 0 {
		b.data = make([]int, size)
	}
	ferric.Notify(ferric.Event{Component: "buffer", Type: ferric.EventCreated})
	return b
}

// Len returns the element count; zero for an empty or moved-from buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// At returns the element at index i.
func (b *Buffer) At(i int) int {
	return b.data[i]
}

// Fill overwrites every element with value. No-op on an empty buffer.
func (b *Buffer) Fill(value int) {
	for i := range b.data {
		b.data[i] = value
	}
}

// Clone performs a deep copy: new storage, element-wise duplication.
// The receiver is unchanged and fully independent of the result.
func (b *Buffer) Clone() *Buffer {
	dst := &Buffer{}
	if len(b.data) > 0 {
		dst.data = make([]int, len(b.data))
		copy(dst.data, b.data)
	}
	copies.Add(1)
	ferric.Notify(ferric.Event{Component: "buffer", Type: ferric.EventCopied})
	return dst
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// Copying a buffer onto itself is a no-op.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b == src {
		return
	}
	b.data = nil
	if len(src.data) > 0 {
		b.data = make([]int, len(src.data))
		copy(b.data, src.data)
	}
	copies.Add(1)
	ferric.Notify(ferric.Event{Component: "buffer", Type: ferric.EventCopied})
}

// Take transfers ownership of the storage to a new buffer and leaves
// the receiver empty. No allocation occurs.
func (b *Buffer) Take() *Buffer {
	dst := &Buffer{data: b.data}
	b.data = nil
	moves.Add(1)
	ferric.Notify(ferric.Event{Component: "buffer", Type: ferric.EventMoved})
	return dst
}

// MoveFrom releases the receiver's storage and adopts src's, leaving
// src empty. Moving a buffer onto itself is a no-op.
func (b *Buffer) MoveFrom(src *Buffer) {
	if b == src {
		return
	}
	b.data = src.data
	src.data = nil
	moves.Add(1)
	ferric.Notify(ferric.Event{Component: "buffer", Type: ferric.EventMoved})
}

// CreateAndFill builds a filled buffer in place. The result reaches the
// caller without any copy; the copy counter is untouched.
func CreateAndFill(size int) *Buffer {
	b := New(size)
	b.Fill(42)
	return b
}

// ProcessByValue adopts its argument, fills it, and returns it. The
// caller chooses the passing strategy: pass Clone() of a buffer to keep
// the original (one counted copy), or pass Take() of one — or a fresh
// factory result — to hand it over with no copy at all.
func ProcessByValue(buf *Buffer) *Buffer {
	buf.Fill(100)
	return buf
}

// ProcessMove always takes ownership from its argument, leaving the
// caller's buffer empty.
func ProcessMove(buf *Buffer) *Buffer {
	out := buf.Take()
	out.Fill(200)
	return out
}
