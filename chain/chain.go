// Package chain demonstrates exclusive ownership: every node owns its
// successor, so a chain has exactly one entry point and destroying the
// head tears down every link exactly once.
package chain

import (
	ferric "github.com/phi9t/ferric-continuum"
)

// Node is one link of a singly-linked chain. A node reachable from a
// head is owned by its predecessor; handing a node to Append transfers
// ownership and the caller must not retain it as an owner. A nil *Node
// is the empty-chain sentinel.
type Node struct {
	next     *Node
	value    int
	released bool
}

// New creates a singleton node with no successor.
func New(value int) *Node {
	ferric.Notify(ferric.Event{Component: "chain", Type: ferric.EventCreated, Value: value})
	return &Node{value: value}
}

// Value returns the node's value.
func (n *Node) Value() int {
	return n.value
}

// Next returns a non-owning view of the successor, or nil at the tail.
func (n *Node) Next() *Node {
	return n.next
}

// Append transfers ownership of owned onto the tail of the chain. The
// walk is iterative so chains of arbitrary length cannot exhaust the
// stack. Appending nil is a no-op.
func (n *Node) Append(owned *Node) {
	if owned == nil {
		return
	}
	tail := n
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = owned
	ferric.Notify(ferric.Event{Component: "chain", Type: ferric.EventMoved, Value: owned.value})
}

// Take transfers ownership of the entire chain to the returned head.
// The receiver is left in the moved-from state: it no longer owns any
// node and observes as the empty sentinel. Taking from the sentinel or
// from an already moved-from head returns the sentinel.
func (n *Node) Take() *Node {
	if n == nil || n.released {
		return nil
	}
	head := &Node{value: n.value, next: n.next}
	n.next = nil
	n.released = true
	ferric.Notify(ferric.Event{Component: "chain", Type: ferric.EventMoved, Value: head.value})
	return head
}

// Release tears down the whole chain reachable from n, firing a drop
// event per node. Each node is released at most once; releasing an
// already-released chain or the empty sentinel is a no-op.
func (n *Node) Release() {
	for cur := n; cur != nil; {
		next := cur.next
		cur.next = nil
		if !cur.released {
			cur.released = true
			ferric.Notify(ferric.Event{Component: "chain", Type: ferric.EventDropped, Value: cur.value})
		}
		cur = next
	}
}

// CreateList builds a chain owning the given values in order. An empty
// input yields the empty sentinel, not an error.
func CreateList(values []int) *Node {
	if len(values) == 0 {
		return nil
	}
	head := New(values[0])
	tail := head
	for _, v := range values[1:] {
		node := New(v)
		tail.next = node
		tail = node
	}
	return head
}

// CountNodes returns the number of nodes reachable from head without
// taking ownership. The empty sentinel and a moved-from head count zero.
func CountNodes(head *Node) int {
	if head == nil || head.released {
		return 0
	}
	count := 0
	for n := head; n != nil; n = n.next {
		count++
	}
	return count
}
