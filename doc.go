// Package ferric provides explicit, observable resource-ownership
// primitives: independent value copies, transferable (move) ownership,
// reference-counted shared ownership, and scoped acquisition guards.
//
// # Architecture Overview
//
// The library is organized into small packages, one per ownership
// discipline:
//
//	ferric/      Root package with lifecycle events, observers, counters
//	├── point/   Value semantics: independent copies, derived values
//	├── buffer/  Move semantics: expensive copy, cheap transfer
//	├── chain/   Exclusive ownership: each link owns the next
//	├── shared/  Shared ownership: reference-counted handles
//	├── guard/   Scoped acquisition: open on construct, release on close
//	└── manager/ Manual rule-of-five discipline over a raw buffer
//
// # Ownership Transfer
//
// Go has no move syntax, so transfer is an explicit operation that
// invalidates its source:
//
//	b1 := buffer.New(1000)
//	b2 := b1.Take() // b1 is now empty: b1.Len() == 0
//
// A moved-from value is always a well-defined empty value, safe to
// query, reassign, or discard. Double release is a no-op, never a fault.
//
// # Instrumentation
//
// Copy, move, construction, and destruction counts are tracked in
// process-wide counters with an explicit reset lifecycle:
//
//	buffer.ResetCounts()
//	b2 := b1.Clone()
//	buffer.CopyCount() // 1
//
// Counters exist for tests and demos only; no contract depends on them.
// They are not synchronized beyond atomic increments: tests that assert
// counter values must run on a single logical thread.
//
// # Observability
//
// Every lifecycle transition can be traced by registering an observer:
//
//	ferric.Subscribe(ferric.NewLogObserver(log))
//
// The core is fully functional with no observers and a no-op logger.
package ferric
