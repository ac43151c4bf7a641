// Package errors provides the structured error type used at the edges
// of the ownership library.
//
// The core contracts are total: moved-from use, empty inputs, and
// double release are all defined as valid empty results, never errors.
// The only failures that exist are external ones — a simulated release
// hook reporting a fault, or a malformed demo scenario file — and they
// carry a Phase (where) and a Kind (what) for matching with errors.Is:
//
//	err := errors.ReleaseFailed("data.txt", cause)
//	errors.Is(err, &errors.Error{Phase: errors.PhaseRelease, Kind: errors.KindReleaseFailed}) // true
package errors
