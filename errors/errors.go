package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in a resource's lifecycle the error occurred
type Phase string

const (
	PhaseAcquire  Phase = "acquire"  // taking ownership of a resource
	PhaseRelease  Phase = "release"  // giving a resource back
	PhaseScenario Phase = "scenario" // demo scenario loading
)

// Kind categorizes the error
type Kind string

const (
	KindReleaseFailed    Kind = "release_failed"
	KindInvalidScenario  Kind = "invalid_scenario"
	KindUnknownComponent Kind = "unknown_component"
)

// Error is the structured error type used throughout the library.
// The core ownership contracts are total functions and never produce
// one; errors arise only at the edges (simulated external releases,
// scenario files).
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(": ")
		b.WriteString(e.Resource)
	}

	if e.Detail != "" {
		if e.Resource != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Resource names the resource the error concerns
func (b *Builder) Resource(name string) *Builder {
	b.err.Resource = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// ReleaseFailed wraps a failure reported by an external release hook
func ReleaseFailed(resource string, cause error) *Error {
	return &Error{
		Phase:    PhaseRelease,
		Kind:     KindReleaseFailed,
		Resource: resource,
		Cause:    cause,
	}
}

// InvalidScenario reports a malformed demo scenario
func InvalidScenario(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseScenario,
		Kind:   KindInvalidScenario,
		Detail: detail,
		Cause:  cause,
	}
}

// UnknownComponent reports a scenario step naming no known component
func UnknownComponent(name string) *Error {
	return &Error{
		Phase:    PhaseScenario,
		Kind:     KindUnknownComponent,
		Resource: name,
	}
}
