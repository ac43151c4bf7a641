package guard

import (
	"go.uber.org/multierr"
)

// Stack owns a set of guards and releases them together in reverse
// acquisition order, mirroring scope exit. It keeps going past release
// failures and returns them all combined.
type Stack struct {
	guards []*Guard
}

// Push transfers ownership of g to the stack.
func (s *Stack) Push(g *Guard) {
	s.guards = append(s.guards, g)
}

// Len returns the number of guards the stack still owns.
func (s *Stack) Len() int {
	return len(s.guards)
}

// Close releases every guard, last acquired first. Errors from release
// hooks are accumulated, not short-circuited. Closing an empty or
// already-closed stack is a no-op.
func (s *Stack) Close() error {
	var err error
	for i := len(s.guards) - 1; i >= 0; i-- {
		err = multierr.Append(err, s.guards[i].Close())
	}
	s.guards = nil
	return err
}
