package ferric

import (
	"sync/atomic"
)

// Counter is a process-wide instrumentation counter. Counters are
// monotonic between resets and exist for observability only; no
// correctness property of the ownership types depends on them.
//
// Tests that read counters must call Reset first and must not run
// concurrently with other counter users.
type Counter struct {
	n atomic.Int64
}

// Add increments the counter by delta.
func (c *Counter) Add(delta int64) {
	c.n.Add(delta)
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	return c.n.Load()
}

// Reset zeroes the counter.
func (c *Counter) Reset() {
	c.n.Store(0)
}
