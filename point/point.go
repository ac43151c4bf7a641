// Package point demonstrates value semantics: copying a Point yields a
// fully independent value, and every operation derives a new value
// instead of mutating the receiver.
package point

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate with value semantics. Plain assignment is a
// complete, independent copy; there is no shared state to alias.
type Point struct {
	X float64
	Y float64
}

// New constructs a point at (x, y). Any finite coordinates are valid.
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Translate returns a new point offset by (dx, dy). The receiver is
// unmodified.
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceFromOrigin returns the Euclidean norm of the point.
func (p Point) DistanceFromOrigin() float64 {
	return math.Hypot(p.X, p.Y)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
