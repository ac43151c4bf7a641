package point

import "fmt"

// Rectangle is a small value type used to contrast the parameter-passing
// strategies available in Go: pass by value for independent local
// copies, pass by pointer for in-place mutation, and consuming a value
// the caller no longer needs.
type Rectangle struct {
	Width  float64
	Height float64
}

// Area returns the rectangle's area.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// String implements fmt.Stringer.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%.2f x %.2f)", r.Width, r.Height)
}

// AreaByValue receives a copy. Mutating it is local to the callee and
// never visible to the caller.
func AreaByValue(r Rectangle) float64 {
	r.Width *= 2 // local only
	return r.Area()
}

// ScaleInPlace mutates the caller's rectangle through a pointer.
// A nil rectangle is a no-op.
func ScaleInPlace(r *Rectangle, factor float64) {
	if r == nil {
		return
	}
	r.Width *= factor
	r.Height *= factor
}

// TransformOwned consumes a rectangle the caller is done with and
// returns the scaled result.
func TransformOwned(r Rectangle, scale float64) Rectangle {
	r.Width *= scale
	r.Height *= scale
	return r
}
