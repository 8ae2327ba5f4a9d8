package grid

import (
	"github.com/katalvlaran/grid2d/boundary"
	"github.com/katalvlaran/grid2d/vec2"
)

// Source is any readable 2D array: a View, a MutView or a *Grid.
// Cross-tier operations (Paint, Zip, Map, Merge, Equal) accept their
// read operands through this interface so one implementation serves all
// capability tiers. The hierarchy is closed: only this package's types
// satisfy it.
type Source[T any] interface {
	// Bounds returns the boundary of the array.
	Bounds() boundary.Boundary
	// Pitch returns the number of buffer slots per row. It equals the
	// boundary width for tightly packed arrays and exceeds it for views
	// into larger buffers.
	Pitch() int

	view() View[T]
}

// Target is any writable 2D array: a MutView or a *Grid.
type Target[T any] interface {
	Source[T]

	mutView() MutView[T]
}

// offsetOf maps a point to its linear offset in a buffer whose first
// slot holds origin and whose rows are pitch apart. The point must not
// precede origin on either axis.
func offsetOf(p, origin vec2.Vec, pitch int) int {
	d := p.Sub(origin)
	return int(d.Y)*pitch + int(d.X)
}
