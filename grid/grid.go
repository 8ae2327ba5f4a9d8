package grid

import (
	"github.com/katalvlaran/grid2d/boundary"
	"github.com/katalvlaran/grid2d/vec2"
)

// Grid is an owned 2D array over a growable row-major buffer. It
// extends MutView with operations that may relocate or grow the buffer:
// Resize, Insert, Extend, Merge. The zero value is the empty grid with
// origin (0,0); it is ready to use.
//
// Obtain grids from the zero value or the package constructors only.
// The relocation engine requires a tightly packed layout (pitch equal
// to width) and a zeroed buffer tail; a Grid assembled from a literal
// around an arbitrary MutView breaks both.
type Grid[T any] struct {
	MutView[T]
}

// New returns a grid over the boundary with every cell holding the zero
// value of T.
func New[T any](b boundary.Boundary) *Grid[T] {
	g := &Grid[T]{}
	g.buf = make([]T, b.Len())
	g.bounds = b
	g.pitch = b.Width()
	return g
}

// NewFilled returns a grid over the boundary with every cell holding
// fill.
func NewFilled[T any](b boundary.Boundary, fill T) *Grid[T] {
	g := New[T](b)
	for i := range g.buf {
		g.buf[i] = fill
	}
	return g
}

// Init returns a grid over the boundary with each cell initialized by
// the generator function, invoked once per point in row-major order.
func Init[T any](b boundary.Boundary, init func(vec2.Vec) T) *Grid[T] {
	buf := make([]T, 0, b.Len())
	for p := range b.Points() {
		buf = append(buf, init(p))
	}
	g := &Grid[T]{}
	g.buf = buf
	g.bounds = b
	g.pitch = b.Width()
	return g
}

// FromSlice adopts a row-major buffer as the grid's backing storage.
// Items beyond the boundary's extent are not adopted: the resize engine
// relies on everything past the occupied prefix holding the zero value.
// Panics if the buffer holds fewer items than the boundary requires.
func FromSlice[T any](buf []T, b boundary.Boundary) *Grid[T] {
	if len(buf) < b.Len() {
		panic(panicShortBuffer)
	}
	g := &Grid[T]{}
	g.buf = buf[:b.Len()]
	g.bounds = b
	g.pitch = b.Width()
	return g
}

// Buffer returns the occupied prefix of the backing buffer. The grid
// retains ownership; the slice is invalidated by any resizing
// operation.
func (g *Grid[T]) Buffer() []T {
	return g.buf[:g.bounds.Len()]
}

// Clear reverts the grid to the empty state: zero dimension, origin
// (0,0), no retained buffer.
func (g *Grid[T]) Clear() {
	*g = Grid[T]{}
}
