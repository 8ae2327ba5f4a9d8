package grid

import (
	"iter"

	"github.com/katalvlaran/grid2d/boundary"
	"github.com/katalvlaran/grid2d/vec2"
)

// View is a read-only 2D array backed by a borrowed row-major buffer.
// It owns no data and is valid for as long as the buffer it borrows.
// The zero value is an empty view.
//
// Go cannot forbid writes through a shared slice, so read-onlyness is a
// contract: treat the rows and buffer a View exposes as immutable.
type View[T any] struct {
	buf    []T
	bounds boundary.Boundary
	pitch  int
}

// ViewOf reinterprets a row-major buffer as a read-only 2D array over
// the boundary. Panics if the buffer holds fewer items than the
// boundary requires.
func ViewOf[T any](buf []T, b boundary.Boundary) View[T] {
	if len(buf) < b.Len() {
		panic(panicShortBuffer)
	}
	return View[T]{buf: buf, bounds: b, pitch: b.Width()}
}

// ViewOfPitch reinterprets a row-major buffer whose rows are pitch
// slots apart; pitch may exceed the boundary width to borrow a window
// of a larger buffer. Panics if pitch < width or the buffer is too
// short for pitch×height items.
func ViewOfPitch[T any](buf []T, b boundary.Boundary, pitch int) View[T] {
	if pitch < b.Width() {
		panic(panicBadPitch)
	}
	if len(buf) < pitch*b.Height() {
		panic(panicShortBuffer)
	}
	return View[T]{buf: buf, bounds: b, pitch: pitch}
}

func (v View[T]) view() View[T] { return v }

// Bounds returns the boundary of the array.
func (v View[T]) Bounds() boundary.Boundary { return v.bounds }

// Pitch returns the number of buffer slots per row.
func (v View[T]) Pitch() int { return v.pitch }

// IsEmpty reports whether the array contains no items.
func (v View[T]) IsEmpty() bool { return v.bounds.IsEmpty() }

// Len returns the number of items in the array.
func (v View[T]) Len() int { return v.bounds.Len() }

// Width returns the horizontal extent of the array.
func (v View[T]) Width() int { return v.bounds.Width() }

// Height returns the vertical extent of the array.
func (v View[T]) Height() int { return v.bounds.Height() }

// MinPoint returns the numerically smallest coordinate in the array.
func (v View[T]) MinPoint() vec2.Vec { return v.bounds.Min }

// MaxPoint returns the numerically largest coordinate in the array.
func (v View[T]) MaxPoint() vec2.Vec { return v.bounds.Max() }

// Dim returns the dimension of the array.
func (v View[T]) Dim() vec2.Dim { return v.bounds.Dim }

// Contains reports whether a point lies inside the boundary.
func (v View[T]) Contains(p vec2.Vec) bool { return v.bounds.Contains(p) }

// Get returns the value at a point, or the zero value and false if the
// point lies outside the boundary.
func (v View[T]) Get(p vec2.Vec) (T, bool) {
	if !v.bounds.Contains(p) {
		var zero T
		return zero, false
	}
	return v.buf[offsetOf(p, v.bounds.Min, v.pitch)], true
}

// Fetch returns the value at a point, or the zero value if the point
// lies outside the boundary.
func (v View[T]) Fetch(p vec2.Vec) T {
	val, _ := v.Get(p)
	return val
}

// Slice returns the overlap of the requested boundary with the array as
// a view sharing the same buffer, plus an exact flag: true when every
// requested point is present, false when the result was truncated (or
// there is no overlap at all).
func (v View[T]) Slice(b boundary.Boundary) (View[T], bool) {
	inter, ok := v.bounds.Intersect(b)
	if !ok {
		return View[T]{}, false
	}
	off := offsetOf(inter.Min, v.bounds.Min, v.pitch)
	return View[T]{buf: v.buf[off:], bounds: inter, pitch: v.pitch}, inter == b
}

// Region returns a view over the requested boundary only if every
// requested point is present; unlike Slice it never truncates.
func (v View[T]) Region(b boundary.Boundary) (View[T], bool) {
	s, exact := v.Slice(b)
	if !exact {
		return View[T]{}, false
	}
	return s, true
}

// Displace moves the origin of the array without touching the data.
func (v *View[T]) Displace(by vec2.Vec) {
	v.bounds = v.bounds.DisplacedBy(by)
}

// Displaced returns a view of the same buffer with the origin moved.
func (v View[T]) Displaced(by vec2.Vec) View[T] {
	v.bounds = v.bounds.DisplacedBy(by)
	return v
}

// Rows yields each logical row as a contiguous slice of the backing
// buffer, trimmed from the pitch stride to the boundary width.
func (v View[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		w, h := v.bounds.Width(), v.bounds.Height()
		for y, base := 0, 0; y < h; y, base = y+1, base+v.pitch {
			if !yield(v.buf[base : base+w]) {
				return
			}
		}
	}
}

// All yields every point of the array with its value, in row-major
// order.
func (v View[T]) All() iter.Seq2[vec2.Vec, T] {
	return func(yield func(vec2.Vec, T) bool) {
		w, h := v.bounds.Width(), v.bounds.Height()
		for y := 0; y < h; y++ {
			base := y * v.pitch
			for x := 0; x < w; x++ {
				p := vec2.V(v.bounds.Min.X+int32(x), v.bounds.Min.Y+int32(y))
				if !yield(p, v.buf[base+x]) {
					return
				}
			}
		}
	}
}

// Values yields every value of the array in row-major order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.All() {
			if !yield(val) {
				return
			}
		}
	}
}

// Clone copies the logical contents into a new owned, tightly packed
// grid with the same boundary.
func (v View[T]) Clone() *Grid[T] {
	buf := make([]T, 0, v.bounds.Len())
	for val := range v.Values() {
		buf = append(buf, val)
	}
	g := &Grid[T]{}
	g.buf = buf
	g.bounds = v.bounds
	g.pitch = v.bounds.Width()
	return g
}
