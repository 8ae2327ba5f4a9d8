package grid

import (
	"github.com/katalvlaran/grid2d/boundary"
	"github.com/katalvlaran/grid2d/vec2"
)

// MutView is a writable 2D array backed by a borrowed row-major buffer.
// It extends View with mutation; it cannot grow or relocate the buffer.
// A MutView borrows exclusive write access: do not mutate the buffer
// through other references while the view is in use.
type MutView[T any] struct {
	View[T]
}

// MutViewOf reinterprets a row-major buffer as a writable 2D array over
// the boundary. Panics if the buffer holds fewer items than the
// boundary requires.
func MutViewOf[T any](buf []T, b boundary.Boundary) MutView[T] {
	return MutView[T]{View: ViewOf(buf, b)}
}

// MutViewOfPitch is ViewOfPitch with write access.
func MutViewOfPitch[T any](buf []T, b boundary.Boundary, pitch int) MutView[T] {
	return MutView[T]{View: ViewOfPitch(buf, b, pitch)}
}

func (m MutView[T]) mutView() MutView[T] { return m }

// At returns a pointer to the value at a point, or nil if the point
// lies outside the boundary.
func (m MutView[T]) At(p vec2.Vec) *T {
	if !m.bounds.Contains(p) {
		return nil
	}
	return &m.buf[offsetOf(p, m.bounds.Min, m.pitch)]
}

// Set assigns a value at a point and reports whether the point was
// inside the boundary.
func (m MutView[T]) Set(p vec2.Vec, val T) bool {
	r := m.At(p)
	if r == nil {
		return false
	}
	*r = val
	return true
}

// Fill assigns the value to every cell of the array.
func (m MutView[T]) Fill(val T) {
	for row := range m.Rows() {
		for i := range row {
			row[i] = val
		}
	}
}

// ForEach invokes fn with each point and a pointer to its value, in
// row-major order.
func (m MutView[T]) ForEach(fn func(vec2.Vec, *T)) {
	w, h := m.bounds.Width(), m.bounds.Height()
	for y := 0; y < h; y++ {
		base := y * m.pitch
		for x := 0; x < w; x++ {
			p := vec2.V(m.bounds.Min.X+int32(x), m.bounds.Min.Y+int32(y))
			fn(p, &m.buf[base+x])
		}
	}
}

// SliceMut is Slice with write access to the overlap.
func (m MutView[T]) SliceMut(b boundary.Boundary) (MutView[T], bool) {
	s, exact := m.Slice(b)
	return MutView[T]{View: s}, exact
}

// RegionMut is Region with write access.
func (m MutView[T]) RegionMut(b boundary.Boundary) (MutView[T], bool) {
	s, ok := m.Region(b)
	return MutView[T]{View: s}, ok
}
