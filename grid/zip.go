package grid

import (
	"github.com/katalvlaran/grid2d/vec2"
)

// Zip pairs two read-only array references of the same dimension for
// elementwise traversal. Origins may differ: zips compare shape, not
// position. Every operation first checks dimension equality and reports
// failure instead of producing a partial result.
type Zip[A, B any] struct {
	a View[A]
	b View[B]
}

// ZipOf pairs two readable arrays. Validity is checked by each
// operation, not at construction.
func ZipOf[A, B any](a Source[A], b Source[B]) Zip[A, B] {
	return Zip[A, B]{a: a.view(), b: b.view()}
}

// Valid reports whether the two arrays have equal dimensions. All zip
// operations require this.
func (z Zip[A, B]) Valid() bool {
	return z.a.bounds.Dim == z.b.bounds.Dim
}

// ForEach invokes fn once per cell pair in row-major order. Returns
// false, invoking nothing, on dimension mismatch.
func (z Zip[A, B]) ForEach(fn func(A, B)) bool {
	return z.ForEachIndexed(func(_ vec2.Vec, a A, _ vec2.Vec, b B) {
		fn(a, b)
	})
}

// ForEachIndexed invokes fn once per cell pair with each operand's own
// coordinate for the cell (origins may differ). Returns false, invoking
// nothing, on dimension mismatch.
func (z Zip[A, B]) ForEachIndexed(fn func(pa vec2.Vec, a A, pb vec2.Vec, b B)) bool {
	if !z.Valid() {
		return false
	}
	w, h := z.a.bounds.Width(), z.a.bounds.Height()
	for y := 0; y < h; y++ {
		aBase, bBase := y*z.a.pitch, y*z.b.pitch
		for x := 0; x < w; x++ {
			d := vec2.V(int32(x), int32(y))
			fn(z.a.bounds.Min.Add(d), z.a.buf[aBase+x],
				z.b.bounds.Min.Add(d), z.b.buf[bBase+x])
		}
	}
	return true
}

// ZipMut pairs a writable array with a read-only one of the same
// dimension, for mutating the first from the second.
type ZipMut[A, B any] struct {
	a MutView[A]
	b View[B]
}

// ZipMutOf pairs a writable array with a readable one.
func ZipMutOf[A, B any](a Target[A], b Source[B]) ZipMut[A, B] {
	return ZipMut[A, B]{a: a.mutView(), b: b.view()}
}

// Valid reports whether the two arrays have equal dimensions.
func (z ZipMut[A, B]) Valid() bool {
	return z.a.bounds.Dim == z.b.bounds.Dim
}

// ForEach invokes fn once per cell pair with a pointer into the first
// array. Returns false, invoking nothing, on dimension mismatch.
func (z ZipMut[A, B]) ForEach(fn func(*A, B)) bool {
	return z.ForEachIndexed(func(_ vec2.Vec, a *A, _ vec2.Vec, b B) {
		fn(a, b)
	})
}

// ForEachIndexed is ForEach with each operand's own coordinates.
func (z ZipMut[A, B]) ForEachIndexed(fn func(pa vec2.Vec, a *A, pb vec2.Vec, b B)) bool {
	if !z.Valid() {
		return false
	}
	w, h := z.a.bounds.Width(), z.a.bounds.Height()
	for y := 0; y < h; y++ {
		aBase, bBase := y*z.a.pitch, y*z.b.pitch
		for x := 0; x < w; x++ {
			d := vec2.V(int32(x), int32(y))
			fn(z.a.bounds.Min.Add(d), &z.a.buf[aBase+x],
				z.b.bounds.Min.Add(d), z.b.buf[bBase+x])
		}
	}
	return true
}

// Map combines two same-dimension arrays elementwise into a new owned
// grid inheriting the first operand's origin. Panics on dimension
// mismatch; use ZipOf(...).ForEach when mismatch must be recoverable.
func Map[A, B, C any](a Source[A], b Source[B], fn func(A, B) C) *Grid[C] {
	z := ZipOf(a, b)
	if !z.Valid() {
		panic(panicDimensionMix)
	}
	buf := make([]C, 0, z.a.bounds.Len())
	z.ForEach(func(av A, bv B) {
		buf = append(buf, fn(av, bv))
	})
	out := &Grid[C]{}
	out.buf = buf
	out.bounds = z.a.bounds
	out.pitch = z.a.bounds.Width()
	return out
}

// MapMut is Map with a pointer into the first operand, allowing it to
// be mutated while the combined grid is built. Panics on dimension
// mismatch.
func MapMut[A, B, C any](a Target[A], b Source[B], fn func(*A, B) C) *Grid[C] {
	z := ZipMutOf(a, b)
	if !z.Valid() {
		panic(panicDimensionMix)
	}
	buf := make([]C, 0, z.a.bounds.Len())
	z.ForEach(func(av *A, bv B) {
		buf = append(buf, fn(av, bv))
	})
	out := &Grid[C]{}
	out.buf = buf
	out.bounds = z.a.bounds
	out.pitch = z.a.bounds.Width()
	return out
}

// MapValues transforms every value of an array into a new owned grid
// with the same boundary.
func MapValues[T, U any](src Source[T], fn func(T) U) *Grid[U] {
	v := src.view()
	buf := make([]U, 0, v.bounds.Len())
	for val := range v.Values() {
		buf = append(buf, fn(val))
	}
	out := &Grid[U]{}
	out.buf = buf
	out.bounds = v.bounds
	out.pitch = v.bounds.Width()
	return out
}

// Equal reports whether two arrays have the same boundary and the same
// values at every point.
func Equal[T comparable](a, b Source[T]) bool {
	av, bv := a.view(), b.view()
	if av.bounds != bv.bounds {
		return false
	}
	return sameValues(av, bv)
}

// Equivalent reports whether two arrays have the same dimension and the
// same values cell for cell, ignoring their origins.
func Equivalent[T comparable](a, b Source[T]) bool {
	av, bv := a.view(), b.view()
	if av.bounds.Dim != bv.bounds.Dim {
		return false
	}
	return sameValues(av, bv)
}

func sameValues[T comparable](a, b View[T]) bool {
	w, h := a.bounds.Width(), a.bounds.Height()
	for y := 0; y < h; y++ {
		aBase, bBase := y*a.pitch, y*b.pitch
		for x := 0; x < w; x++ {
			if a.buf[aBase+x] != b.buf[bBase+x] {
				return false
			}
		}
	}
	return true
}
