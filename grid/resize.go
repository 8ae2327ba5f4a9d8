package grid

import (
	"github.com/katalvlaran/grid2d/boundary"
	"github.com/katalvlaran/grid2d/vec2"
)

// Cell pairs a point with the value stored there. Used by Extend and
// ExtendPoints.
type Cell[T any] struct {
	At    vec2.Vec
	Value T
}

// Resize transforms the grid so its boundary becomes b, preserving the
// value of every point present in both the old and new boundary and
// zero-filling every newly introduced point. The kept intersection is
// relocated inside the backing buffer with overlap-safe block moves;
// the buffer is reallocated only when it must grow. Resizing to the
// current boundary is a no-op.
func (g *Grid[T]) Resize(b boundary.Boundary) {
	if g.bounds == b {
		return
	}
	// Grow before any move so relocation never writes past the buffer.
	if size := b.Len(); size > len(g.buf) {
		g.buf = append(g.buf, make([]T, size-len(g.buf))...)
	}

	inter, ok := g.bounds.Intersect(b)
	if !ok {
		// Nothing survives; no relocation needed.
		clear(g.buf)
		g.bounds = b
		g.pitch = b.Width()
		return
	}

	// Downsizing first: compacting the kept rows toward the front must
	// happen before any row is spread out, or the spread would read
	// cells an earlier move already overwrote.
	if inter != g.bounds {
		g.downsize(inter)
	}
	if inter != b {
		g.upsize(inter, b)
	}

	g.bounds = b
	g.pitch = b.Width()
}

// downsize compacts the rows of the kept intersection to the front of
// the buffer at the intersection's own pitch, then zero-fills the
// vacated tail.
func (g *Grid[T]) downsize(inter boundary.Boundary) {
	w := inter.Width()
	src := offsetOf(inter.Min, g.bounds.Min, g.pitch)
	dst := 0
	for y := 0; y < inter.Height(); y++ {
		MoveWithin(g.buf, src, dst, w)
		dst += w
		src += g.pitch
	}
	clear(g.buf[inter.Len():])
}

// upsize spreads the compacted rows of from into the layout of to,
// walking from the last row to the first. Reverse order is mandatory:
// the target pitch is at least the source pitch, so a forward walk
// would overwrite rows not yet relocated.
func (g *Grid[T]) upsize(from, to boundary.Boundary) {
	h := from.Height()
	fp, tp := from.Width(), to.Width()
	src := fp * h
	dst := offsetOf(from.Min, to.Min, tp) + tp*h
	for y := 0; y < h; y++ {
		src -= fp
		dst -= tp
		MoveWithin(g.buf, src, dst, fp)
	}
}

// Insert assigns a value at a point, growing the grid to the minimal
// bounding rectangle covering both the current boundary and the point
// when it is not yet covered. Inserting into the empty grid yields the
// 1×1 grid of that point.
func (g *Grid[T]) Insert(p vec2.Vec, val T) {
	if !g.bounds.Contains(p) {
		g.Resize(g.bounds.Union(boundary.FromPoint(p)))
	}
	*g.At(p) = val
}

// Extend grows the grid to cover b (in addition to its current
// boundary), then assigns each cell. Cells outside the final boundary
// are discarded; the count of discarded cells is returned.
func (g *Grid[T]) Extend(b boundary.Boundary, cells []Cell[T]) int {
	g.Resize(g.bounds.Union(b))
	discarded := 0
	for _, c := range cells {
		if !g.Set(c.At, c.Value) {
			discarded++
		}
	}
	return discarded
}

// ExtendPoints grows the grid to the measured bounding box of the given
// cells, then assigns each of them. The cells must be pre-materialized
// because they are traversed twice: once to measure, once to place.
// Returns the count of discarded cells (zero unless the grid already
// used a wider boundary elsewhere on one axis only).
func (g *Grid[T]) ExtendPoints(cells []Cell[T]) int {
	target := boundary.Empty
	for _, c := range cells {
		target = target.Union(boundary.FromPoint(c.At))
	}
	return g.Extend(target, cells)
}

// Merge grows the grid to the union bounding box of both boundaries and
// copies the other array on top, cell by cell.
func (g *Grid[T]) Merge(src Source[T]) {
	g.Resize(g.bounds.Union(src.Bounds()))
	Paint(g, src, vec2.Vec{}, func(dst *T, val T) { *dst = val })
}
