package boundary

import (
	"iter"
	"math"

	"github.com/katalvlaran/grid2d/vec2"
)

// Coordinate extremes. MaxCoordinate is MaxInt32-1, not MaxInt32: the
// exclusive upper bound Min+Dim of a boundary touching the top of the
// range must itself stay representable.
const (
	MinCoordinate int32 = math.MinInt32
	MaxCoordinate int32 = math.MaxInt32 - 1
)

// Boundary is the area occupied by a 2D array: the set of integer points
// p with Min.X ≤ p.X < Min.X+Dim.X and Min.Y ≤ p.Y < Min.Y+Dim.Y.
// The zero value is the empty boundary at the origin.
type Boundary struct {
	Min vec2.Vec
	Dim vec2.Dim
}

// Empty contains no points. It is the boundary of the zero-value grid.
var Empty = Boundary{}

// All spans the full representable range, [MinCoordinate, MaxCoordinate]
// on both axes. Its dimension is MaxUint32 per axis; MinCoordinate plus
// that extent wraps to MaxInt32, the exclusive upper bound.
var All = Boundary{
	Min: vec2.V(MinCoordinate, MinCoordinate),
	Dim: vec2.D(math.MaxUint32, math.MaxUint32),
}

// FromPoint returns the 1×1 boundary of a single point.
func FromPoint(p vec2.Vec) Boundary {
	return Boundary{Min: p, Dim: vec2.D(1, 1)}
}

// FromDim returns the boundary of a conventional 2D array anchored at
// the origin.
func FromDim(d vec2.Dim) Boundary {
	return Boundary{Dim: d}
}

// MinMax returns the boundary spanning min..max inclusive on both axes.
func MinMax(min, max vec2.Vec) Boundary {
	full := vec2.V(MinCoordinate, MinCoordinate)
	if min == full && max == vec2.V(MaxCoordinate, MaxCoordinate) {
		// The true point count is MaxUint32+1 per axis; fall back to the
		// documented All convention.
		return All
	}
	d := max.Sub(min).Add(vec2.V(1, 1))
	return Boundary{Min: min, Dim: vec2.D(uint32(d.X), uint32(d.Y))}
}

// MinMaxExclusive returns the boundary spanning min..max with max
// excluded on both axes. MaxInt32 is not a valid bound; use
// MaxCoordinate+1 semantics via MinMax instead.
func MinMaxExclusive(min, max vec2.Vec) Boundary {
	d := max.Sub(min)
	return Boundary{Min: min, Dim: vec2.D(uint32(d.X), uint32(d.Y))}
}

// MinDim returns the boundary anchored at min with the given extent.
// Negative extent components are treated as their absolute value.
func MinDim(min, dim vec2.Vec) Boundary {
	return Boundary{Min: min, Dim: dim.Abs().Dim()}
}

// CenterHalfDim returns the odd-sized boundary symmetric about center,
// reaching half points out on each side of each axis.
func CenterHalfDim(center, half vec2.Vec) Boundary {
	half = half.Abs()
	return Boundary{
		Min: center.Sub(half),
		Dim: half.Add(half).Add(vec2.V(1, 1)).Dim(),
	}
}

// XY returns the boundary covering the x span horizontally and the y
// span vertically.
func XY(x, y Span) Boundary {
	return MinMax(vec2.V(x.Lo, y.Lo), vec2.V(x.Hi, y.Hi))
}

// IsEmpty reports whether the boundary contains no points.
func (b Boundary) IsEmpty() bool {
	return b.Dim.IsZero()
}

// Len returns the number of points in the boundary, which is also the
// length of a tightly packed backing buffer.
func (b Boundary) Len() int {
	return b.Dim.Count()
}

// Width returns the horizontal extent.
func (b Boundary) Width() int { return int(b.Dim.X) }

// Height returns the vertical extent.
func (b Boundary) Height() int { return int(b.Dim.Y) }

// Max returns the largest point contained in the boundary.
// Meaningless for an empty boundary.
func (b Boundary) Max() vec2.Vec {
	return b.MaxExclusive().Sub(vec2.V(1, 1))
}

// MaxExclusive returns Min+Dim, i.e. Max+[1,1].
func (b Boundary) MaxExclusive() vec2.Vec {
	return b.Min.AddDim(b.Dim)
}

// Contains reports whether the point lies inside the boundary.
// The test is half-open and safe at the extremes of the range.
func (b Boundary) Contains(p vec2.Vec) bool {
	max := b.MaxExclusive()
	return p.X >= b.Min.X && p.Y >= b.Min.Y && p.X < max.X && p.Y < max.Y
}

// Intersect returns the overlap of two boundaries. The second result is
// false when the overlap contains no points: inverted rectangles, merely
// touching edges, and empty operands all count as no intersection.
// Every slicing, painting and resizing operation composes through here.
func (b Boundary) Intersect(o Boundary) (Boundary, bool) {
	if b == o {
		return b, true
	}
	if b.IsEmpty() || o.IsEmpty() {
		return Empty, false
	}
	min := vec2.Max(b.Min, o.Min)
	max := vec2.Min(b.MaxExclusive(), o.MaxExclusive())
	if max.X <= min.X || max.Y <= min.Y {
		return Empty, false
	}
	return MinMaxExclusive(min, max), true
}

// Union returns the minimal bounding rectangle covering both boundaries.
// An empty operand is the identity, so growing out of the empty state
// never drags the origin into the result.
func (b Boundary) Union(o Boundary) Boundary {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	min := vec2.Min(b.Min, o.Min)
	max := vec2.Max(b.MaxExclusive(), o.MaxExclusive())
	return MinMaxExclusive(min, max)
}

// DisplacedBy returns the boundary translated by the displacement.
func (b Boundary) DisplacedBy(by vec2.Vec) Boundary {
	return Boundary{Min: b.Min.Add(by), Dim: b.Dim}
}

// ExpandedBy returns the boundary grown (or, with negative components,
// shrunk) symmetrically about its own footprint: expanding
// [0,0]..=[0,0] by [2,1] yields [-2,-1]..=[2,1]. Dimensions shrunk below
// zero clamp to empty.
func (b Boundary) ExpandedBy(by vec2.Vec) Boundary {
	return Boundary{
		Min: b.Min.Sub(by),
		Dim: b.Dim.Vec().Add(by).Add(by).Dim(),
	}
}

// Points enumerates every point in the boundary in row-major order.
func (b Boundary) Points() iter.Seq[vec2.Vec] {
	return func(yield func(vec2.Vec) bool) {
		for dy := uint32(0); dy < b.Dim.Y; dy++ {
			for dx := uint32(0); dx < b.Dim.X; dx++ {
				p := vec2.V(b.Min.X+int32(dx), b.Min.Y+int32(dy))
				if !yield(p) {
					return
				}
			}
		}
	}
}
