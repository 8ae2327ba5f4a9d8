// Package boundary implements the axis-aligned integer rectangle algebra
// used by github.com/katalvlaran/grid2d.
//
// What:
//
//   - Boundary: a rectangle of integer points described by a minimum
//     corner (signed) and a dimension (unsigned), i.e. the half-open set
//     Min.X ≤ p.X < Min.X+Dim.X, Min.Y ≤ p.Y < Min.Y+Dim.Y.
//   - Constructors for every common notation: min+max (inclusive or
//     exclusive), min+dimension, center+half-dimension, per-axis Spans.
//   - Intersect, Union, Contains, DisplacedBy, ExpandedBy, and row-major
//     point enumeration.
//
// Why:
//
//   - Every slicing, painting, resizing and merging operation in the
//     container composes through Intersect; it is the single branch
//     point of the whole region algebra.
//   - The representable range is capped at MaxCoordinate = MaxInt32-1 so
//     that the exclusive upper bound Min+Dim never overflows int32. All
//     spans the full range under that convention.
//
// Invariants:
//
//   - A Boundary with either dimension component 0 is empty and denotes
//     no points.
//   - Boundaries are immutable values; DisplacedBy/ExpandedBy return new
//     rectangles.
//
// Complexity: all operations are O(1); Points enumerates in O(Dim.X·Dim.Y).
package boundary
