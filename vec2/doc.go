// Package vec2 provides the integer pair arithmetic underlying
// github.com/katalvlaran/grid2d.
//
// What:
//
//   - Vec: a signed (int32) 2D point or displacement.
//   - Dim: an unsigned (uint32) 2D extent; components are never negative.
//   - Componentwise add/sub/min/max/abs and the signed↔unsigned
//     conversions used by the boundary algebra.
//
// Why:
//
//   - Splitting points (signed) from extents (unsigned) keeps "a
//     dimension can never be negative" a property of the type rather
//     than a runtime check.
//   - Vec.AddDim is the exclusive-upper-bound primitive: it wraps at the
//     extremes of the int32 range, which is exactly what the boundary
//     convention (maximum coordinate = MaxInt32-1) relies on.
//
// Complexity: every operation is O(1) and allocation-free.
package vec2
