package vec2

import "math"

// Vec is a signed 2D integer point or displacement.
type Vec struct {
	X, Y int32
}

// Dim is an unsigned 2D extent. A zero component denotes emptiness along
// that axis.
type Dim struct {
	X, Y uint32
}

// V constructs a Vec.
func V(x, y int32) Vec { return Vec{X: x, Y: y} }

// D constructs a Dim.
func D(x, y uint32) Dim { return Dim{X: x, Y: y} }

// Add returns the componentwise sum v + o.
// Go integer addition wraps on overflow, matching the boundary algebra's
// wrap-at-the-extremes convention.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns the componentwise difference v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// AddDim returns v displaced by an unsigned extent, wrapping at the
// extremes. This is the exclusive-upper-bound primitive: for a legal
// boundary the result never exceeds MaxInt32.
func (v Vec) AddDim(d Dim) Vec {
	return Vec{X: v.X + int32(d.X), Y: v.Y + int32(d.Y)}
}

// Abs returns the componentwise absolute value.
func (v Vec) Abs() Vec {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return Vec{X: x, Y: y}
}

// Dim converts to an unsigned extent; negative components clamp to zero.
func (v Vec) Dim() Dim {
	x, y := v.X, v.Y
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Dim{X: uint32(x), Y: uint32(y)}
}

// Min returns the componentwise minimum of a and b.
func Min(a, b Vec) Vec {
	if b.X < a.X {
		a.X = b.X
	}
	if b.Y < a.Y {
		a.Y = b.Y
	}
	return a
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Vec) Vec {
	if b.X > a.X {
		a.X = b.X
	}
	if b.Y > a.Y {
		a.Y = b.Y
	}
	return a
}

// Vec reinterprets the extent as a signed displacement. Components above
// MaxInt32 wrap, which the boundary algebra exploits for the full-range
// boundary.
func (d Dim) Vec() Vec { return Vec{X: int32(d.X), Y: int32(d.Y)} }

// IsZero reports whether either component is zero, i.e. the extent
// contains no points.
func (d Dim) IsZero() bool { return d.X == 0 || d.Y == 0 }

// Count returns the number of points in the extent, saturating at the
// largest int when the true product is not representable. Only the
// full-range extent comes anywhere near that; no such buffer can be
// allocated anyway.
func (d Dim) Count() int {
	n := uint64(d.X) * uint64(d.Y)
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
