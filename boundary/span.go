package boundary

// Span is a resolved per-axis coordinate range, inclusive at both ends.
// Construct spans through Incl, Excl, From, Until, Through or Full so
// that open ends clamp to the representable extremes.
type Span struct {
	Lo, Hi int32
}

// Incl returns the span lo..hi with both ends included.
func Incl(lo, hi int32) Span { return Span{Lo: lo, Hi: hi} }

// Excl returns the span lo..hi with hi excluded.
func Excl(lo, hi int32) Span { return Span{Lo: lo, Hi: hi - 1} }

// From returns the span from lo to the top of the representable range.
func From(lo int32) Span { return Span{Lo: lo, Hi: MaxCoordinate} }

// Until returns the span from the bottom of the representable range up
// to but excluding hi.
func Until(hi int32) Span { return Span{Lo: MinCoordinate, Hi: hi - 1} }

// Through returns the span from the bottom of the representable range
// through hi inclusive.
func Through(hi int32) Span { return Span{Lo: MinCoordinate, Hi: hi} }

// Full returns the span of the whole representable range.
func Full() Span { return Span{Lo: MinCoordinate, Hi: MaxCoordinate} }
