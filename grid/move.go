package grid

// MoveWithin relocates n elements of s from offset from to offset to,
// leaving each moved-from slot holding the zero value. It is safe when
// the source and destination ranges overlap: when the destination
// starts inside the source range the copy runs backward (highest index
// first) so no element is clobbered before it is read.
//
// This is the block-move primitive of the resize engine; a plain copy()
// would be overlap-safe but could not vacate the moved-from slots.
func MoveWithin[T any](s []T, from, to, n int) {
	var zero T
	switch {
	case from == to:
	case to < from || from+n <= to:
		for i := 0; i < n; i++ {
			v := s[from+i]
			s[from+i] = zero
			s[to+i] = v
		}
	default:
		for i := n - 1; i >= 0; i-- {
			v := s[from+i]
			s[from+i] = zero
			s[to+i] = v
		}
	}
}
