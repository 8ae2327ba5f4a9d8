package grid

import (
	"github.com/katalvlaran/grid2d/vec2"
)

// Paint composites a brush onto a destination array. The brush's
// boundary is displaced by at, intersected with the destination's
// boundary, and fn is invoked once per cell pair in the intersection
// with a pointer into the destination and the brush value. Cells
// outside the intersection are left untouched; a brush that lands
// entirely outside the destination is a no-op.
//
// The destination and brush must not alias overlapping cells of the
// same buffer.
func Paint[D, S any](dst Target[D], brush Source[S], at vec2.Vec, fn func(dst *D, src S)) {
	d := dst.mutView()
	b := brush.view()

	region := b.bounds.DisplacedBy(at)
	inter, ok := d.bounds.Intersect(region)
	if !ok {
		return
	}

	dBase := offsetOf(inter.Min, d.bounds.Min, d.pitch)
	sBase := offsetOf(inter.Min, region.Min, b.pitch)
	w, h := inter.Width(), inter.Height()
	for y := 0; y < h; y++ {
		for i := 0; i < w; i++ {
			fn(&d.buf[dBase+i], b.buf[sBase+i])
		}
		dBase += d.pitch
		sBase += b.pitch
	}
}
