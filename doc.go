// Package grid2d is a generic two-dimensional array toolkit: dense
// row-major storage addressed by absolute integer coordinates, with the
// origin anywhere on the plane — including negative space.
//
// What does grid2d give you?
//
//	A small, composable set of packages that brings together:
//		• Boundary algebra: axis-aligned rectangles with intersection,
//		  union, displacement and symmetric expansion
//		• Owned containers: growable 2D arrays that resize and relocate
//		  in place with overlap-safe block moves
//		• Borrowed views: read-only and mutable windows over any
//		  row-major buffer, with pitch support for sub-windows
//		• Compositing: brush-based painting of one array onto another
//		  with automatic clipping
//		• Zips: elementwise combination of same-shaped arrays into new
//		  grids or in-place updates
//
// Why choose grid2d?
//
//   - Coordinates mean what you say – a cell at (-3, 40) really lives
//     at (-3, 40); no manual offset bookkeeping
//   - Resize keeps your data – overlapping cells survive any reshape,
//     new cells arrive zeroed
//   - Views are free – slicing never copies, cloning always does
//   - Pure generics – any element type, no reflection on the hot path
//
// Everything is organized under three subpackages:
//
//	vec2/     — points and dimensions on the integer plane
//	boundary/ — rectangle algebra and coordinate spans
//	grid/     — views, mutable views, owned grids, paint and zip
//
// Quick ASCII example:
//
//	g := grid.New[rune](boundary.MinMax(vec2.V(-1, -1), vec2.V(1, 1)))
//
//	    (-1,-1)──────┐
//	       │ . . . │
//	       │ . . . │
//	       │ . . . │
//	       └──────(1,1)
//
//	a 3×3 grid whose center cell is the true origin (0,0).
//
// Dive into examples/ for runnable demos: an interactive painter and a
// sparse map built cell by cell.
//
//	go get github.com/katalvlaran/grid2d
package grid2d
