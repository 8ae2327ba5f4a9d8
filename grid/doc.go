// Package grid provides a dense 2D array container whose coordinate
// space may have an arbitrary integer origin, with owned storage,
// borrowed views, an in-place resize/relocation engine, brush painting
// and elementwise zip combination.
//
// What:
//
//   - Three capability tiers over one implementation:
//     View (readable), MutView (writable), Grid (owned, growable).
//     The Source/Target interfaces unify them for cross-tier operations.
//   - Point access (Get/At/Set/Fetch) that reports absence instead of
//     panicking, and region access in two named forms: Region
//     (exact-or-nothing) and Slice (truncating, with an exact flag).
//   - Resize relocates the kept intersection inside the backing buffer
//     with an overlap-safe block move (MoveWithin) instead of
//     reallocating, zero-filling only the newly exposed cells.
//   - Insert/Extend/ExtendPoints/Merge grow a grid to cover new points,
//     Paint composites one array onto another through a per-cell
//     function, Zip/ZipMut/Map combine same-dimension arrays.
//
// Why:
//
//   - Game maps, canvases and tile layers want coordinates that grow in
//     any direction without the caller re-basing indices.
//   - A pitch (row stride ≥ width) lets a View borrow a rectangular
//     window of a larger buffer without copying.
//
// Error taxonomy (no operation logs or retries; every recoverable
// condition is a result value):
//
//   - Absent value: Get/At/Set report a missing point, never panic.
//   - Truncation: Slice returns the overlap plus an exact flag.
//   - Contract violation: constructing over an undersized buffer, or
//     with pitch < width, panics — the alternative is silent memory
//     corruption.
//   - Shape mismatch: Zip traversals return false; the constructing
//     Map/MapMut panic.
//   - Malformed persisted data: UnmarshalJSON returns ErrShortData.
//
// Concurrency: none. A Grid is a single-owner container; hand out any
// number of Views or one MutView at a time, as with ordinary Go slices.
//
// Complexity: point access O(1); slicing O(1); iteration, Paint, Zip,
// Map O(points visited); Resize O(old ∪ new).
package grid
