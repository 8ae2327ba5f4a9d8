package grid_test

import (
	"testing"

	"github.com/katalvlaran/grid2d/boundary"
	"github.com/katalvlaran/grid2d/grid"
	"github.com/katalvlaran/grid2d/vec2"
	"github.com/stretchr/testify/require"
)

func TestMapGreaterThan(t *testing.T) {
	a := grid.FromSlice([]int{
		5, 2, 9,
		1, 8, 3,
		7, 6, 0,
	}, boundary.FromDim(vec2.D(3, 3)))
	b := grid.FromSlice([]int{
		4, 4, 4,
		4, 4, 4,
		4, 4, 4,
	}, boundary.FromDim(vec2.D(3, 3)))

	mask := grid.Map(a, b, func(av, bv int) bool { return av > bv })
	require.Equal(t, [][]bool{
		{true, false, true},
		{false, true, false},
		{true, true, false},
	}, rowsOf[bool](mask))
	// The combined grid inherits the first operand's boundary.
	require.Equal(t, a.Bounds(), mask.Bounds())
}

func TestMapInheritsFirstOrigin(t *testing.T) {
	a := grid.NewFilled(boundary.MinDim(vec2.V(10, 20), vec2.V(2, 2)), 1)
	b := grid.NewFilled(boundary.MinDim(vec2.V(-5, -5), vec2.V(2, 2)), 2)

	sum := grid.Map(a, b, func(av, bv int) int { return av + bv })
	require.Equal(t, a.Bounds(), sum.Bounds())
	require.Equal(t, 3, sum.Fetch(vec2.V(10, 20)))
}

func TestMapPanicsOnMismatch(t *testing.T) {
	a := grid.New[int](boundary.FromDim(vec2.D(2, 2)))
	b := grid.New[int](boundary.FromDim(vec2.D(3, 2)))
	require.PanicsWithValue(t, "grid: dimension mismatch", func() {
		grid.Map(a, b, func(_, _ int) int { return 0 })
	})
}

func TestZipForEach(t *testing.T) {
	a := grid.FromSlice([]int{1, 2, 3, 4}, boundary.FromDim(vec2.D(2, 2)))
	b := grid.FromSlice([]int{10, 20, 30, 40}, boundary.FromDim(vec2.D(2, 2)))

	var pairs [][2]int
	ok := grid.ZipOf[int, int](a, b).ForEach(func(av, bv int) {
		pairs = append(pairs, [2]int{av, bv})
	})
	require.True(t, ok)
	require.Equal(t, [][2]int{{1, 10}, {2, 20}, {3, 30}, {4, 40}}, pairs)
}

func TestZipMismatchInvokesNothing(t *testing.T) {
	a := grid.New[int](boundary.FromDim(vec2.D(2, 3)))
	b := grid.New[int](boundary.FromDim(vec2.D(3, 2)))

	z := grid.ZipOf[int, int](a, b)
	require.False(t, z.Valid())

	calls := 0
	require.False(t, z.ForEach(func(_, _ int) { calls++ }))
	require.Zero(t, calls)
}

func TestZipForEachIndexed(t *testing.T) {
	a := grid.New[int](boundary.MinDim(vec2.V(0, 0), vec2.V(2, 1)))
	b := grid.New[int](boundary.MinDim(vec2.V(100, 100), vec2.V(2, 1)))

	var pas, pbs []vec2.Vec
	ok := grid.ZipOf[int, int](a, b).ForEachIndexed(
		func(pa vec2.Vec, _ int, pb vec2.Vec, _ int) {
			pas = append(pas, pa)
			pbs = append(pbs, pb)
		})
	require.True(t, ok)
	// Each operand reports the cell in its own coordinate space.
	require.Equal(t, []vec2.Vec{vec2.V(0, 0), vec2.V(1, 0)}, pas)
	require.Equal(t, []vec2.Vec{vec2.V(100, 100), vec2.V(101, 100)}, pbs)
}

func TestZipMutForEach(t *testing.T) {
	a := grid.FromSlice([]int{1, 2, 3, 4}, boundary.FromDim(vec2.D(2, 2)))
	b := grid.FromSlice([]int{10, 20, 30, 40},
		boundary.MinDim(vec2.V(-7, 3), vec2.V(2, 2)))

	ok := grid.ZipMutOf[int, int](a, b).ForEach(func(av *int, bv int) {
		*av += bv
	})
	require.True(t, ok)
	require.Equal(t, [][]int{{11, 22}, {33, 44}}, rowsOf[int](a))
}

func TestZipMutOverPitchedViews(t *testing.T) {
	// Zip operands with different pitches must still pair cell for cell.
	dstBuf := make([]int, 9)
	dst := grid.MutViewOfPitch(dstBuf, boundary.FromDim(vec2.D(2, 2)), 3)
	src := grid.FromSlice([]int{1, 2, 3, 4}, boundary.FromDim(vec2.D(2, 2)))

	ok := grid.ZipMutOf[int, int](dst, src).ForEach(func(d *int, s int) {
		*d = s
	})
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 0, 3, 4, 0, 0, 0, 0}, dstBuf)
}

func TestMapMut(t *testing.T) {
	a := grid.FromSlice([]int{1, 2, 3, 4}, boundary.FromDim(vec2.D(2, 2)))
	b := grid.FromSlice([]int{5, 6, 7, 8}, boundary.FromDim(vec2.D(2, 2)))

	sums := grid.MapMut(a, b, func(av *int, bv int) int {
		*av *= 10
		return *av + bv
	})
	require.Equal(t, [][]int{{10, 20}, {30, 40}}, rowsOf[int](a))
	require.Equal(t, [][]int{{15, 26}, {37, 48}}, rowsOf[int](sums))
}

func TestEqualAndEquivalent(t *testing.T) {
	a := grid.FromSlice([]int{1, 2, 3, 4}, boundary.FromDim(vec2.D(2, 2)))
	b := grid.FromSlice([]int{1, 2, 3, 4}, boundary.FromDim(vec2.D(2, 2)))
	require.True(t, grid.Equal[int](a, b))
	require.True(t, grid.Equivalent[int](a, b))

	// Same values, displaced origin: equivalent but not equal.
	b.Displace(vec2.V(1, 0))
	require.False(t, grid.Equal[int](a, b))
	require.True(t, grid.Equivalent[int](a, b))

	b.Displace(vec2.V(-1, 0))
	b.Set(vec2.V(0, 0), 99)
	require.False(t, grid.Equal[int](a, b))
	require.False(t, grid.Equivalent[int](a, b))

	c := grid.New[int](boundary.FromDim(vec2.D(4, 1)))
	require.False(t, grid.Equivalent[int](a, c))
}
