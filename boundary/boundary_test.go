package boundary_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/grid2d/boundary"
	"github.com/katalvlaran/grid2d/vec2"
	"github.com/stretchr/testify/require"
)

// collect materializes a point sequence for comparison.
func collect(b boundary.Boundary) []vec2.Vec {
	var out []vec2.Vec
	for p := range b.Points() {
		out = append(out, p)
	}
	return out
}

func TestPoints(t *testing.T) {
	require.Empty(t, collect(boundary.Empty))

	require.Equal(t,
		[]vec2.Vec{
			vec2.V(1, 1), vec2.V(2, 1),
			vec2.V(1, 2), vec2.V(2, 2),
			vec2.V(1, 3), vec2.V(2, 3),
		},
		collect(boundary.MinMax(vec2.V(1, 1), vec2.V(2, 3))),
	)
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		name          string
		b             boundary.Boundary
		length        int
		width, height int
	}{
		{"XY_Exclusive", boundary.XY(boundary.Excl(-1, 2), boundary.Excl(-1, 3)), 12, 3, 4},
		{"XY_Inclusive", boundary.XY(boundary.Incl(-1, 2), boundary.Incl(-1, 3)), 20, 4, 5},
		{"MinMaxExclusive", boundary.MinMaxExclusive(vec2.V(1, 4), vec2.V(7, 12)), 48, 6, 8},
		{"MinMax", boundary.MinMax(vec2.V(1, 4), vec2.V(7, 12)), 63, 7, 9},
		{"MinMax_Wide", boundary.MinMax(vec2.V(1, 2), vec2.V(4, 3)), 8, 4, 2},
		{"CenterHalfDim", boundary.CenterHalfDim(vec2.V(0, 0), vec2.V(3, 4)), 63, 7, 9},
		{"MinDim", boundary.MinDim(vec2.V(0, 0), vec2.V(1, 4)), 4, 1, 4},
		{"FromPoint", boundary.FromPoint(vec2.V(9, -9)), 1, 1, 1},
		{"FromDim", boundary.FromDim(vec2.D(5, 2)), 10, 5, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.length, tc.b.Len())
			require.Equal(t, tc.width, tc.b.Width())
			require.Equal(t, tc.height, tc.b.Height())
		})
	}
}

func TestCenterHalfDimIsSymmetric(t *testing.T) {
	b := boundary.CenterHalfDim(vec2.V(2, -3), vec2.V(1, 2))
	require.Equal(t, vec2.V(1, -5), b.Min)
	require.Equal(t, vec2.V(3, -1), b.Max())
}

func TestSpans(t *testing.T) {
	b := boundary.XY(boundary.From(3), boundary.Full())
	require.Equal(t, int32(3), b.Min.X)
	require.Equal(t, boundary.MinCoordinate, b.Min.Y)
	require.Equal(t, boundary.MaxCoordinate, b.Max().X)
	require.Equal(t, boundary.MaxCoordinate, b.Max().Y)

	b = boundary.XY(boundary.Until(4), boundary.Through(4))
	require.Equal(t, int32(3), b.Max().X)
	require.Equal(t, int32(4), b.Max().Y)
}

func TestAllConvention(t *testing.T) {
	full := vec2.V(boundary.MinCoordinate, boundary.MinCoordinate)
	top := vec2.V(boundary.MaxCoordinate, boundary.MaxCoordinate)
	require.Equal(t, boundary.All, boundary.MinMax(full, top))
	require.Equal(t, boundary.All, boundary.XY(boundary.Full(), boundary.Full()))

	// The exclusive upper bound of All is MaxInt32, one past MaxCoordinate.
	require.Equal(t, top, boundary.All.Max())
	require.True(t, boundary.All.Contains(top))
	require.True(t, boundary.All.Contains(full))
	require.False(t, boundary.All.Contains(vec2.V(boundary.MaxCoordinate+1, 0)))
}

func TestContains(t *testing.T) {
	b := boundary.MinMax(vec2.V(-1, -1), vec2.V(1, 1))
	for p := range b.Points() {
		require.True(t, b.Contains(p), "expected %v inside %v", p, b)
	}
	outside := []vec2.Vec{
		vec2.V(-2, 0), vec2.V(2, 0), vec2.V(0, -2), vec2.V(0, 2),
	}
	for _, p := range outside {
		require.False(t, b.Contains(p), "expected %v outside %v", p, b)
	}
	require.False(t, boundary.Empty.Contains(vec2.V(0, 0)))
}

func TestIntersectSelf(t *testing.T) {
	for _, b := range []boundary.Boundary{
		boundary.Empty,
		boundary.All,
		boundary.MinMax(vec2.V(-3, 2), vec2.V(4, 9)),
	} {
		got, ok := b.Intersect(b)
		require.True(t, ok)
		require.Equal(t, b, got)
	}
}

func TestIntersectEmpty(t *testing.T) {
	nonEmpty := []boundary.Boundary{
		boundary.MinMax(vec2.V(-3, -3), vec2.V(3, 3)), // covers the origin
		boundary.MinMax(vec2.V(1, 1), vec2.V(2, 2)),   // away from the origin
		boundary.All,
	}
	for _, b := range nonEmpty {
		_, ok := b.Intersect(boundary.Empty)
		require.False(t, ok)
		_, ok = boundary.Empty.Intersect(b)
		require.False(t, ok)
	}
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		name string
		a, b boundary.Boundary
		want boundary.Boundary
		ok   bool
	}{
		{
			"Overlap",
			boundary.MinMax(vec2.V(0, 0), vec2.V(4, 4)),
			boundary.MinMax(vec2.V(2, 2), vec2.V(6, 6)),
			boundary.MinMax(vec2.V(2, 2), vec2.V(4, 4)),
			true,
		},
		{
			"Contained",
			boundary.MinMax(vec2.V(-5, -5), vec2.V(5, 5)),
			boundary.MinMax(vec2.V(-1, 0), vec2.V(1, 2)),
			boundary.MinMax(vec2.V(-1, 0), vec2.V(1, 2)),
			true,
		},
		{
			"Disjoint",
			boundary.MinMax(vec2.V(0, 0), vec2.V(1, 1)),
			boundary.MinMax(vec2.V(5, 5), vec2.V(6, 6)),
			boundary.Empty,
			false,
		},
		{
			"TouchingEdges",
			boundary.MinMaxExclusive(vec2.V(0, 0), vec2.V(2, 2)),
			boundary.MinMaxExclusive(vec2.V(2, 0), vec2.V(4, 2)),
			boundary.Empty,
			false,
		},
		{
			"AgainstAll",
			boundary.All,
			boundary.MinMax(vec2.V(-7, 3), vec2.V(7, 8)),
			boundary.MinMax(vec2.V(-7, 3), vec2.V(7, 8)),
			true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Intersect(tc.b)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
			// Intersection is commutative.
			got, ok = tc.b.Intersect(tc.a)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestUnion(t *testing.T) {
	a := boundary.MinMax(vec2.V(2, 0), vec2.V(3, 1))
	b := boundary.MinMax(vec2.V(0, 2), vec2.V(1, 3))
	require.Equal(t, boundary.MinMax(vec2.V(0, 0), vec2.V(3, 3)), a.Union(b))
	require.Equal(t, boundary.MinMax(vec2.V(0, 0), vec2.V(3, 3)), b.Union(a))

	// The empty boundary is the identity, wherever it sits.
	require.Equal(t, a, a.Union(boundary.Empty))
	require.Equal(t, a, boundary.Empty.Union(a))
	require.Equal(t, boundary.Empty, boundary.Empty.Union(boundary.Empty))
}

func TestDisplaceExpand(t *testing.T) {
	b := boundary.MinMax(vec2.V(0, 0), vec2.V(0, 0))

	d := b.DisplacedBy(vec2.V(3, -2))
	require.Equal(t, boundary.MinMax(vec2.V(3, -2), vec2.V(3, -2)), d)

	e := b.ExpandedBy(vec2.V(2, 1))
	require.Equal(t, boundary.MinMax(vec2.V(-2, -1), vec2.V(2, 1)), e)

	// Shrinking back by the same amount restores the original footprint.
	require.Equal(t, b, e.ExpandedBy(vec2.V(-2, -1)))

	// Shrinking below zero clamps to empty.
	require.True(t, b.ExpandedBy(vec2.V(-1, -1)).IsEmpty())
}

func TestJSONRoundTrip(t *testing.T) {
	b := boundary.MinMax(vec2.V(-3, 4), vec2.V(5, 6))
	raw, err := json.Marshal(b)
	require.NoError(t, err)
	require.JSONEq(t, `{"min":[-3,4],"dimension":[9,3]}`, string(raw))

	var got boundary.Boundary
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, b, got)
}
