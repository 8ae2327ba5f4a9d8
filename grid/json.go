package grid

import (
	"encoding/json"

	"github.com/katalvlaran/grid2d/boundary"
	"github.com/katalvlaran/grid2d/vec2"
)

// gridJSON is the persisted form shared by all tiers: min corner,
// dimension, and the logical values in row-major order (pitch padding
// is never serialized), with len(data) == dimension.x * dimension.y.
type gridJSON[T any] struct {
	Min       [2]int32  `json:"min"`
	Dimension [2]uint32 `json:"dimension"`
	Data      []T       `json:"data"`
}

// MarshalJSON encodes the array as
// {"min":[x,y],"dimension":[w,h],"data":[...]}. Views and grids share
// this encoding; a view of a pitched buffer serializes only its logical
// cells.
func (v View[T]) MarshalJSON() ([]byte, error) {
	data := make([]T, 0, v.bounds.Len())
	for val := range v.Values() {
		data = append(data, val)
	}
	return json.Marshal(gridJSON[T]{
		Min:       [2]int32{v.bounds.Min.X, v.bounds.Min.Y},
		Dimension: [2]uint32{v.bounds.Dim.X, v.bounds.Dim.Y},
		Data:      data,
	})
}

// UnmarshalJSON decodes the persisted form, adopting the decoded data
// as the grid's backing buffer. Returns ErrShortData if the payload
// holds fewer elements than its dimension requires.
func (g *Grid[T]) UnmarshalJSON(raw []byte) error {
	var payload gridJSON[T]
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}
	b := boundary.Boundary{
		Min: vec2.V(payload.Min[0], payload.Min[1]),
		Dim: vec2.D(payload.Dimension[0], payload.Dimension[1]),
	}
	if len(payload.Data) < b.Len() {
		return ErrShortData
	}
	// Excess payload items are dropped; the resize engine relies on a
	// zeroed tail past the occupied prefix.
	g.buf = payload.Data[:b.Len()]
	g.bounds = b
	g.pitch = b.Width()
	return nil
}
