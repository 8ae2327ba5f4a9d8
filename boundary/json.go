package boundary

import (
	"encoding/json"

	"github.com/katalvlaran/grid2d/vec2"
)

// boundaryJSON is the persisted form of a Boundary.
type boundaryJSON struct {
	Min       [2]int32  `json:"min"`
	Dimension [2]uint32 `json:"dimension"`
}

// MarshalJSON encodes the boundary as {"min":[x,y],"dimension":[w,h]}.
func (b Boundary) MarshalJSON() ([]byte, error) {
	return json.Marshal(boundaryJSON{
		Min:       [2]int32{b.Min.X, b.Min.Y},
		Dimension: [2]uint32{b.Dim.X, b.Dim.Y},
	})
}

// UnmarshalJSON decodes {"min":[x,y],"dimension":[w,h]}.
func (b *Boundary) UnmarshalJSON(data []byte) error {
	var raw boundaryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Min = vec2.V(raw.Min[0], raw.Min[1])
	b.Dim = vec2.D(raw.Dimension[0], raw.Dimension[1])
	return nil
}
