package bezier

import (
	"encoding/json"
	"fmt"
)

// pathJSON is the Lottie shape interchange form: a closed flag plus parallel
// per-vertex arrays of anchors ("v"), incoming tangents ("i"), and outgoing
// tangents ("o"). Tangents are relative to their anchor.
type pathJSON struct {
	Closed   bool        `json:"c"`
	Vertices [][]float64 `json:"v"`
	In       [][]float64 `json:"i"`
	Out      [][]float64 `json:"o"`
}

// MarshalJSON encodes the path in the Lottie shape interchange form.
func (p Path) MarshalJSON() ([]byte, error) {
	enc := pathJSON{
		Closed:   p.closed,
		Vertices: make([][]float64, len(p.elements)),
		In:       make([][]float64, len(p.elements)),
		Out:      make([][]float64, len(p.elements)),
	}
	for i, el := range p.elements {
		v := el.Vertex
		in := v.InTangentRelative()
		out := v.OutTangentRelative()
		enc.Vertices[i] = []float64{v.Point.X, v.Point.Y}
		enc.In[i] = []float64{in.X, in.Y}
		enc.Out[i] = []float64{out.X, out.Y}
	}
	return json.Marshal(enc)
}

// UnmarshalJSON decodes the Lottie shape interchange form. Malformed input,
// including mismatched array lengths and entries that are not coordinate
// pairs, returns an error and leaves the path unchanged.
func (p *Path) UnmarshalJSON(data []byte) error {
	var dec pathJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return fmt.Errorf("bezier: decoding path: %w", err)
	}
	if len(dec.In) != len(dec.Vertices) || len(dec.Out) != len(dec.Vertices) {
		return fmt.Errorf("bezier: decoding path: %d vertices but %d in tangents and %d out tangents",
			len(dec.Vertices), len(dec.In), len(dec.Out))
	}

	elements := make([]PathElement, 0, len(dec.Vertices))
	for i := range dec.Vertices {
		anchor, err := decodePair(dec.Vertices[i], "vertex", i)
		if err != nil {
			return err
		}
		in, err := decodePair(dec.In[i], "in tangent", i)
		if err != nil {
			return err
		}
		out, err := decodePair(dec.Out[i], "out tangent", i)
		if err != nil {
			return err
		}
		v := NewVertexRelative(Point(anchor), in, out)
		if i == 0 {
			elements = append(elements, MoveTo(v))
		} else {
			elements = append(elements, CurveTo(v))
		}
	}

	p.elements = elements
	p.closed = dec.Closed
	p.length.clear()
	return nil
}

func decodePair(pair []float64, what string, idx int) (Vec2, error) {
	if len(pair) != 2 {
		return Vec2{}, fmt.Errorf("bezier: decoding path: %s %d has %d coordinates, want 2", what, idx, len(pair))
	}
	return Vec2{X: pair[0], Y: pair[1]}, nil
}
