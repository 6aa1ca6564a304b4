package bezier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathMarshalJSON(t *testing.T) {
	p := NewPath(Vertex(Pt(0, 0)))
	p.AddCurve(Pt(10, 0), Pt(3, 3), Pt(7, 3))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"c": false,
		"v": [[0,0], [10,0]],
		"i": [[0,0], [-3,3]],
		"o": [[3,3], [0,0]]
	}`, string(data))
}

func TestPathJSONRoundTrip(t *testing.T) {
	paths := []Path{
		square(Pt(0, 0), 25),
		rightAngle(),
		EllipsePath(Pt(3, -4), Vec(10, 5)),
		NewPath(Vertex(Pt(1, 2))),
	}
	for _, p := range paths {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var got Path
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, p.Elements(), got.Elements())
		assert.Equal(t, p.Closed(), got.Closed())
	}
}

func TestPathUnmarshalJSON(t *testing.T) {
	input := `{
		"c": true,
		"v": [[100,100], [200,100], [200,200]],
		"i": [[0,0], [-25,0], [0,-25]],
		"o": [[25,0], [0,25], [0,0]]
	}`
	var p Path
	require.NoError(t, json.Unmarshal([]byte(input), &p))

	assert.True(t, p.Closed())
	require.Equal(t, 3, p.Len())
	els := p.Elements()
	assert.Equal(t, MoveToKind, els[0].Kind)
	assert.Equal(t, CurveToKind, els[1].Kind)
	assert.Equal(t, NewVertexRelative(Pt(200, 100), Vec(-25, 0), Vec(0, 25)), els[1].Vertex)
}

func TestPathUnmarshalJSONInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"not an object", `[1, 2, 3]`},
		{"wrong vertex type", `{"c":false,"v":5,"i":[],"o":[]}`},
		{"missing in tangents", `{"c":false,"v":[[0,0]],"i":[],"o":[[0,0]]}`},
		{"missing out tangents", `{"c":false,"v":[[0,0]],"i":[[0,0]],"o":[]}`},
		{"triple coordinate", `{"c":false,"v":[[0,0,0]],"i":[[0,0]],"o":[[0,0]]}`},
		{"lone coordinate", `{"c":false,"v":[[0,0]],"i":[[1]],"o":[[0,0]]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := rightAngle()
			want := p.Copy()
			err := json.Unmarshal([]byte(c.input), &p)
			require.Error(t, err)
			// Failed decodes leave the path as it was.
			assert.Equal(t, want.Elements(), p.Elements())
		})
	}
}

func TestPathUnmarshalJSONClearsLength(t *testing.T) {
	p := rightAngle()
	require.InDelta(t, 20, p.Length(), 1e-9)

	data, err := json.Marshal(square(Pt(0, 0), 25))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &p))
	assert.InDelta(t, 100, p.Length(), 1e-9)
}
