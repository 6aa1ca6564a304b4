package bezier

import (
	"fmt"
)

// CurveVertex is a point on a path together with its incoming and outgoing
// tangent handles. Both handles are stored as absolute positions, not as
// offsets from the anchor.
type CurveVertex struct {
	Point      Point
	InTangent  Point
	OutTangent Point
}

// Vertex returns a vertex whose tangent handles coincide with the anchor.
// Segments entering and leaving such a vertex are straight lines.
func Vertex(point Point) CurveVertex {
	return CurveVertex{
		Point:      point,
		InTangent:  point,
		OutTangent: point,
	}
}

// NewVertex returns a vertex with absolute tangent handle positions.
func NewVertex(point, inTangent, outTangent Point) CurveVertex {
	return CurveVertex{
		Point:      point,
		InTangent:  inTangent,
		OutTangent: outTangent,
	}
}

// NewVertexRelative returns a vertex whose tangent handles are given as
// offsets from the anchor, the convention used by the Lottie interchange
// format.
func NewVertexRelative(point Point, inTangent, outTangent Vec2) CurveVertex {
	return CurveVertex{
		Point:      point,
		InTangent:  point.Translate(inTangent),
		OutTangent: point.Translate(outTangent),
	}
}

func (v CurveVertex) String() string {
	return fmt.Sprintf("%v in:%v out:%v", v.Point, v.InTangent, v.OutTangent)
}

// InTangentRelative returns the incoming handle as an offset from the anchor.
func (v CurveVertex) InTangentRelative() Vec2 {
	return v.InTangent.Sub(v.Point)
}

// OutTangentRelative returns the outgoing handle as an offset from the anchor.
func (v CurveVertex) OutTangentRelative() Vec2 {
	return v.OutTangent.Sub(v.Point)
}

// Translated returns the vertex moved by o.
func (v CurveVertex) Translated(o Vec2) CurveVertex {
	return CurveVertex{
		Point:      v.Point.Translate(o),
		InTangent:  v.InTangent.Translate(o),
		OutTangent: v.OutTangent.Translate(o),
	}
}

// Transform returns the vertex with all three control points transformed.
func (v CurveVertex) Transform(aff Affine) CurveVertex {
	return CurveVertex{
		Point:      v.Point.Transform(aff),
		InTangent:  v.InTangent.Transform(aff),
		OutTangent: v.OutTangent.Transform(aff),
	}
}

// Reversed returns the vertex with its tangent handles swapped, for use when
// traversing a path in the opposite direction.
func (v CurveVertex) Reversed() CurveVertex {
	return CurveVertex{
		Point:      v.Point,
		InTangent:  v.OutTangent,
		OutTangent: v.InTangent,
	}
}

func (v CurveVertex) IsInf() bool {
	return v.Point.IsInf() || v.InTangent.IsInf() || v.OutTangent.IsInf()
}

func (v CurveVertex) IsNaN() bool {
	return v.Point.IsNaN() || v.InTangent.IsNaN() || v.OutTangent.IsNaN()
}

type PathElementKind int

const (
	// MoveToKind marks the start vertex of a path.
	MoveToKind PathElementKind = iota + 1
	// CurveToKind describes the cubic Bézier segment ending at the element's
	// vertex. The segment's control points are the previous vertex's outgoing
	// handle and this vertex's incoming handle.
	CurveToKind
)

func (kind PathElementKind) String() string {
	switch kind {
	case MoveToKind:
		return "MoveTo"
	case CurveToKind:
		return "CurveTo"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(kind))
	}
}

// PathElement is a single entry of a path: a kind plus the vertex it places.
type PathElement struct {
	Kind   PathElementKind
	Vertex CurveVertex
}

// MoveTo returns an element marking v as the start vertex of a path.
func MoveTo(v CurveVertex) PathElement {
	return PathElement{Kind: MoveToKind, Vertex: v}
}

// CurveTo returns an element drawing a cubic Bézier segment from the previous
// vertex to v.
func CurveTo(v CurveVertex) PathElement {
	return PathElement{Kind: CurveToKind, Vertex: v}
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%v)", el.Kind, el.Vertex)
}

// Transform returns the element with its vertex transformed.
func (el PathElement) Transform(aff Affine) PathElement {
	return PathElement{
		Kind:   el.Kind,
		Vertex: el.Vertex.Transform(aff),
	}
}
