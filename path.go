package bezier

import (
	"fmt"
	"iter"
	"slices"
)

// Path is a cubic Bézier path built from curve vertices.
//
// The first element marks the start vertex; every following element draws a
// cubic segment from the previous vertex to its own. When the path is closed,
// an implicit segment connects the last vertex back to the first.
//
// The zero value is an empty, open path ready for use. Paths share their
// backing storage on assignment; use [Path.Copy] for an independent copy.
type Path struct {
	elements []PathElement
	closed   bool
	length   option[float64]
}

// NewPath returns an open path with a single start vertex.
func NewPath(start CurveVertex) Path {
	return Path{
		elements: []PathElement{MoveTo(start)},
	}
}

// MoveToStartPoint resets the path to a single start vertex, discarding all
// existing elements.
func (p *Path) MoveToStartPoint(v CurveVertex) {
	p.elements = append(p.elements[:0], MoveTo(v))
	p.length.clear()
}

// AddVertex appends a segment ending at v. The segment's control points are
// the previous vertex's outgoing handle and v's incoming handle.
func (p *Path) AddVertex(v CurveVertex) {
	if len(p.elements) == 0 {
		p.elements = append(p.elements, MoveTo(v))
	} else {
		p.elements = append(p.elements, CurveTo(v))
	}
	p.length.clear()
}

// AddCurve appends a cubic segment to the point to, with outTangent the
// absolute position of the previous vertex's outgoing handle and inTangent
// the absolute position of the new vertex's incoming handle.
//
// The new vertex's own outgoing handle coincides with its anchor until a
// later append rewrites it. Calling AddCurve on an empty path does nothing.
func (p *Path) AddCurve(to, outTangent, inTangent Point) {
	if len(p.elements) == 0 {
		return
	}
	prev := &p.elements[len(p.elements)-1]
	prev.Vertex.OutTangent = outTangent
	p.elements = append(p.elements, CurveTo(NewVertex(to, inTangent, to)))
	p.length.clear()
}

// AddLine appends a straight segment to the point to. This is a cubic whose
// tangent handles coincide with its endpoints. Calling AddLine on an empty
// path does nothing.
func (p *Path) AddLine(to Point) {
	if len(p.elements) == 0 {
		return
	}
	prev := &p.elements[len(p.elements)-1]
	prev.Vertex.OutTangent = prev.Vertex.Point
	p.elements = append(p.elements, CurveTo(Vertex(to)))
	p.length.clear()
}

// AddElement appends el as-is, without adjusting neighboring tangents.
func (p *Path) AddElement(el PathElement) {
	p.elements = append(p.elements, el)
	p.length.clear()
}

// Close marks the path as closed, adding the implicit segment from the last
// vertex back to the first. The first vertex is not duplicated. Closing an
// already-closed path is a no-op.
func (p *Path) Close() {
	p.SetClosed(true)
}

// Closed reports whether the path is closed.
func (p *Path) Closed() bool {
	return p.closed
}

// SetClosed sets the closed flag.
func (p *Path) SetClosed(closed bool) {
	if p.closed == closed {
		return
	}
	p.closed = closed
	p.length.clear()
}

// UpdateVertex replaces the vertex at index at in place. It panics if the
// index is out of range.
//
// If remeasure is true, the cached length is invalidated immediately.
// Callers that re-pose many vertices per frame may pass false for all but
// the last update, or follow the batch with [Path.InvalidateLength].
func (p *Path) UpdateVertex(v CurveVertex, at int, remeasure bool) {
	if at < 0 || at >= len(p.elements) {
		panic(fmt.Sprintf("bezier: vertex index %d out of range [0, %d)", at, len(p.elements)))
	}
	p.elements[at].Vertex = v
	if remeasure {
		p.length.clear()
	}
}

// ReserveCapacity grows the element storage to hold at least n elements
// without further allocation.
func (p *Path) ReserveCapacity(n int) {
	if n > len(p.elements) {
		p.elements = slices.Grow(p.elements, n-len(p.elements))
	}
}

// SetElementCount truncates or pads the element sequence to exactly n
// elements. Shrinking keeps the backing storage for later reuse.
func (p *Path) SetElementCount(n int) {
	if n <= len(p.elements) {
		p.elements = p.elements[:n]
	} else {
		p.elements = append(p.elements, make([]PathElement, n-len(p.elements))...)
	}
	p.length.clear()
}

// InvalidateLength drops the cached length. The next call to [Path.Length]
// will remeasure the path.
func (p *Path) InvalidateLength() {
	p.length.clear()
}

// Elements returns the path's elements. The slice shares storage with the
// path; it must not be mutated while the path is in use.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Copy returns a deep copy of the path. The copy and the original can be
// mutated independently.
func (p *Path) Copy() Path {
	return Path{
		elements: slices.Clone(p.elements),
		closed:   p.closed,
		length:   p.length,
	}
}

// Segments returns an iterator over the path's cubic segments, in traversal
// order. For a closed path the final segment is the implicit one connecting
// the last vertex back to the first. A path with fewer than two vertices has
// no segments.
func (p *Path) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		els := p.elements
		for i := 1; i < len(els); i++ {
			prev := els[i-1].Vertex
			cur := els[i].Vertex
			if !yield(CubicBez{prev.Point, prev.OutTangent, cur.InTangent, cur.Point}) {
				return
			}
		}
		if p.closed && len(els) >= 2 {
			last := els[len(els)-1].Vertex
			first := els[0].Vertex
			yield(CubicBez{last.Point, last.OutTangent, first.InTangent, first.Point})
		}
	}
}

// Length returns the total arc length of the path, including the implicit
// closing segment when the path is closed. The result is cached until the
// next mutation.
func (p *Path) Length() float64 {
	if p.length.isSet {
		return p.length.value
	}
	var total float64
	for seg := range p.Segments() {
		total += seg.Arclen(DefaultAccuracy)
	}
	p.length.set(total)
	return total
}

// Transform returns a transformed deep copy of the path. The original is not
// mutated.
func (p *Path) Transform(aff Affine) Path {
	out := Path{
		elements: make([]PathElement, len(p.elements)),
		closed:   p.closed,
	}
	for i, el := range p.elements {
		out.elements[i] = el.Transform(aff)
	}
	return out
}

// Translated returns a copy of the path moved by o.
func (p *Path) Translated(o Vec2) Path {
	return p.Transform(Translate(o))
}
