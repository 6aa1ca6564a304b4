package bezier

// controlPointConstant is the tangent handle length, as a fraction of the
// radius, that makes four cubic segments approximate a circle.
const controlPointConstant = 0.55228

// EllipsePath returns a closed four-vertex cubic approximation of an ellipse,
// traversed clockwise in a y-down space starting from the topmost point.
func EllipsePath(center Point, radius Vec2) Path {
	qx := radius.X * controlPointConstant
	qy := radius.Y * controlPointConstant

	p := NewPath(NewVertexRelative(
		Pt(center.X, center.Y-radius.Y),
		Vec(-qx, 0), Vec(qx, 0),
	))
	p.AddVertex(NewVertexRelative(
		Pt(center.X+radius.X, center.Y),
		Vec(0, -qy), Vec(0, qy),
	))
	p.AddVertex(NewVertexRelative(
		Pt(center.X, center.Y+radius.Y),
		Vec(qx, 0), Vec(-qx, 0),
	))
	p.AddVertex(NewVertexRelative(
		Pt(center.X-radius.X, center.Y),
		Vec(0, qy), Vec(0, -qy),
	))
	p.Close()
	return p
}

// RectanglePath returns a closed rectangle path, traversed clockwise in a
// y-down space. A positive cornerRadius rounds the corners with circular
// arcs; it is clamped to half the shorter side.
func RectanglePath(center Point, size Vec2, cornerRadius float64) Path {
	w := size.X * 0.5
	h := size.Y * 0.5
	x0, y0 := center.X-w, center.Y-h
	x1, y1 := center.X+w, center.Y+h

	r := min(cornerRadius, min(w, h))
	if r <= 0 {
		p := NewPath(Vertex(Pt(x0, y0)))
		p.AddVertex(Vertex(Pt(x1, y0)))
		p.AddVertex(Vertex(Pt(x1, y1)))
		p.AddVertex(Vertex(Pt(x0, y1)))
		p.Close()
		return p
	}

	// Two vertices per corner; the arc between the last vertex and the first
	// is the implicit closing segment.
	cp := r * controlPointConstant
	p := NewPath(NewVertexRelative(Pt(x0+r, y0), Vec(-cp, 0), Vec(0, 0)))
	p.AddVertex(NewVertexRelative(Pt(x1-r, y0), Vec(0, 0), Vec(cp, 0)))
	p.AddVertex(NewVertexRelative(Pt(x1, y0+r), Vec(0, -cp), Vec(0, 0)))
	p.AddVertex(NewVertexRelative(Pt(x1, y1-r), Vec(0, 0), Vec(0, cp)))
	p.AddVertex(NewVertexRelative(Pt(x1-r, y1), Vec(cp, 0), Vec(0, 0)))
	p.AddVertex(NewVertexRelative(Pt(x0+r, y1), Vec(0, 0), Vec(-cp, 0)))
	p.AddVertex(NewVertexRelative(Pt(x0, y1-r), Vec(0, cp), Vec(0, 0)))
	p.AddVertex(NewVertexRelative(Pt(x0, y0+r), Vec(0, 0), Vec(0, -cp)))
	p.Close()
	return p
}
