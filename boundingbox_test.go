package bezier

import (
	"testing"
)

func TestPathsBoundingBox(t *testing.T) {
	p := rightAngle()
	diff(t, Rect{0, 0, 10, 10}, PathsBoundingBox([]Path{p}))
}

func TestPathsBoundingBoxTangents(t *testing.T) {
	// Tangent handles count as control points even when they stick out
	// beyond the anchors.
	p := NewPath(Vertex(Pt(0, 0)))
	p.AddCurve(Pt(10, 0), Pt(5, -8), Pt(5, 8))
	diff(t, Rect{0, -8, 10, 8}, PathsBoundingBox([]Path{p}))
}

func TestPathsBoundingBoxMultiple(t *testing.T) {
	a := square(Pt(0, 0), 10)
	b := square(Pt(20, 30), 5)
	diff(t, Rect{0, 0, 25, 35}, PathsBoundingBox([]Path{a, b}))
}

func TestPathsBoundingBoxEmpty(t *testing.T) {
	diff(t, Rect{}, PathsBoundingBox(nil))
	diff(t, Rect{}, PathsBoundingBox([]Path{{}, {}}))
}

func TestPathsBoundingBoxWith(t *testing.T) {
	var ctx PathsBoundingBoxContext

	// Run the context through collections of varying size. Every result must
	// be bit-identical to the plain version, including after the buffers have
	// grown past what a later, smaller collection needs.
	collections := [][]Path{
		{rightAngle()},
		{square(Pt(0, 0), 10), square(Pt(20, 30), 5), EllipsePath(Pt(-3, -3), Vec(7, 2))},
		{NewPath(Vertex(Pt(1.5, -2.25)))},
		nil,
		{square(Pt(-100, -100), 0.125)},
	}
	for i, paths := range collections {
		want := PathsBoundingBox(paths)
		got := PathsBoundingBoxWith(&ctx, paths)
		if got != want {
			t.Errorf("collection %d: got %v, want %v", i, got, want)
		}
	}
}
