package bezier

import (
	"testing"
)

func TestRectAbs(t *testing.T) {
	r := Rect{10, 20, 0, 0}
	diff(t, Rect{0, 0, 10, 20}, r.Abs())
	diff(t, 10.0, r.Abs().Width())
	diff(t, 20.0, r.Abs().Height())
}

func TestRectUnionPoint(t *testing.T) {
	pts := []Point{Pt(3, 4), Pt(-1, 7), Pt(5, -2), Pt(0, 0)}
	bbox := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	diff(t, Rect{-1, -2, 5, 7}, bbox)
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 2, 2}
	b := Rect{1, 1, 5, 3}
	diff(t, Rect{0, 0, 5, 3}, a.Union(b))
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if !r.Contains(Pt(5, 5)) {
		t.Error("expected rect to contain center")
	}
	if r.Contains(Pt(10, 10)) {
		t.Error("expected max corner to be excluded")
	}
	if r.Contains(Pt(-1, 5)) {
		t.Error("expected outside point to be excluded")
	}
}

func TestRectArea(t *testing.T) {
	diff(t, 100.0, Rect{0, 0, 10, 10}.Area())
	diff(t, Pt(5, 5), Rect{0, 0, 10, 10}.Center())
}
