package bezier

import (
	"image"
	"testing"

	"golang.org/x/image/vector"
)

func TestPathRasterize(t *testing.T) {
	p := square(Pt(8, 8), 16)

	r := vector.NewRasterizer(32, 32)
	p.Rasterize(r)

	dst := image.NewAlpha(image.Rect(0, 0, 32, 32))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	if a := dst.AlphaAt(16, 16).A; a != 0xff {
		t.Errorf("got alpha %d inside the square, want 255", a)
	}
	if a := dst.AlphaAt(2, 2).A; a != 0 {
		t.Errorf("got alpha %d outside the square, want 0", a)
	}
}

func TestPathRasterizeCircle(t *testing.T) {
	p := EllipsePath(Pt(16, 16), Vec(10, 10))

	r := vector.NewRasterizer(32, 32)
	p.Rasterize(r)

	dst := image.NewAlpha(image.Rect(0, 0, 32, 32))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	if a := dst.AlphaAt(16, 16).A; a != 0xff {
		t.Errorf("got alpha %d at the center, want 255", a)
	}
	// Corners are outside the inscribed circle.
	if a := dst.AlphaAt(1, 1).A; a != 0 {
		t.Errorf("got alpha %d at the corner, want 0", a)
	}
}

func TestPathRasterizeEmpty(t *testing.T) {
	var p Path
	r := vector.NewRasterizer(8, 8)
	p.Rasterize(r)

	dst := image.NewAlpha(image.Rect(0, 0, 8, 8))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	for i, a := range dst.Pix {
		if a != 0 {
			t.Fatalf("pixel %d has alpha %d, want a fully transparent image", i, a)
		}
	}
}
