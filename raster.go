package bezier

import (
	"golang.org/x/image/vector"
)

// Rasterize replays the path into dst as move, cubic, and close commands.
// The caller is responsible for sizing the rasterizer and for the eventual
// draw call. An empty path adds nothing.
func (p *Path) Rasterize(dst *vector.Rasterizer) {
	if len(p.elements) == 0 {
		return
	}
	start := p.elements[0].Vertex.Point
	dst.MoveTo(float32(start.X), float32(start.Y))
	for seg := range p.Segments() {
		dst.CubeTo(
			float32(seg.P1.X), float32(seg.P1.Y),
			float32(seg.P2.X), float32(seg.P2.Y),
			float32(seg.P3.X), float32(seg.P3.Y),
		)
	}
	if p.closed {
		dst.ClosePath()
	}
}
