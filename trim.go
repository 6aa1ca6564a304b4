package bezier

import (
	"math"
)

// TrimPosition is a sub-range of a path, expressed in absolute arc-length
// units from the path's start.
type TrimPosition struct {
	Start float64
	End   float64
}

// Trim extracts the sub-paths covering the arc-length range [fromLength,
// toLength], shifted by offsetLength. All three arguments are in absolute
// length units.
//
// The path is treated as a cyclic length domain: both endpoints are wrapped
// modulo the total length. A range that crosses the start/end boundary yields
// two sub-paths in traversal order, the tail of the path followed by its
// head. A range covering the full length returns a copy of the path, and a
// degenerate range with fromLength == toLength returns no paths. The results
// are open paths; the receiver is not mutated.
func (p *Path) Trim(fromLength, toLength, offsetLength float64) []Path {
	if fromLength == toLength {
		return nil
	}
	total := p.Length()
	if total == 0 {
		return []Path{p.Copy()}
	}

	start := math.Mod(fromLength+offsetLength, total)
	if start < 0 {
		start += total
	}
	end := math.Mod(toLength+offsetLength, total)
	if end < 0 {
		end += total
	}
	if start == total {
		start = 0
	}
	if end == 0 {
		end = total
	}
	if start == end || (start == 0 && end == total) {
		return []Path{p.Copy()}
	}

	var positions []TrimPosition
	if start > end {
		positions = []TrimPosition{
			{Start: start, End: total},
			{Start: 0, End: end},
		}
	} else {
		positions = []TrimPosition{
			{Start: start, End: end},
		}
	}
	return p.trimAtPositions(positions)
}

// TrimNormalized is like [Path.Trim], with the range and offset given as
// fractions of the total length.
func (p *Path) TrimNormalized(from, to, offset float64) []Path {
	total := p.Length()
	return p.Trim(from*total, to*total, offset*total)
}

// lengthEpsilon absorbs quadrature rounding when comparing accumulated
// segment lengths against trim positions.
const lengthEpsilon = 1e-9

// trimAtPositions extracts one open sub-path per position. Each position must
// lie within [0, Length]. Endpoints landing on a segment boundary, within
// [lengthEpsilon], take the whole neighboring segment; interior endpoints
// split the segment by solving length for the curve parameter.
func (p *Path) trimAtPositions(positions []TrimPosition) []Path {
	paths := make([]Path, 0, len(positions))
	for _, pos := range positions {
		var out Path
		var traversed float64
		for seg := range p.Segments() {
			if pos.End-traversed <= lengthEpsilon {
				break
			}
			segLength := seg.Arclen(DefaultAccuracy)
			segEnd := traversed + segLength
			if segEnd-pos.Start <= lengthEpsilon || segLength == 0 {
				traversed = segEnd
				continue
			}

			t0, t1 := 0.0, 1.0
			if pos.Start-traversed > lengthEpsilon {
				t0 = seg.SolveForArclen(pos.Start-traversed, DefaultAccuracy)
			}
			if segEnd-pos.End > lengthEpsilon {
				t1 = seg.SolveForArclen(pos.End-traversed, DefaultAccuracy)
			}
			piece := seg
			if t0 > 0 || t1 < 1 {
				piece = seg.Subsegment(t0, t1)
			}

			if out.Len() == 0 {
				out.MoveToStartPoint(Vertex(piece.P0))
			}
			out.AddCurve(piece.P3, piece.P1, piece.P2)
			traversed = segEnd
		}
		paths = append(paths, out)
	}
	return paths
}
