package bezier

// PathsBoundingBox returns the axis-aligned rectangle spanning every control
// point (anchor and both tangent handles) of every element of the given
// paths.
//
// The box is conservative: tangent handles may lie outside the drawn curve,
// so the result can be larger than the tight curve envelope. An empty
// collection, or one whose paths have no elements, yields the zero Rect.
func PathsBoundingBox(paths []Path) Rect {
	var bbox Rect
	first := true
	for i := range paths {
		for _, el := range paths[i].elements {
			v := el.Vertex
			for _, pt := range [3]Point{v.Point, v.InTangent, v.OutTangent} {
				if first {
					bbox = NewRectFromPoints(pt, pt)
					first = false
				} else {
					bbox = bbox.UnionPoint(pt)
				}
			}
		}
	}
	return bbox
}

// PathsBoundingBoxContext holds scratch buffers for [PathsBoundingBoxWith].
// The buffers grow to the largest collection seen and are kept for reuse;
// the zero value is ready for use.
//
// A context is owned by a single goroutine at a time.
type PathsBoundingBoxContext struct {
	pointsX []float64
	pointsY []float64
}

func (ctx *PathsBoundingBoxContext) resize(n int) {
	if cap(ctx.pointsX) < n {
		ctx.pointsX = make([]float64, n)
		ctx.pointsY = make([]float64, n)
	}
	ctx.pointsX = ctx.pointsX[:n]
	ctx.pointsY = ctx.pointsY[:n]
}

// PathsBoundingBoxWith is [PathsBoundingBox] using the context's scratch
// buffers instead of walking the element structures during reduction. It
// allocates only when the collection outgrows the buffers, and produces
// bit-identical results to [PathsBoundingBox] for the same input.
func PathsBoundingBoxWith(ctx *PathsBoundingBoxContext, paths []Path) Rect {
	n := 0
	for i := range paths {
		n += 3 * len(paths[i].elements)
	}
	if n == 0 {
		return Rect{}
	}
	ctx.resize(n)

	idx := 0
	for i := range paths {
		for _, el := range paths[i].elements {
			v := el.Vertex
			for _, pt := range [3]Point{v.Point, v.InTangent, v.OutTangent} {
				ctx.pointsX[idx] = pt.X
				ctx.pointsY[idx] = pt.Y
				idx++
			}
		}
	}

	bbox := Rect{
		X0: ctx.pointsX[0],
		Y0: ctx.pointsY[0],
		X1: ctx.pointsX[0],
		Y1: ctx.pointsY[0],
	}
	for i := 1; i < n; i++ {
		bbox.X0 = min(bbox.X0, ctx.pointsX[i])
		bbox.Y0 = min(bbox.Y0, ctx.pointsY[i])
		bbox.X1 = max(bbox.X1, ctx.pointsX[i])
		bbox.Y1 = max(bbox.Y1, ctx.pointsY[i])
	}
	return bbox
}
