// Package bezier implements the path geometry underlying Lottie-style vector
// animations: cubic Bézier paths built from curve vertices, arc-length
// measurement, length-parametrized trimming, and bounding boxes over
// collections of paths.
//
// # Paths and vertices
//
// A [Path] is an ordered sequence of [PathElement] values plus a closed flag.
// Each element carries a [CurveVertex]: an anchor point together with its
// incoming and outgoing tangent handles, stored as absolute positions. The
// first element of a path marks the start point; every following element
// describes the cubic Bézier segment that ends at its vertex, using the
// previous vertex's outgoing handle and its own incoming handle as the two
// control points. When a path is closed, an implicit segment connects the
// last vertex back to the first; the first vertex is never duplicated.
//
// Paths are plain values. Assigning a Path shares its backing storage, so use
// [Path.Copy] when both copies will be mutated independently.
//
// # Measuring and trimming
//
// [Path.Length] returns the total arc length of the path, computed per
// segment with adaptive Legendre-Gauss quadrature and cached until the next
// mutation. [Path.Trim] extracts sub-paths by length range, treating the path
// as a cyclic length domain: the endpoints are shifted by an offset and
// wrapped modulo the total length, and a range that crosses the start/end
// boundary yields two sub-paths in traversal order. [Path.TrimNormalized]
// accepts the same ranges as fractions of the total length.
//
// # Bounding boxes
//
// [PathsBoundingBox] reduces a collection of paths to the axis-aligned
// rectangle spanning all of their control points. This is a conservative box
// over anchors and tangent handles, not the tight curve envelope.
// [PathsBoundingBoxWith] is an allocation-free variant for hot loops; it
// reuses the coordinate buffers of a caller-owned [PathsBoundingBoxContext].
//
// # Boundaries
//
// Paths marshal to and from the Lottie shape interchange form (closed flag
// plus per-vertex anchor and relative tangent pairs) via encoding/json.
// [Path.Rasterize] replays a path into a [golang.org/x/image/vector]
// rasterizer, and [Path.WriteSVG] emits SVG path commands. [Path.Transform]
// produces a transformed copy under an [Affine] map without mutating the
// original.
package bezier
