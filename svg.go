package bezier

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Path.SVG] and [Path.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p *Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts the path to SVG path commands and writes them to w. The
// output is a single M command followed by one C command per segment,
// terminated by Z when the path is closed.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func (p *Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	if len(p.elements) == 0 {
		return nil
	}

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}

	start := p.elements[0].Vertex.Point
	writef("M%s,%s", format(start.X), format(start.Y))
	for seg := range p.Segments() {
		writef(" C%s,%s %s,%s %s,%s",
			format(seg.P1.X), format(seg.P1.Y),
			format(seg.P2.X), format(seg.P2.Y),
			format(seg.P3.X), format(seg.P3.Y))
	}
	if p.closed {
		writef(" Z")
	}
	return err
}
