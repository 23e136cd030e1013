package export

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// svgWriter emits one <line> per edge. Coordinates are rounded to whole
// pixels since svgo only takes ints.
type svgWriter struct {
	width, height int
	background    color.RGBA
	body          bytes.Buffer
	canvas        *svg.SVG
}

func newSVGWriter(width, height int) *svgWriter {
	s := &svgWriter{width: width, height: height}
	s.canvas = svg.New(&s.body)
	return s
}

func (s *svgWriter) clear(c color.RGBA) {
	s.background = c
	s.body.Reset()
}

func (s *svgWriter) line(x1, y1, x2, y2 float64, stroke color.RGBA, weight float32) {
	s.canvas.Line(
		round(x1), round(y1), round(x2), round(y2),
		fmt.Sprintf("stroke:%s;stroke-width:%g", rgb(stroke), weight),
	)
}

func (s *svgWriter) encode(w io.Writer) error {
	doc := svg.New(w)
	doc.Start(s.width, s.height)
	doc.Rect(0, 0, s.width, s.height, "fill:"+rgb(s.background))
	doc.Gstyle("fill:none;stroke-linecap:round")
	if _, err := s.body.WriteTo(w); err != nil {
		return err
	}
	doc.Gend()
	doc.End()
	return nil
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func round(v float64) int {
	return int(math.Round(v))
}
