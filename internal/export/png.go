package export

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// pngWriter rasterizes edges with gg.
type pngWriter struct {
	ctx *gg.Context
}

func newPNGWriter(width, height int) *pngWriter {
	return &pngWriter{ctx: gg.NewContext(width, height)}
}

func (p *pngWriter) clear(c color.RGBA) {
	p.ctx.SetColor(c)
	p.ctx.Clear()
}

func (p *pngWriter) line(x1, y1, x2, y2 float64, stroke color.RGBA, weight float32) {
	p.ctx.SetColor(stroke)
	p.ctx.SetLineWidth(float64(weight))
	p.ctx.DrawLine(x1, y1, x2, y2)
	p.ctx.Stroke()
}

func (p *pngWriter) encode(w io.Writer) error {
	return p.ctx.EncodePNG(w)
}
