package export

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/wireterrain/internal/engine/canvas"
)

// segmentWriter receives projected wireframe edges in pixel coordinates.
type segmentWriter interface {
	clear(c color.RGBA)
	line(x1, y1, x2, y2 float64, stroke color.RGBA, weight float32)
}

// lineCanvas is a canvas.Canvas that flattens triangle strips into 2D
// edges through a view-projection and forwards them to a segmentWriter.
type lineCanvas struct {
	rec      *canvas.Recorder
	viewProj mgl32.Mat4
	width    float64
	height   float64
	out      segmentWriter
	edges    int
	culled   int
}

func newLineCanvas(viewProj mgl32.Mat4, width, height int, out segmentWriter) *lineCanvas {
	return &lineCanvas{
		rec:      canvas.NewRecorder(),
		viewProj: viewProj,
		width:    float64(width),
		height:   float64(height),
		out:      out,
	}
}

// project maps a world point to pixel coordinates with y growing downward.
// ok is false for points in front of the near plane, the eye plane
// included.
func (l *lineCanvas) project(v canvas.Vertex) (x, y float64, ok bool) {
	clip := l.viewProj.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})
	if clip.W() <= 0 || clip.Z() < -clip.W() {
		return 0, 0, false
	}
	ndcX := float64(clip.X() / clip.W())
	ndcY := float64(clip.Y() / clip.W())
	return (ndcX + 1) / 2 * l.width, (1 - ndcY) / 2 * l.height, true
}

func (l *lineCanvas) Background(c color.RGBA) {
	l.rec.Background(c)
	l.out.clear(c)
}

func (l *lineCanvas) NoFill()                   { l.rec.NoFill() }
func (l *lineCanvas) Stroke(c color.RGBA)       { l.rec.Stroke(c) }
func (l *lineCanvas) StrokeWeight(w float32)    { l.rec.StrokeWeight(w) }
func (l *lineCanvas) Translate(x, y, z float32) { l.rec.Translate(x, y, z) }
func (l *lineCanvas) Vertex(x, y, z float32)    { l.rec.Vertex(x, y, z) }

func (l *lineCanvas) BeginShape(kind canvas.ShapeKind) {
	l.rec.BeginShape(kind)
}

// EndShape flushes the finished strip's edges.
func (l *lineCanvas) EndShape() {
	l.rec.EndShape()
	if len(l.rec.Shapes) == 0 {
		return
	}
	shape := l.rec.Shapes[len(l.rec.Shapes)-1]
	for _, e := range shape.Edges() {
		x1, y1, ok1 := l.project(e[0])
		x2, y2, ok2 := l.project(e[1])
		if !ok1 || !ok2 {
			l.culled++
			continue
		}
		l.out.line(x1, y1, x2, y2, shape.Style.Stroke, shape.Style.Weight)
		l.edges++
	}
	// Edges are written out; keep memory flat across strips.
	l.rec.Shapes = l.rec.Shapes[:0]
}
