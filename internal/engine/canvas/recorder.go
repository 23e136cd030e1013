package canvas

import "image/color"

// Vertex is a recorded vertex with the translation already applied.
type Vertex struct {
	X, Y, Z float32
}

// Shape is one recorded primitive.
type Shape struct {
	Kind     ShapeKind
	Style    Style
	Vertices []Vertex
}

// Recorder is a Canvas that keeps every call in memory. It backs headless
// hosts and tests.
type Recorder struct {
	Style       Style
	Clears      int
	Shapes      []Shape
	BeginCalls  int
	EndCalls    int
	VertexCalls int

	offset [3]float32
	open   *Shape
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Style: DefaultStyle()}
}

// Reset discards recorded shapes and the accumulated translation. Style is
// kept. Slices returned earlier through Shapes stay intact.
func (r *Recorder) Reset() {
	r.Clears = 0
	r.Shapes = nil
	r.BeginCalls = 0
	r.EndCalls = 0
	r.VertexCalls = 0
	r.offset = [3]float32{}
	r.open = nil
}

// Background implements Canvas. It starts a new frame's shape list.
func (r *Recorder) Background(c color.RGBA) {
	r.Style.Background = c
	r.Clears++
	r.Shapes = nil
}

// NoFill implements Canvas.
func (r *Recorder) NoFill() { r.Style.Fill = false }

// Stroke implements Canvas.
func (r *Recorder) Stroke(c color.RGBA) { r.Style.Stroke = c }

// StrokeWeight implements Canvas.
func (r *Recorder) StrokeWeight(w float32) { r.Style.Weight = w }

// Translate implements Canvas.
func (r *Recorder) Translate(x, y, z float32) {
	r.offset[0] += x
	r.offset[1] += y
	r.offset[2] += z
}

// BeginShape implements Canvas. An unterminated shape is discarded.
func (r *Recorder) BeginShape(kind ShapeKind) {
	r.BeginCalls++
	r.open = &Shape{Kind: kind, Style: r.Style}
}

// Vertex implements Canvas. Vertices outside BeginShape/EndShape are dropped.
func (r *Recorder) Vertex(x, y, z float32) {
	r.VertexCalls++
	if r.open == nil {
		return
	}
	r.open.Vertices = append(r.open.Vertices, Vertex{
		X: x + r.offset[0],
		Y: y + r.offset[1],
		Z: z + r.offset[2],
	})
}

// EndShape implements Canvas.
func (r *Recorder) EndShape() {
	r.EndCalls++
	if r.open == nil {
		return
	}
	r.Shapes = append(r.Shapes, *r.open)
	r.open = nil
}

// Edges returns the wireframe segments of a triangle strip: every vertex is
// joined to the one and the two after it.
func (s Shape) Edges() [][2]Vertex {
	n := len(s.Vertices)
	if n < 2 {
		return nil
	}
	edges := make([][2]Vertex, 0, 2*n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]Vertex{s.Vertices[i], s.Vertices[i+1]})
		if i+2 < n {
			edges = append(edges, [2]Vertex{s.Vertices[i], s.Vertices[i+2]})
		}
	}
	return edges
}
