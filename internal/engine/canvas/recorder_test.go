package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderAppliesTranslation(t *testing.T) {
	r := NewRecorder()
	r.Translate(-10, -20, 0)
	r.Translate(1, 1, 5)

	r.BeginShape(TriangleStrip)
	r.Vertex(10, 20, 0)
	r.EndShape()

	require.Len(t, r.Shapes, 1)
	assert.Equal(t, Vertex{X: 1, Y: 1, Z: 5}, r.Shapes[0].Vertices[0])
}

func TestRecorderCapturesStyle(t *testing.T) {
	r := NewRecorder()
	r.Background(RGB(0, 0, 0))
	r.NoFill()
	r.Stroke(RGB(81, 52, 72))
	r.StrokeWeight(2)

	r.BeginShape(TriangleStrip)
	r.EndShape()

	require.Len(t, r.Shapes, 1)
	style := r.Shapes[0].Style
	assert.False(t, style.Fill)
	assert.Equal(t, RGB(81, 52, 72), style.Stroke)
	assert.Equal(t, float32(2), style.Weight)
	assert.Equal(t, 1, r.Clears)
}

func TestRecorderBackgroundClearsShapes(t *testing.T) {
	r := NewRecorder()
	r.BeginShape(TriangleStrip)
	r.Vertex(0, 0, 0)
	r.EndShape()

	r.Background(RGB(0, 0, 0))
	assert.Empty(t, r.Shapes)
}

func TestRecorderKeepsPreviousFrame(t *testing.T) {
	r := NewRecorder()
	r.Background(RGB(0, 0, 0))
	r.BeginShape(TriangleStrip)
	r.Vertex(1, 1, 1)
	r.EndShape()
	prev := r.Shapes

	r.Background(RGB(0, 0, 0))
	r.BeginShape(TriangleStrip)
	r.Vertex(9, 9, 9)
	r.EndShape()

	r.Reset()
	r.BeginShape(TriangleStrip)
	r.Vertex(7, 7, 7)
	r.EndShape()

	require.Len(t, prev, 1)
	assert.Equal(t, Vertex{X: 1, Y: 1, Z: 1}, prev[0].Vertices[0])
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	r.Translate(5, 5, 5)
	r.BeginShape(TriangleStrip)
	r.Vertex(0, 0, 0)
	r.EndShape()

	r.Reset()
	assert.Zero(t, r.BeginCalls)
	assert.Zero(t, r.VertexCalls)
	assert.Empty(t, r.Shapes)

	r.BeginShape(TriangleStrip)
	r.Vertex(1, 2, 3)
	r.EndShape()
	assert.Equal(t, Vertex{X: 1, Y: 2, Z: 3}, r.Shapes[0].Vertices[0])
}

func TestStripEdges(t *testing.T) {
	s := Shape{Kind: TriangleStrip, Vertices: []Vertex{{X: 0}, {X: 1}, {X: 2}, {X: 3}}}

	// Two triangles: (0,1,2) and (1,2,3) share edge 1-2.
	edges := s.Edges()
	assert.Len(t, edges, 5)
	assert.Equal(t, [2]Vertex{{X: 0}, {X: 1}}, edges[0])
	assert.Equal(t, [2]Vertex{{X: 0}, {X: 2}}, edges[1])
	assert.Equal(t, [2]Vertex{{X: 2}, {X: 3}}, edges[4])

	assert.Nil(t, Shape{Vertices: []Vertex{{}}}.Edges())
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "triangle_strip", TriangleStrip.String())
	assert.Equal(t, "unknown", ShapeKind(9).String())
}
