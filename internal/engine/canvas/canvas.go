// Package canvas defines the immediate-mode drawing primitives a sketch
// emits each frame. Implementations decide how the primitives reach the
// screen or a file.
package canvas

import "image/color"

// ShapeKind selects how vertices between BeginShape and EndShape connect.
type ShapeKind int

const (
	// TriangleStrip forms a triangle from each vertex and the two before it.
	TriangleStrip ShapeKind = iota
)

// String returns the shape name.
func (k ShapeKind) String() string {
	switch k {
	case TriangleStrip:
		return "triangle_strip"
	default:
		return "unknown"
	}
}

// Canvas receives the drawing calls of a single frame.
//
// Transforms accumulate for the duration of a frame; the host resets them
// before each Draw.
type Canvas interface {
	// Background clears the frame to c.
	Background(c color.RGBA)
	// NoFill disables polygon fill so shapes render as outlines.
	NoFill()
	// Stroke sets the outline color.
	Stroke(c color.RGBA)
	// StrokeWeight sets the outline width in pixels.
	StrokeWeight(w float32)
	// Translate shifts subsequent vertices.
	Translate(x, y, z float32)
	// BeginShape starts a primitive of the given kind.
	BeginShape(kind ShapeKind)
	// Vertex appends a vertex to the open primitive.
	Vertex(x, y, z float32)
	// EndShape closes the open primitive.
	EndShape()
}

// Style is the stroke state shared by canvas implementations.
type Style struct {
	Background color.RGBA
	Stroke     color.RGBA
	Weight     float32
	Fill       bool
}

// DefaultStyle mirrors a freshly created canvas: white stroke, width 1, filled.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{A: 255},
		Stroke:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Weight:     1,
		Fill:       true,
	}
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
