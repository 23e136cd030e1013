package terrain

import (
	"image/color"
	"time"

	"github.com/Faultbox/wireterrain/internal/engine/canvas"
	"github.com/Faultbox/wireterrain/internal/noise"
)

// Params describes the world the grid covers and how noise maps onto it.
type Params struct {
	WorldWidth  float64
	WorldHeight float64
	CellSize    float64
	NoiseStep   float64 // noise-space distance between adjacent samples
	TimeScaleMS float64 // elapsed milliseconds per unit of noise offset
	HeightMin   float64
	HeightMax   float64
}

// DefaultParams returns a 3000x2000 world sampled every 30 units with heights
// in [-200, 200].
func DefaultParams() Params {
	return Params{
		WorldWidth:  3000,
		WorldHeight: 2000,
		CellSize:    30,
		NoiseStep:   0.1,
		TimeScaleMS: 10000,
		HeightMin:   -200,
		HeightMax:   200,
	}
}

// Style is the wireframe appearance.
type Style struct {
	Background   color.RGBA
	Stroke       color.RGBA
	StrokeWeight float32
}

// DefaultStyle returns a dark mauve stroke of width 2 on black.
func DefaultStyle() Style {
	return Style{
		Background:   canvas.RGB(0, 0, 0),
		Stroke:       canvas.RGB(81, 52, 72),
		StrokeWeight: 2,
	}
}

// Renderer owns a height grid, refills it from noise and emits it as
// triangle strips.
type Renderer struct {
	params Params
	style  Style
	noise  noise.Source
	grid   *Grid
}

// NewRenderer allocates the grid for params.
func NewRenderer(params Params, style Style, src noise.Source) (*Renderer, error) {
	grid, err := NewGrid(params.WorldWidth, params.WorldHeight, params.CellSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		params: params,
		style:  style,
		noise:  src,
		grid:   grid,
	}, nil
}

// Grid returns the height grid. Callers must treat it as read-only.
func (r *Renderer) Grid() *Grid { return r.grid }

// Params returns the parameters the renderer was built with.
func (r *Renderer) Params() Params { return r.params }

// Update recomputes every height for the given time since start. Column
// offsets grow by NoiseStep per column and restart at every row; the time
// term shifts the whole field along x so the terrain scrolls.
func (r *Renderer) Update(elapsed time.Duration) {
	p := r.params
	base := float64(elapsed) / float64(time.Millisecond) / p.TimeScaleMS

	yoff := 0.0
	for y := 0; y < r.grid.rows; y++ {
		xoff := 0.0
		for x := 0; x < r.grid.cols; x++ {
			n := noise.Clamp01(r.noise.Noise2D(base+xoff, yoff))
			r.grid.Set(x, y, noise.Remap(n, 0, 1, p.HeightMin, p.HeightMax))
			xoff += p.NoiseStep
		}
		yoff += p.NoiseStep
	}
}

// Render clears the frame, centers the world on the origin and emits one
// triangle strip per pair of adjacent rows.
func (r *Renderer) Render(c canvas.Canvas) {
	c.Background(r.style.Background)
	c.NoFill()
	c.StrokeWeight(r.style.StrokeWeight)
	c.Stroke(r.style.Stroke)

	c.Translate(float32(-r.params.WorldWidth/2), float32(-r.params.WorldHeight/2), 0)

	cell := r.params.CellSize
	for y := 0; y < r.grid.rows-1; y++ {
		y0 := float32(float64(y) * cell)
		y1 := float32(float64(y+1) * cell)

		c.BeginShape(canvas.TriangleStrip)
		for x := 0; x < r.grid.cols; x++ {
			px := float32(float64(x) * cell)
			c.Vertex(px, y0, float32(r.grid.At(x, y)))
			c.Vertex(px, y1, float32(r.grid.At(x, y+1)))
		}
		c.EndShape()
	}
}
