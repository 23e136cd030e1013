// Package sketch implements the host callbacks that drive the terrain:
// Setup once, Draw every frame, Resized when the viewport changes.
package sketch

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wireterrain/internal/config"
	"github.com/Faultbox/wireterrain/internal/engine/canvas"
	"github.com/Faultbox/wireterrain/internal/logger"
	"github.com/Faultbox/wireterrain/internal/noise"
	"github.com/Faultbox/wireterrain/internal/terrain"
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height int
}

// Frame is everything a Draw call may depend on.
type Frame struct {
	Elapsed  time.Duration // time since the host started the clock
	Viewport Viewport
}

// ErrNotSetUp is returned when Draw-dependent state is read before Setup.
var ErrNotSetUp = errors.New("sketch: Setup has not been called")

// Terrain is the scrolling wireframe terrain sketch.
type Terrain struct {
	params   terrain.Params
	style    terrain.Style
	noise    noise.Source
	renderer *terrain.Renderer
	viewport Viewport
	log      *zap.Logger
}

// New builds the sketch from configuration. Nothing is allocated until Setup.
func New(cfg *config.Config) *Terrain {
	return NewWithSource(
		ParamsFromConfig(cfg.Terrain),
		StyleFromConfig(cfg.Style),
		noise.NewPerlin(cfg.Noise.Alpha, cfg.Noise.Beta, cfg.Noise.Octaves, cfg.Noise.Seed),
	)
}

// NewWithSource builds the sketch around an explicit noise source.
func NewWithSource(params terrain.Params, style terrain.Style, src noise.Source) *Terrain {
	return &Terrain{
		params: params,
		style:  style,
		noise:  src,
		log:    logger.Named("sketch"),
	}
}

// ParamsFromConfig converts the terrain config section.
func ParamsFromConfig(c config.TerrainConfig) terrain.Params {
	return terrain.Params{
		WorldWidth:  c.WorldWidth,
		WorldHeight: c.WorldHeight,
		CellSize:    c.CellSize,
		NoiseStep:   c.NoiseStep,
		TimeScaleMS: c.TimeScaleMS,
		HeightMin:   c.HeightMin,
		HeightMax:   c.HeightMax,
	}
}

// StyleFromConfig converts the style config section.
func StyleFromConfig(c config.StyleConfig) terrain.Style {
	return terrain.Style{
		Background:   canvas.RGB(c.Background.R, c.Background.G, c.Background.B),
		Stroke:       canvas.RGB(c.Stroke.R, c.Stroke.G, c.Stroke.B),
		StrokeWeight: c.StrokeWeight,
	}
}

// Setup allocates the height grid. Calling it again reallocates.
func (s *Terrain) Setup(vp Viewport) error {
	r, err := terrain.NewRenderer(s.params, s.style, s.noise)
	if err != nil {
		return err
	}
	s.renderer = r
	s.viewport = vp

	s.log.Info("terrain grid allocated",
		zap.Int("cols", r.Grid().Cols()),
		zap.Int("rows", r.Grid().Rows()),
		zap.Float64("cell", s.params.CellSize),
		zap.Int("viewport_w", vp.Width),
		zap.Int("viewport_h", vp.Height),
	)
	return nil
}

// Draw refreshes the heights for f.Elapsed and emits the mesh into c.
// It is a no-op before Setup.
func (s *Terrain) Draw(f Frame, c canvas.Canvas) {
	if s.renderer == nil {
		return
	}
	s.renderer.Update(f.Elapsed)
	s.renderer.Render(c)
}

// Resized records the new viewport. The grid is left as it is.
func (s *Terrain) Resized(vp Viewport) {
	s.viewport = vp
	s.log.Debug("viewport resized", zap.Int("width", vp.Width), zap.Int("height", vp.Height))
}

// Viewport returns the last viewport passed to Setup or Resized.
func (s *Terrain) Viewport() Viewport { return s.viewport }

// Grid returns the height grid.
func (s *Terrain) Grid() (*terrain.Grid, error) {
	if s.renderer == nil {
		return nil, ErrNotSetUp
	}
	return s.renderer.Grid(), nil
}

// Stats summarizes the current heights.
func (s *Terrain) Stats() (terrain.Stats, error) {
	g, err := s.Grid()
	if err != nil {
		return terrain.Stats{}, err
	}
	return g.Stats(), nil
}
