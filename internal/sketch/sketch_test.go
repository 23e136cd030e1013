package sketch

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/wireterrain/internal/config"
	"github.com/Faultbox/wireterrain/internal/engine/canvas"
)

func TestSetupAllocatesDefaultGrid(t *testing.T) {
	s := New(config.Default())
	require.NoError(t, s.Setup(Viewport{Width: 1280, Height: 720}))

	g, err := s.Grid()
	require.NoError(t, err)
	assert.Equal(t, 100, g.Cols())
	assert.Equal(t, 66, g.Rows())
	assert.Zero(t, g.At(50, 30))
}

func TestSetupRejectsBadParams(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.CellSize = 0

	s := New(cfg)
	assert.Error(t, s.Setup(Viewport{Width: 800, Height: 600}))
}

func TestDrawBeforeSetup(t *testing.T) {
	s := New(config.Default())
	c := canvas.NewRecorder()

	s.Draw(Frame{Elapsed: time.Second}, c)
	assert.Zero(t, c.Clears)

	_, err := s.Grid()
	assert.ErrorIs(t, err, ErrNotSetUp)
	_, err = s.Stats()
	assert.ErrorIs(t, err, ErrNotSetUp)
}

func TestDrawEmitsMesh(t *testing.T) {
	s := New(config.Default())
	require.NoError(t, s.Setup(Viewport{Width: 1280, Height: 720}))

	c := canvas.NewRecorder()
	s.Draw(Frame{Elapsed: 500 * time.Millisecond, Viewport: Viewport{Width: 1280, Height: 720}}, c)

	assert.Equal(t, 65, c.BeginCalls)
	assert.Equal(t, 65, c.EndCalls)
	assert.Equal(t, 2*100*65, c.VertexCalls)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Min, -200.0)
	assert.LessOrEqual(t, stats.Max, 200.0)
}

func TestResizeKeepsGrid(t *testing.T) {
	s := New(config.Default())
	require.NoError(t, s.Setup(Viewport{Width: 1280, Height: 720}))
	s.Draw(Frame{Elapsed: 2 * time.Second}, canvas.NewRecorder())

	before, err := s.Grid()
	require.NoError(t, err)
	h := before.At(10, 10)

	s.Resized(Viewport{Width: 640, Height: 480})

	after, err := s.Grid()
	require.NoError(t, err)
	assert.Same(t, before, after)
	assert.Equal(t, 100, after.Cols())
	assert.Equal(t, 66, after.Rows())
	assert.Equal(t, h, after.At(10, 10))
	assert.Equal(t, Viewport{Width: 640, Height: 480}, s.Viewport())
}

func TestStyleFromConfig(t *testing.T) {
	style := StyleFromConfig(config.Default().Style)
	assert.Equal(t, canvas.RGB(81, 52, 72), style.Stroke)
	assert.Equal(t, canvas.RGB(0, 0, 0), style.Background)
	assert.Equal(t, float32(2), style.StrokeWeight)
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.CellSize = 15

	p := ParamsFromConfig(cfg.Terrain)
	assert.Equal(t, 15.0, p.CellSize)
	assert.Equal(t, 3000.0, p.WorldWidth)
	assert.Equal(t, 0.1, p.NoiseStep)
}

func TestDrawZeroAlphaKeepsHeightsFinite(t *testing.T) {
	cfg := config.Default()
	cfg.Noise.Alpha = 0
	require.Error(t, cfg.Validate())

	// Hosts that skip validation still get heights inside the range.
	s := New(cfg)
	require.NoError(t, s.Setup(Viewport{Width: 800, Height: 600}))
	s.Draw(Frame{Elapsed: 0}, canvas.NewRecorder())

	g, err := s.Grid()
	require.NoError(t, err)
	for x := 0; x < g.Cols(); x++ {
		for y := 0; y < g.Rows(); y++ {
			h := g.At(x, y)
			require.False(t, math.IsNaN(h), "NaN at (%d,%d)", x, y)
			require.GreaterOrEqual(t, h, -200.0)
			require.LessOrEqual(t, h, 200.0)
		}
	}
}
