package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerlinRange(t *testing.T) {
	p := NewPerlin(2, 2, 3, 1)

	for i := 0; i < 200; i++ {
		for j := 0; j < 50; j++ {
			v := p.Noise2D(float64(i)*0.137, float64(j)*0.291)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(2, 2, 3, 42)
	b := NewPerlin(2, 2, 3, 42)

	for _, pt := range [][2]float64{{0.5, 0.5}, {1.3, 7.9}, {12.05, 3.3}} {
		assert.Equal(t, a.Noise2D(pt[0], pt[1]), b.Noise2D(pt[0], pt[1]))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestPerlinSeedsDiffer(t *testing.T) {
	a := NewPerlin(2, 2, 3, 1)
	b := NewPerlin(2, 2, 3, 2)

	differs := false
	for i := 0; i < 20 && !differs; i++ {
		x := float64(i)*0.31 + 0.17
		differs = a.Noise2D(x, x*0.7) != b.Noise2D(x, x*0.7)
	}
	assert.True(t, differs, "different seeds should produce different fields")
}

func TestPerlinOrigin(t *testing.T) {
	// Lattice points carry zero gradient contribution.
	p := NewPerlin(2, 2, 3, 7)
	assert.InDelta(t, 0.5, p.Noise2D(0, 0), 1e-9)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 1.0, Clamp01(1.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 0.5, Clamp01(math.NaN()))
	assert.Equal(t, 1.0, Clamp01(math.Inf(1)))
	assert.Equal(t, 0.0, Clamp01(math.Inf(-1)))
}

func TestPerlinZeroAlphaStaysInRange(t *testing.T) {
	// A zero amplitude divisor makes later octaves 0/0 at lattice points.
	p := NewPerlin(0, 2, 3, 1)
	for _, pt := range [][2]float64{{0, 0}, {1, 2}, {0.5, 0.25}} {
		v := p.Noise2D(pt[0], pt[1])
		assert.False(t, math.IsNaN(v), "noise(%g, %g)", pt[0], pt[1])
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestRemap(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{0, -200},
		{0.5, 0},
		{1, 200},
		{0.25, -100},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Remap(tt.v, 0, 1, -200, 200), 1e-9, "remap(%g)", tt.v)
	}
}

func TestFunc(t *testing.T) {
	f := Func(func(x, y float64) float64 { return x + y })
	assert.Equal(t, 3.0, f.Noise2D(1, 2))
}
