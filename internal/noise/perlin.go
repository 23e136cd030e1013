// Package noise provides the coherent-noise service the terrain samples.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Source is a deterministic 2D coherent-noise function.
// Noise2D must return a value in [0, 1] for every finite input.
type Source interface {
	Noise2D(x, y float64) float64
}

// Perlin is a Source backed by classic Perlin noise.
type Perlin struct {
	gen  *perlin.Perlin
	seed int64
}

// NewPerlin creates a Perlin source. alpha is the per-octave amplitude
// divisor, beta the per-octave frequency multiplier, octaves the number of
// summed layers.
func NewPerlin(alpha, beta float64, octaves int32, seed int64) *Perlin {
	return &Perlin{
		gen:  perlin.NewPerlin(alpha, beta, octaves, seed),
		seed: seed,
	}
}

// Noise2D returns the noise value at (x, y) mapped from [-1, 1] to [0, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	return Clamp01((p.gen.Noise2D(x, y) + 1) / 2)
}

// Seed returns the seed the generator was built with.
func (p *Perlin) Seed() int64 {
	return p.seed
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.5, the field's mean.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0.5
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Remap linearly maps v from [inMin, inMax] to [outMin, outMax].
// Values outside the input range extrapolate.
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Func adapts a plain function to Source.
type Func func(x, y float64) float64

// Noise2D calls f(x, y).
func (f Func) Noise2D(x, y float64) float64 {
	return f(x, y)
}
