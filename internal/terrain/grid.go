// Package terrain holds the height grid and turns it into a wireframe mesh.
package terrain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Grid is a fixed-size 2D array of elevations indexed by column and row.
// Its dimensions never change after NewGrid.
type Grid struct {
	cols, rows int
	heights    []float64 // column-major: heights[x*rows+y]
}

// NewGrid allocates a grid covering worldWidth x worldHeight with one sample
// every cellSize units. Partial cells are dropped. Every height starts at 0.
func NewGrid(worldWidth, worldHeight, cellSize float64) (*Grid, error) {
	if !(cellSize > 0) {
		return nil, fmt.Errorf("cell size must be positive, got %g", cellSize)
	}
	cols := int(math.Floor(worldWidth / cellSize))
	rows := int(math.Floor(worldHeight / cellSize))
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("world %gx%g holds no %g-unit cells", worldWidth, worldHeight, cellSize)
	}
	return &Grid{
		cols:    cols,
		rows:    rows,
		heights: make([]float64, cols*rows),
	}, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// At returns the height at column x, row y.
func (g *Grid) At(x, y int) float64 {
	return g.heights[x*g.rows+y]
}

// Set stores the height at column x, row y.
func (g *Grid) Set(x, y int, h float64) {
	g.heights[x*g.rows+y] = h
}

// Stats summarizes the current heights.
type Stats struct {
	Min, Max, Mean float64
}

// Stats returns the minimum, maximum and mean height.
func (g *Grid) Stats() Stats {
	return Stats{
		Min:  floats.Min(g.heights),
		Max:  floats.Max(g.heights),
		Mean: stat.Mean(g.heights, nil),
	}
}
