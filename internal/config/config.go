// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all settings for the terrain viewer and the snapshot tool.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Noise    NoiseConfig    `yaml:"noise"`
	Style    StyleConfig    `yaml:"style"`
	Camera   CameraConfig   `yaml:"camera"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// TerrainConfig describes the height grid and how noise maps onto it.
type TerrainConfig struct {
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`
	CellSize    float64 `yaml:"cell_size"`
	NoiseStep   float64 `yaml:"noise_step"`    // noise-space distance between adjacent samples
	TimeScaleMS float64 `yaml:"time_scale_ms"` // elapsed milliseconds per unit of noise offset
	HeightMin   float64 `yaml:"height_min"`
	HeightMax   float64 `yaml:"height_max"`
}

// NoiseConfig holds Perlin generator settings.
type NoiseConfig struct {
	Seed    int64   `yaml:"seed"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
}

// Color is an 8-bit RGB color.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// StyleConfig holds wireframe drawing style.
type StyleConfig struct {
	Background   Color   `yaml:"background"`
	Stroke       Color   `yaml:"stroke"`
	StrokeWeight float32 `yaml:"stroke_weight"`
}

// CameraConfig holds camera control settings.
type CameraConfig struct {
	Pitch           float32 `yaml:"pitch"` // initial tilt in radians, 0 looks straight down the z axis
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// SnapshotConfig holds headless export settings.
type SnapshotConfig struct {
	OutputDir string        `yaml:"output_dir"`
	Format    string        `yaml:"format"` // png or svg
	Elapsed   time.Duration `yaml:"elapsed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Terrain: TerrainConfig{
			WorldWidth:  3000,
			WorldHeight: 2000,
			CellSize:    30,
			NoiseStep:   0.1,
			TimeScaleMS: 10000,
			HeightMin:   -200,
			HeightMax:   200,
		},
		Noise: NoiseConfig{
			Seed:    1,
			Alpha:   2,
			Beta:    2,
			Octaves: 3,
		},
		Style: StyleConfig{
			Background:   Color{0, 0, 0},
			Stroke:       Color{81, 52, 72},
			StrokeWeight: 2,
		},
		Camera: CameraConfig{
			Pitch:           0,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Snapshot: SnapshotConfig{
			OutputDir: "snapshots",
			Format:    "png",
			Elapsed:   0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would otherwise produce an empty or broken grid.
func (c *Config) Validate() error {
	var errs []error

	t := c.Terrain
	if t.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("terrain.cell_size must be positive, got %g", t.CellSize))
	} else {
		if t.WorldWidth < t.CellSize {
			errs = append(errs, fmt.Errorf("terrain.world_width %g is smaller than one cell", t.WorldWidth))
		}
		if t.WorldHeight < t.CellSize {
			errs = append(errs, fmt.Errorf("terrain.world_height %g is smaller than one cell", t.WorldHeight))
		}
	}
	if t.TimeScaleMS <= 0 {
		errs = append(errs, fmt.Errorf("terrain.time_scale_ms must be positive, got %g", t.TimeScaleMS))
	}
	if t.HeightMin > t.HeightMax {
		errs = append(errs, fmt.Errorf("terrain.height_min %g exceeds height_max %g", t.HeightMin, t.HeightMax))
	}
	if !(c.Noise.Alpha > 0) {
		errs = append(errs, fmt.Errorf("noise.alpha must be positive, got %g", c.Noise.Alpha))
	}
	if !(c.Noise.Beta > 0) {
		errs = append(errs, fmt.Errorf("noise.beta must be positive, got %g", c.Noise.Beta))
	}
	if c.Noise.Octaves < 1 {
		errs = append(errs, fmt.Errorf("noise.octaves must be at least 1, got %d", c.Noise.Octaves))
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d is not drawable", c.Graphics.Width, c.Graphics.Height))
	}
	switch c.Snapshot.Format {
	case "png", "svg":
	default:
		errs = append(errs, fmt.Errorf("snapshot.format %q is not png or svg", c.Snapshot.Format))
	}

	return errors.Join(errs...)
}
