// Package camera provides the orbit camera used to view the terrain.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/wireterrain/internal/config"
)

// FieldOfView is the vertical field of view, 60 degrees.
const FieldOfView = gomath.Pi / 3

const (
	// nearFloor bounds the near plane below as a fraction of the eye
	// distance once the eye is inside the scene sphere.
	nearFloor = 0.01
	// clipSlack widens the scene sphere so points on its surface stay
	// strictly between the planes.
	clipSlack = 1.01
)

// OrbitCamera orbits the world origin. With zero yaw and pitch it sits on
// the +Z axis at the distance where the viewport height spans exactly the
// field of view, so one world unit at z=0 covers one pixel.
type OrbitCamera struct {
	// Spherical coordinates
	Yaw   float32 // horizontal angle, radians
	Pitch float32 // vertical angle, radians

	// Zoom multiplies the fitted distance.
	Zoom float32

	// SceneRadius bounds everything drawn around the origin; near and far
	// planes follow it. Zero uses the fitted distance.
	SceneRadius float32
	// MinDistance keeps the eye at least this far from the origin,
	// tightening MinZoom when needed.
	MinDistance float32

	// Constraints
	MinZoom, MaxZoom   float32
	MinPitch, MaxPitch float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// InitialPitch is restored by Reset.
	InitialPitch float32

	width, height int
	baseDistance  float32
}

// NewOrbitCamera creates a camera fitted to a width x height viewport.
func NewOrbitCamera(width, height int) *OrbitCamera {
	c := &OrbitCamera{
		Zoom:            1,
		MinZoom:         0.1,
		MaxZoom:         10,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	c.Fit(width, height)
	return c
}

// Fit recomputes the base distance and aspect for a new viewport.
// Orientation and zoom are kept.
func (c *OrbitCamera) Fit(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = width
	c.height = height
	c.baseDistance = float32(float64(height) / 2 / gomath.Tan(FieldOfView/2))
	c.Zoom = c.clampZoom(c.Zoom)
}

// Reset restores the initial orientation and zoom.
func (c *OrbitCamera) Reset() {
	c.Yaw = 0
	c.Pitch = c.clampPitch(c.InitialPitch)
	c.Zoom = c.clampZoom(1)
}

// Distance returns the current eye distance from the origin.
func (c *OrbitCamera) Distance() float32 {
	return c.baseDistance * c.Zoom
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	d := float64(c.Distance())
	pitch := float64(c.Pitch)
	yaw := float64(c.Yaw)
	return mgl32.Vec3{
		float32(d * gomath.Cos(pitch) * gomath.Sin(yaw)),
		float32(d * gomath.Sin(pitch)),
		float32(d * gomath.Cos(pitch) * gomath.Cos(yaw)),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// ClipPlanes returns the near and far distances for the current zoom.
// They enclose the scene sphere, with the near plane floored at a small
// fraction of the eye distance when the eye is inside it.
func (c *OrbitCamera) ClipPlanes() (near, far float32) {
	d := c.Distance()
	r := c.SceneRadius
	if r <= 0 {
		r = c.baseDistance
	}
	r *= clipSlack
	near = d - r
	if floor := d * nearFloor; near < floor {
		near = floor
	}
	return near, d + r
}

// ProjectionMatrix returns a perspective projection with world +Y pointing
// down the screen.
func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.width) / float32(c.height)
	near, far := c.ClipPlanes()
	proj := mgl32.Perspective(FieldOfView, aspect, near, far)
	return mgl32.Scale3D(1, -1, 1).Mul4(proj)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Viewport returns the fitted viewport size.
func (c *OrbitCamera) Viewport() (int, int) {
	return c.width, c.height
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = c.clampPitch(c.Pitch + deltaY*c.DragSensitivity)
}

// HandleZoom updates the zoom factor based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Zoom = c.clampZoom(c.Zoom - delta*c.Zoom*c.ZoomSensitivity)
}

// ZoomLimits returns the effective zoom range, with MinDistance applied.
func (c *OrbitCamera) ZoomLimits() (lo, hi float32) {
	lo, hi = c.MinZoom, c.MaxZoom
	if c.MinDistance > 0 && c.baseDistance > 0 {
		if z := c.MinDistance / c.baseDistance; z > lo {
			lo = z
		}
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

func (c *OrbitCamera) clampZoom(z float32) float32 {
	lo, hi := c.ZoomLimits()
	if z < lo {
		return lo
	}
	if z > hi {
		return hi
	}
	return z
}

func (c *OrbitCamera) clampPitch(p float32) float32 {
	if p < c.MinPitch {
		return c.MinPitch
	}
	if p > c.MaxPitch {
		return c.MaxPitch
	}
	return p
}

// TerrainBounds returns the radius of the sphere around the origin that
// holds the centered terrain, and the largest height magnitude.
func TerrainBounds(t config.TerrainConfig) (radius, reach float32) {
	h := gomath.Max(gomath.Abs(t.HeightMin), gomath.Abs(t.HeightMax))
	r := gomath.Sqrt(t.WorldWidth*t.WorldWidth/4 + t.WorldHeight*t.WorldHeight/4 + h*h)
	return float32(r), float32(h)
}

// FromConfig builds a camera fitted to width x height from the camera and
// terrain config sections. Zero sensitivities keep the defaults. The clip
// planes enclose the terrain and the eye stays clear of its height band.
func FromConfig(cfg *config.Config, width, height int) *OrbitCamera {
	cam := NewOrbitCamera(width, height)
	cam.InitialPitch = cfg.Camera.Pitch
	if cfg.Camera.DragSensitivity > 0 {
		cam.DragSensitivity = cfg.Camera.DragSensitivity
	}
	if cfg.Camera.ZoomSensitivity > 0 {
		cam.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	}
	radius, reach := TerrainBounds(cfg.Terrain)
	cam.SceneRadius = radius
	cam.MinDistance = 2 * reach
	cam.Reset()
	return cam
}
