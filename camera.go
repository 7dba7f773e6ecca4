package adventure

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MinZoom is the smallest zoom factor a Camera accepts.
const MinZoom = 1e-6

// scrollAnim holds active scroll-to tweens for the camera's X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the viewer of the scene. Position.X pans laterally and
// Position.Y is the camera's depth plane: entities with a world Y at or
// behind it are not drawn.
type Camera struct {
	Position Point
	// Height is the reference eye height; taller cameras make entities look smaller.
	Height float64
	// Zoom scales the projected scene (1.0 = no zoom). Use SetZoom to keep it positive.
	Zoom float64
	// Rotation turns the pan direction, in radians.
	Rotation float64

	HorizonSpeed        float64
	RenderDistanceScale float64

	// MoveSpeed is the pan speed in world units per second.
	MoveSpeed float64
	// ZoomRate is the exponential zoom rate per second while a zoom key is held.
	ZoomRate float64
	// RotateSpeed is radians per second while a rotate key is held.
	RotateSpeed float64
	// SpeedRate is the exponential rate at which MoveSpeed changes per second.
	SpeedRate float64

	// Viewport is the screen-space rectangle the scene projects into.
	Viewport Rect
	// Projection holds the tunable projection constants.
	Projection ProjectionConfig

	// BoundsEnabled clamps Position to Bounds after every update.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to.
	Bounds Rect

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with default values and the given viewport.
// Every camera owns its own state; nothing is shared between instances.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Position:            Point{0, -10},
		Height:              1,
		Zoom:                1,
		HorizonSpeed:        1,
		RenderDistanceScale: 1,
		MoveSpeed:           12,
		ZoomRate:            1.5,
		RotateSpeed:         1,
		SpeedRate:           math.Log(1.1) * DefaultFPS,
		Viewport:            viewport,
		Projection:          DefaultProjectionConfig(),
	}
}

// Move shifts the camera by (dx, dy) world units.
func (c *Camera) Move(dx, dy float64) {
	c.Position.X += dx
	c.Position.Y += dy
}

// SetPosition places the camera at (x, y).
func (c *Camera) SetPosition(x, y float64) {
	c.Position = Point{x, y}
}

// SetZoom sets the zoom, clamped to at least MinZoom.
func (c *Camera) SetZoom(zoom float64) {
	if !(zoom >= MinZoom) {
		zoom = MinZoom
	}
	c.Zoom = zoom
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Position.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Position.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update integrates held input over dt seconds: pan, zoom, rotation and
// speed changes are velocity based, never snapped. An active ScrollTo
// overrides panning.
func (c *Camera) Update(in *Input, dt float64) {
	if dt < 0 || !isFinite(dt) {
		dt = 0
	}
	if in != nil {
		panX := in.axis(KeyRight, KeyLeft)
		panY := in.axis(KeyUp, KeyDown)
		if panX != 0 || panY != 0 {
			sin, cos := math.Sincos(c.Rotation)
			wx := panX*cos - panY*sin
			wy := panX*sin + panY*cos
			speed := c.MoveSpeed * dt / math.Max(c.Zoom, MinZoom)
			c.Move(wx*speed, wy*speed)
		}

		if dir := in.axis(KeyZoomIn, KeyZoomOut); dir != 0 {
			c.SetZoom(c.Zoom * math.Exp(dir*c.ZoomRate*dt))
		}

		if dir := in.axis(KeyRotateCC, KeyRotateCW); dir != 0 {
			c.Rotation += dir * c.RotateSpeed * dt
		}

		if dir := in.axis(KeyFaster, KeySlower); dir != 0 {
			c.MoveSpeed *= math.Exp(dir * c.SpeedRate * dt)
		}
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			c.Position.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			c.Position.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts the camera position to Bounds.
func (c *Camera) clampToBounds() {
	c.Position.X = math.Max(c.Bounds.X, math.Min(c.Position.X, c.Bounds.X+c.Bounds.Width))
	c.Position.Y = math.Max(c.Bounds.Y, math.Min(c.Position.Y, c.Bounds.Y+c.Bounds.Height))
}
