package game

import (
	"math"
	"sync"
)

// lerp blends a toward b by t
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CursorTransform is the placement of the cursor icon for one frame
type CursorTransform struct {
	X, Y        float64 // icon center
	Scale       float64
	RotationDeg float64
}

// Radians returns the rotation in radians
func (t CursorTransform) Radians() float64 {
	return t.RotationDeg * math.Pi / 180
}

// CursorState tracks the pointer target and the smoothed position that follows it.
// Input handlers write target and pressed; only Tick writes current.
type CursorState struct {
	mu sync.Mutex

	targetX, targetY   float64
	currentX, currentY float64
	pressed            bool

	smoothing       float64
	pressedScale    float64
	pressedRotation float64

	onPress func(x, y float64)
}

// NewCursorState creates a cursor resting at the origin.
// onPress, if non-nil, runs on every pointer-down at the current target.
func NewCursorState(cfg CursorConfig, onPress func(x, y float64)) *CursorState {
	return &CursorState{
		smoothing:       cfg.Smoothing,
		pressedScale:    cfg.PressedScale,
		pressedRotation: cfg.PressedRotation,
		onPress:         onPress,
	}
}

// OnPointerMove records a new target. No smoothing happens here.
func (c *CursorState) OnPointerMove(x, y float64) {
	c.mu.Lock()
	c.targetX, c.targetY = x, y
	c.mu.Unlock()
}

// OnPointerDown marks the cursor pressed and fires the press hook
func (c *CursorState) OnPointerDown() {
	c.mu.Lock()
	c.pressed = true
	x, y := c.targetX, c.targetY
	c.mu.Unlock()

	if c.onPress != nil {
		c.onPress(x, y)
	}
}

// OnPointerUp releases the pressed state
func (c *CursorState) OnPointerUp() {
	c.mu.Lock()
	c.pressed = false
	c.mu.Unlock()
}

// Tick moves current toward target by the smoothing factor
func (c *CursorState) Tick() {
	c.mu.Lock()
	c.currentX = lerp(c.currentX, c.targetX, c.smoothing)
	c.currentY = lerp(c.currentY, c.targetY, c.smoothing)
	c.mu.Unlock()
}

// Target returns the last pointer position
func (c *CursorState) Target() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetX, c.targetY
}

// Current returns the smoothed position
func (c *CursorState) Current() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentX, c.currentY
}

// Pressed reports whether the pointer button is held
func (c *CursorState) Pressed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pressed
}

// Transform returns the icon placement. Pressed is a binary switch with no easing.
func (c *CursorState) Transform() CursorTransform {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := CursorTransform{X: c.currentX, Y: c.currentY, Scale: 1}
	if c.pressed {
		t.Scale = c.pressedScale
		t.RotationDeg = c.pressedRotation
	}
	return t
}
