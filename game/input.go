package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerHandler receives mouse-style pointer events
type PointerHandler interface {
	OnPointerMove(x, y float64)
	OnPointerDown()
	OnPointerUp()
}

// PointerInput turns polled ebiten mouse state into pointer events.
// Any mouse button counts as a press, like DOM mousedown/mouseup.
type PointerInput struct {
	lastX, lastY int
	seen         bool

	cursorPosition func() (int, int)
	justPressed    func(ebiten.MouseButton) bool
	justReleased   func(ebiten.MouseButton) bool
}

// NewPointerInput creates a pointer poller backed by ebiten
func NewPointerInput() *PointerInput {
	return &PointerInput{
		cursorPosition: ebiten.CursorPosition,
		justPressed:    inpututil.IsMouseButtonJustPressed,
		justReleased:   inpututil.IsMouseButtonJustReleased,
	}
}

// Poll reads the mouse and forwards changes to h
func (p *PointerInput) Poll(h PointerHandler) {
	x, y := p.cursorPosition()
	if !p.seen || x != p.lastX || y != p.lastY {
		p.lastX, p.lastY = x, y
		p.seen = true
		h.OnPointerMove(float64(x), float64(y))
	}

	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if p.justPressed(b) {
			h.OnPointerDown()
		}
		if p.justReleased(b) {
			h.OnPointerUp()
		}
	}
}
