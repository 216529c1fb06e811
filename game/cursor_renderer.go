package game

// CursorRenderer draws the wand at the smoothed cursor position along with click sparkles
type CursorRenderer struct {
	state    *CursorState
	icon     *WandIcon
	sparkles *SparkleLayer
}

// NewCursorRenderer wires a cursor state to its icon and sparkle layer
func NewCursorRenderer(state *CursorState, icon *WandIcon, sparkles *SparkleLayer) *CursorRenderer {
	return &CursorRenderer{
		state:    state,
		icon:     icon,
		sparkles: sparkles,
	}
}

// Tick advances the smoothing filter
func (r *CursorRenderer) Tick() {
	r.state.Tick()
}

// Render clears the cursor layer, then draws sparkles beneath the icon
func (r *CursorRenderer) Render(s Surface) {
	s.Clear()
	if r.sparkles != nil {
		r.sparkles.Draw(s)
	}
	if r.icon != nil {
		s.DrawIcon(float64(r.icon.Size()), r.icon.Parts(), r.state.Transform())
	}
}

// Close releases pending sparkle timers
func (r *CursorRenderer) Close() error {
	if r.sparkles == nil {
		return nil
	}
	return r.sparkles.Close()
}
