package ui

// Base provides size management for screen models.
// Embed this in a model to get standard methods automatically.
type Base struct {
	width, height int
}

// SetSize sets the screen dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the screen dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the screen width.
func (b Base) Width() int {
	return b.width
}

// Height returns the screen height.
func (b Base) Height() int {
	return b.height
}

// PanelWidth returns the width available inside the player panel.
func (b Base) PanelWidth() int {
	w := b.width
	if w <= 0 {
		w = DefaultWidth
	}
	return min(max(w-PanelOverhead, MinPanelWidth), MaxPanelWidth)
}
