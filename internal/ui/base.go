package ui

// Base carries the size of a pane. Embed it in pane models.
type Base struct {
	width, height int
}

// SetSize sets the outer dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the outer width.
func (b Base) Width() int {
	return b.width
}

// Height returns the outer height.
func (b Base) Height() int {
	return b.height
}

// InnerWidth returns the width inside a panel border.
func (b Base) InnerWidth() int {
	return max(b.width-BorderHeight, 0)
}

// ListHeight returns the rows left for list items inside a panel.
func (b Base) ListHeight() int {
	return max(b.height-PanelOverhead, 0)
}
