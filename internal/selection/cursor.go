// Package selection provides the rank cursor shared by the library and queue lists.
//
// A Cursor points at a rank of the current filtered order, never at a storage
// index. When the order is rebuilt, Relocate moves the cursor back onto the
// entry the user was looking at, identified by a stable key.
package selection

// Cursor manages the selected rank and scroll offset of a list.
// The list length and viewport height are passed to methods rather than stored,
// since they change whenever the list is re-filtered.
type Cursor struct {
	pos    int  // selected rank (meaningless when empty)
	offset int  // first visible rank
	margin int  // ranks to keep visible above/below the cursor
	empty  bool // no selection: the list has no rows
}

// New creates a Cursor with the given scroll margin and no selection.
func New(margin int) Cursor {
	return Cursor{margin: margin, empty: true}
}

// Selected returns the selected rank, or false when there is no selection.
func (c Cursor) Selected() (int, bool) {
	if c.empty {
		return 0, false
	}
	return c.pos, true
}

// Pos returns the selected rank, or -1 when there is no selection.
func (c Cursor) Pos() int {
	if c.empty {
		return -1
	}
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Margin returns the current scroll margin.
func (c Cursor) Margin() int {
	return c.margin
}

// SetMargin updates the scroll margin.
func (c *Cursor) SetMargin(margin int) {
	c.margin = margin
}

// Move moves the cursor by delta ranks within a list of length n.
func (c *Cursor) Move(delta, n, height int) {
	if n == 0 {
		c.clear()
		return
	}
	if c.empty {
		c.empty = false
		c.pos = 0
		if delta > 0 {
			delta--
		}
	}
	c.pos = clamp(c.pos+delta, n-1)
	c.ensureVisible(n, height)
}

// Jump sets the cursor to an absolute rank within a list of length n.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		c.clear()
		return
	}
	c.empty = false
	c.pos = clamp(pos, n-1)
	c.ensureVisible(n, height)
}

// JumpStart moves the cursor to the first rank.
func (c *Cursor) JumpStart(n int) {
	if n == 0 {
		c.clear()
		return
	}
	c.empty = false
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves the cursor to the last rank.
func (c *Cursor) JumpEnd(n, height int) {
	if n == 0 {
		c.clear()
		return
	}
	c.empty = false
	c.pos = n - 1
	c.ensureVisible(n, height)
}

// EnsureVisible adjusts the scroll offset to keep the cursor visible.
// The render layer calls it once it knows the viewport height.
func (c *Cursor) EnsureVisible(n, height int) {
	c.ensureVisible(n, height)
}

func (c *Cursor) ensureVisible(n, height int) {
	if height <= 0 || n == 0 || c.empty {
		return
	}

	// Never let the margins overlap on tiny viewports.
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}

	maxOffset := max(n-height, 0)
	c.offset = clamp(c.offset, maxOffset)
}

// ClampToBounds keeps the cursor inside a list of length n.
// Returns true if the cursor changed.
func (c *Cursor) ClampToBounds(n int) bool {
	if n == 0 {
		changed := !c.empty
		c.clear()
		return changed
	}
	old, wasEmpty := c.pos, c.empty
	c.empty = false
	if wasEmpty {
		c.pos = 0
	}
	c.pos = clamp(c.pos, n-1)
	c.offset = clamp(c.offset, n-1)
	return wasEmpty || c.pos != old
}

// Relocate repositions the cursor after the list under it was rebuilt.
//
// prev is the key of the entry selected before the rebuild (ok is false when
// nothing was selected). If an entry with that key is still among the n ranks,
// the cursor follows it; otherwise it clamps to the old rank.
func (c *Cursor) Relocate(prev string, ok bool, n int, keyAt func(rank int) string) {
	if n == 0 {
		c.clear()
		return
	}
	if ok {
		for rank := range n {
			if keyAt(rank) == prev {
				c.empty = false
				c.pos = rank
				c.offset = clamp(c.offset, n-1)
				return
			}
		}
	}
	c.ClampToBounds(n)
}

// VisibleRange returns the ranks [start, end) visible in a viewport of height rows.
func (c Cursor) VisibleRange(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, n-1)
	end = min(start+height, n)
	return start, end
}

// Reset moves the cursor back to the first rank.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
	c.empty = false
}

// SetPos sets the rank directly without bounds checking.
// Used when restoring saved state; prefer Jump otherwise.
func (c *Cursor) SetPos(pos int) {
	c.pos = pos
	c.empty = false
}

func (c *Cursor) clear() {
	c.pos = 0
	c.offset = 0
	c.empty = true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
