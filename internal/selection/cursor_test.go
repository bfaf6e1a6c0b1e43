package selection

import "testing"

func TestCursor_Move(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		n          int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"move down within bounds", 2, 0, 3, 10, 5, 3, 1},
		{"move up within bounds", 2, 5, -2, 10, 5, 3, 1},
		{"move down clamps to end", 2, 5, 15, 10, 5, 9, 5},
		{"move up clamps to start", 2, 3, -10, 10, 5, 0, 0},
		{"move triggers scroll down", 2, 0, 5, 20, 5, 5, 3},
		{"no margin", 0, 0, 4, 10, 5, 4, 0},
		{"list shorter than viewport", 2, 0, 3, 4, 10, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.SetPos(tt.initial)
			c.Move(tt.delta, tt.n, tt.height)

			if got := c.Pos(); got != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", got, tt.wantPos)
			}
			if got := c.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

func TestCursor_EmptyList(t *testing.T) {
	c := New(2)
	c.Move(1, 0, 5)
	if _, ok := c.Selected(); ok {
		t.Fatal("expected no selection on empty list")
	}
	if c.Pos() != -1 {
		t.Errorf("Pos() = %d, want -1", c.Pos())
	}

	c.Move(1, 3, 5)
	pos, ok := c.Selected()
	if !ok || pos != 0 {
		t.Errorf("first move from no selection = (%d, %v), want (0, true)", pos, ok)
	}
}

func TestCursor_JumpEnd(t *testing.T) {
	c := New(2)
	c.JumpEnd(20, 5)
	if c.Pos() != 19 {
		t.Errorf("Pos() = %d, want 19", c.Pos())
	}
	if c.Offset() != 15 {
		t.Errorf("Offset() = %d, want 15", c.Offset())
	}

	c.JumpStart(20)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("after JumpStart pos=%d offset=%d, want 0 0", c.Pos(), c.Offset())
	}
}

func TestCursor_ClampToBounds(t *testing.T) {
	c := New(0)
	c.SetPos(8)
	if !c.ClampToBounds(5) {
		t.Error("expected change when shrinking below cursor")
	}
	if c.Pos() != 4 {
		t.Errorf("Pos() = %d, want 4", c.Pos())
	}
	if c.ClampToBounds(5) {
		t.Error("expected no change when already in bounds")
	}
	if !c.ClampToBounds(0) {
		t.Error("expected change when list empties")
	}
	if _, ok := c.Selected(); ok {
		t.Error("expected no selection after emptying")
	}
}

func TestCursor_Relocate(t *testing.T) {
	keys := func(ks ...string) func(int) string {
		return func(rank int) string { return ks[rank] }
	}

	tests := []struct {
		name    string
		initial int
		empty   bool
		prev    string
		hadPrev bool
		after   []string
		wantPos int
		wantSel bool
	}{
		{"follows key to new rank", 1, false, "b", true, []string{"c", "a", "b"}, 2, true},
		{"key gone keeps rank", 1, false, "b", true, []string{"a", "c", "d"}, 1, true},
		{"key gone clamps on shrink", 4, false, "e", true, []string{"a", "b"}, 1, true},
		{"empty result clears", 1, false, "b", true, nil, -1, false},
		{"none to first", 0, true, "", false, []string{"a", "b"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			if tt.empty {
				c.ClampToBounds(0)
			} else {
				c.SetPos(tt.initial)
			}

			c.Relocate(tt.prev, tt.hadPrev, len(tt.after), keys(tt.after...))

			if got := c.Pos(); got != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", got, tt.wantPos)
			}
			if _, ok := c.Selected(); ok != tt.wantSel {
				t.Errorf("Selected() ok = %v, want %v", ok, tt.wantSel)
			}
		})
	}
}

func TestCursor_VisibleRange(t *testing.T) {
	c := New(0)
	c.Jump(12, 20, 5)
	start, end := c.VisibleRange(20, 5)
	if start != 8 || end != 13 {
		t.Errorf("VisibleRange = [%d, %d), want [8, 13)", start, end)
	}

	start, end = c.VisibleRange(0, 5)
	if start != 0 || end != 0 {
		t.Errorf("VisibleRange on empty = [%d, %d), want [0, 0)", start, end)
	}
}
