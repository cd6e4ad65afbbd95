package ui

const (
	// CellWidth is the number of terminal columns one grid cell takes.
	CellWidth = 3

	gridLeft   = 1 // first column inside the frame
	gridTop    = 3 // first row inside the frame
	footerRows = 1
)

// Layout maps grid cells to screen positions. Grids larger than the
// terminal are shown through a scrolling viewport.
type Layout struct {
	ScreenWidth, ScreenHeight int
	GridWidth, GridLength     int

	// OffsetX is the first visible column, OffsetY the first visible row
	// counted from the top of the scene.
	OffsetX, OffsetY int
}

// VisibleCols returns how many grid columns fit on screen.
func (l Layout) VisibleCols() int {
	return clamp((l.ScreenWidth-gridLeft-1)/CellWidth, 0, l.GridWidth)
}

// VisibleRows returns how many grid rows fit on screen.
func (l Layout) VisibleRows() int {
	return clamp(l.ScreenHeight-gridTop-1-footerRows, 0, l.GridLength)
}

// CellAt returns the grid cell under a screen position.
func (l Layout) CellAt(sx, sy int) (x, y int, ok bool) {
	if sx < gridLeft || sy < gridTop {
		return 0, 0, false
	}
	col := (sx - gridLeft) / CellWidth
	row := sy - gridTop
	if col >= l.VisibleCols() || row >= l.VisibleRows() {
		return 0, 0, false
	}
	x = l.OffsetX + col
	y = l.GridLength - 1 - (l.OffsetY + row)
	return x, y, true
}

// ScreenPos returns the screen position of a cell's center glyph.
func (l Layout) ScreenPos(x, y int) (sx, sy int, ok bool) {
	col := x - l.OffsetX
	row := (l.GridLength - 1 - y) - l.OffsetY
	if col < 0 || row < 0 || col >= l.VisibleCols() || row >= l.VisibleRows() {
		return 0, 0, false
	}
	return gridLeft + col*CellWidth + CellWidth/2, gridTop + row, true
}

// Follow scrolls the viewport so that cell (x, y) is visible.
func (l *Layout) Follow(x, y int) {
	cols, rows := l.VisibleCols(), l.VisibleRows()
	row := l.GridLength - 1 - y

	if x < l.OffsetX {
		l.OffsetX = x
	} else if cols > 0 && x >= l.OffsetX+cols {
		l.OffsetX = x - cols + 1
	}
	if row < l.OffsetY {
		l.OffsetY = row
	} else if rows > 0 && row >= l.OffsetY+rows {
		l.OffsetY = row - rows + 1
	}
	l.OffsetX = clamp(l.OffsetX, 0, max(0, l.GridWidth-cols))
	l.OffsetY = clamp(l.OffsetY, 0, max(0, l.GridLength-rows))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
