package editor

import "github.com/samdwyer/worldedit/internal/world"

// Cursor is the keyboard-selected cell.
type Cursor struct {
	X, Y int
}

// Move shifts the cursor by the given delta, staying inside b.
func (c *Cursor) Move(dx, dy int, b world.Bounds) {
	c.X += dx
	c.Y += dy
	c.Clamp(b)
}

// Clamp pulls the cursor back inside b.
func (c *Cursor) Clamp(b world.Bounds) {
	c.X = max(0, min(c.X, b.Width-1))
	c.Y = max(0, min(c.Y, b.Length-1))
}

// Position returns the current x, y coordinates.
func (c *Cursor) Position() (int, int) {
	return c.X, c.Y
}
