package editor

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/worldedit/internal/world"
)

// gestureForClick maps a mouse press to the cell gesture it triggers.
func gestureForClick(buttons tcell.ButtonMask, mods tcell.ModMask) (world.Gesture, bool) {
	switch {
	case buttons&tcell.ButtonPrimary != 0:
		switch {
		case mods&tcell.ModShift != 0:
			return world.SetWall, true
		case mods&(tcell.ModCtrl|tcell.ModAlt) != 0:
			return world.RotateOrAddAgent, true
		default:
			return world.IncrementMarker, true
		}
	case buttons&tcell.ButtonSecondary != 0:
		return world.DecrementMarker, true
	}
	return 0, false
}

// clickTracker recognizes a second plain left click on the same cell.
type clickTracker struct {
	interval time.Duration
	primed   bool
	x, y     int
	at       time.Time
}

// press records a plain left click and reports whether it completes a
// double click. A double click resets the tracker.
func (c *clickTracker) press(x, y int, at time.Time) bool {
	if c.interval > 0 && c.primed && c.x == x && c.y == y {
		if gap := at.Sub(c.at); gap >= 0 && gap <= c.interval {
			c.primed = false
			return true
		}
	}
	c.primed, c.x, c.y, c.at = true, x, y, at
	return false
}

// reset forgets any pending click.
func (c *clickTracker) reset() {
	c.primed = false
}
