package world

import (
	"fmt"
	"strings"
)

// Gesture is a single-cell edit requested by the user.
type Gesture int

const (
	// SetWall turns the cell into a wall.
	SetWall Gesture = iota
	// ClearCell empties the cell.
	ClearCell
	// RotateOrAddAgent places an east-facing agent, or turns an existing one left.
	RotateOrAddAgent
	// IncrementMarker adds one marker, up to MaxMarkers.
	IncrementMarker
	// DecrementMarker removes one marker, never going below one.
	DecrementMarker
)

var gestureNames = map[Gesture]string{
	SetWall:          "set_wall",
	ClearCell:        "clear_cell",
	RotateOrAddAgent: "rotate_or_add_agent",
	IncrementMarker:  "increment_marker",
	DecrementMarker:  "decrement_marker",
}

// String returns the gesture's identifier.
func (g Gesture) String() string {
	if name, ok := gestureNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseGesture returns the gesture with the given identifier.
func ParseGesture(name string) (Gesture, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for g, n := range gestureNames {
		if n == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown gesture %q", name)
}

// agentTurnLeft is the counter-clockwise facing cycle.
var agentTurnLeft = map[Cell]Cell{
	AgentEast:  AgentNorth,
	AgentNorth: AgentWest,
	AgentWest:  AgentSouth,
	AgentSouth: AgentEast,
}

// Transform returns the cell that results from applying the gesture to c.
// The transforms only look at c as far as they need to: rotating a wall
// replaces it with an agent, incrementing an agent starts a new stack.
func (g Gesture) Transform(c Cell) Cell {
	switch g {
	case SetWall:
		return CellWall
	case ClearCell:
		return CellBlank
	case RotateOrAddAgent:
		if next, ok := agentTurnLeft[c]; ok {
			return next
		}
		return AgentEast
	case IncrementMarker:
		n := c.Markers()
		if n < MaxMarkers {
			return MarkerCell(n + 1)
		}
		return c
	case DecrementMarker:
		n := c.Markers()
		if n > 1 {
			return MarkerCell(n - 1)
		}
		return c
	default:
		return c
	}
}
