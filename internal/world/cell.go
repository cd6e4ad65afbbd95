// Package world provides the scene grid and the per-cell editing rules.
package world

// Cell represents the single symbol held by a grid cell.
type Cell rune

const (
	// CellBlank is an empty cell.
	CellBlank Cell = ' '
	// CellWall is an impassable wall.
	CellWall Cell = 'x'

	// Agent start positions, named by facing direction.
	AgentEast  Cell = '>'
	AgentNorth Cell = '^'
	AgentWest  Cell = '<'
	AgentSouth Cell = 'v'

	// MaxMarkers is the largest marker stack a cell can hold.
	MaxMarkers = 9
)

// IsBlank returns true if the cell is empty.
func (c Cell) IsBlank() bool {
	return c == CellBlank
}

// IsWall returns true if the cell is a wall.
func (c Cell) IsWall() bool {
	return c == CellWall
}

// IsAgent returns true if the cell holds an agent start position.
func (c Cell) IsAgent() bool {
	switch c {
	case AgentEast, AgentNorth, AgentWest, AgentSouth:
		return true
	}
	return false
}

// Markers returns the marker count held by the cell.
// Any symbol that is not a digit counts as zero markers.
func (c Cell) Markers() int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return 0
}

// IsKnown returns true if the symbol belongs to the scene alphabet.
func (c Cell) IsKnown() bool {
	return c.IsBlank() || c.IsWall() || c.IsAgent() || (c >= '1' && c <= '9')
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}

// MarkerCell returns the cell holding n markers, clamped to 1..MaxMarkers.
func MarkerCell(n int) Cell {
	if n < 1 {
		n = 1
	}
	if n > MaxMarkers {
		n = MaxMarkers
	}
	return Cell('0' + n)
}

// cellFromByte maps a serialized character to a cell.
// Characters outside the alphabet read as blank.
func cellFromByte(b byte) Cell {
	c := Cell(b)
	if !c.IsKnown() {
		return CellBlank
	}
	return c
}
