package world

import "strings"

const (
	// Default scene dimensions for a new editor session.
	DefaultWidth  = 3
	DefaultLength = 5
)

// Grid is the editable scene: a width x length matrix of cells.
// Row 0 is the bottom row of the scene.
type Grid struct {
	width  int
	length int
	cells  [][]Cell // indexed [y][x]
}

// Census summarizes the contents of a grid.
type Census struct {
	Walls   int
	Markers int // total markers across all stacks
	Stacks  int // cells holding at least one marker
	Agents  int
}

// New creates a width x length grid filled from rows.
// rows[y][x] becomes cell (x, y). Missing rows or characters are blank,
// extra ones are ignored, and characters outside the alphabet read as blank.
func New(width, length int, rows []string) (*Grid, error) {
	b := Bounds{Width: width, Length: length}
	if !b.Valid() {
		return nil, &DimensionError{Width: width, Length: length}
	}

	cells := make([][]Cell, length)
	for y := range cells {
		cells[y] = make([]Cell, width)
		var row string
		if y < len(rows) {
			row = rows[y]
		}
		for x := range cells[y] {
			if x < len(row) {
				cells[y][x] = cellFromByte(row[x])
			} else {
				cells[y][x] = CellBlank
			}
		}
	}

	return &Grid{width: width, length: length, cells: cells}, nil
}

// Blank creates a width x length grid of empty cells.
func Blank(width, length int) (*Grid, error) {
	return New(width, length, nil)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Length returns the number of rows.
func (g *Grid) Length() int { return g.length }

// Bounds returns the grid's extent.
func (g *Grid) Bounds() Bounds {
	return Bounds{Width: g.width, Length: g.length}
}

// Read returns the cell at the given position, or blank if out of bounds.
func (g *Grid) Read(x, y int) Cell {
	if !g.Bounds().Contains(x, y) {
		return CellBlank
	}
	return g.cells[y][x]
}

// Set stores c at the given position. It returns false if out of bounds.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.Bounds().Contains(x, y) {
		return false
	}
	g.cells[y][x] = c
	return true
}

// Apply runs the gesture against the cell at (x, y) and returns the new cell.
// Out-of-bounds positions are left alone and report false.
func (g *Grid) Apply(x, y int, gesture Gesture) (Cell, bool) {
	if !g.Bounds().Contains(x, y) {
		return CellBlank, false
	}
	next := gesture.Transform(g.cells[y][x])
	g.cells[y][x] = next
	return next, true
}

// Resize reallocates the grid. Cells inside both the old and the new bounds
// keep their symbols; everything else in the new grid starts blank.
// Cells outside the new bounds are discarded.
func (g *Grid) Resize(width, length int) error {
	next := Bounds{Width: width, Length: length}
	if !next.Valid() {
		return &DimensionError{Width: width, Length: length}
	}

	keep := g.Bounds().Intersect(next)
	cells := make([][]Cell, length)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			if keep.Contains(x, y) {
				cells[y][x] = g.cells[y][x]
			} else {
				cells[y][x] = CellBlank
			}
		}
	}

	g.width, g.length, g.cells = width, length, cells
	return nil
}

// ExportRows serializes the grid as one string per row, bottom row first.
func (g *Grid) ExportRows() []string {
	rows := make([]string, g.length)
	var sb strings.Builder
	for y := 0; y < g.length; y++ {
		sb.Reset()
		sb.Grow(g.width)
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y][x].Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.length)
	for y := range cells {
		cells[y] = append([]Cell(nil), g.cells[y]...)
	}
	return &Grid{width: g.width, length: g.length, cells: cells}
}

// Equal returns true if both grids have the same bounds and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Bounds() != other.Bounds() {
		return false
	}
	for y := 0; y < g.length; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Count tallies walls, markers and agents.
func (g *Grid) Count() Census {
	var c Census
	for y := 0; y < g.length; y++ {
		for x := 0; x < g.width; x++ {
			cell := g.cells[y][x]
			switch {
			case cell.IsWall():
				c.Walls++
			case cell.IsAgent():
				c.Agents++
			case cell.Markers() > 0:
				c.Stacks++
				c.Markers += cell.Markers()
			}
		}
	}
	return c
}
