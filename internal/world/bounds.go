package world

// Bounds is a rectangle anchored at the grid origin (bottom-left cell).
type Bounds struct {
	Width, Length int
}

// Contains returns true if the given cell coordinate is inside the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Length
}

// Intersect returns the overlap of two origin-anchored rectangles.
func (b Bounds) Intersect(other Bounds) Bounds {
	return Bounds{
		Width:  min(b.Width, other.Width),
		Length: min(b.Length, other.Length),
	}
}

// Area returns the number of cells covered by the bounds.
func (b Bounds) Area() int {
	return b.Width * b.Length
}

// Valid returns true if both dimensions are within the editable range.
func (b Bounds) Valid() bool {
	return b.Width >= MinSize && b.Width <= MaxSize &&
		b.Length >= MinSize && b.Length <= MaxSize
}
