package world

import (
	"errors"
	"fmt"
)

const (
	// MinSize is the smallest allowed width or length.
	MinSize = 1
	// MaxSize is the largest allowed width or length.
	MaxSize = 1000
)

// ErrDimension matches any DimensionError via errors.Is.
var ErrDimension = errors.New("world: invalid dimensions")

// DimensionError reports a width or length outside [MinSize, MaxSize].
type DimensionError struct {
	Width  int
	Length int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("world: invalid dimensions %dx%d (each must be %d..%d)",
		e.Width, e.Length, MinSize, MaxSize)
}

// Is lets errors.Is(err, ErrDimension) match.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}
