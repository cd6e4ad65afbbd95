package world

import (
	"errors"
	"testing"
)

func mustBlank(t *testing.T, width, length int) *Grid {
	t.Helper()
	g, err := Blank(width, length)
	if err != nil {
		t.Fatalf("Blank(%d, %d) failed: %v", width, length, err)
	}
	return g
}

func TestNewDimensions(t *testing.T) {
	tests := []struct {
		width, length int
		wantErr       bool
	}{
		{1, 1, false},
		{3, 5, false},
		{MaxSize, MaxSize, false},
		{0, 5, true},
		{3, 0, true},
		{-1, 2, true},
		{MaxSize + 1, 1, true},
		{1, MaxSize + 1, true},
	}

	for _, tt := range tests {
		_, err := Blank(tt.width, tt.length)
		if (err != nil) != tt.wantErr {
			t.Errorf("Blank(%d, %d) error = %v, wantErr %v", tt.width, tt.length, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrDimension) {
			t.Errorf("Blank(%d, %d) error %v does not match ErrDimension", tt.width, tt.length, err)
		}
	}
}

func TestNewFromRowsLenient(t *testing.T) {
	g, err := New(3, 3, []string{"x1", "?>v9", ""})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := []string{"x1 ", " >v", "   "}
	got := g.ExportRows()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewMissingRowsAreBlank(t *testing.T) {
	g, err := New(2, 3, []string{"xx"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.Read(0, 0) != CellWall {
		t.Errorf("Read(0,0) = %q, want wall", g.Read(0, 0))
	}
	if g.Read(0, 2) != CellBlank {
		t.Errorf("Read(0,2) = %q, want blank", g.Read(0, 2))
	}
}

func TestReadOutOfBounds(t *testing.T) {
	g, err := New(2, 2, []string{"xx", "xx"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	points := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}, {-5, -5}}
	for _, p := range points {
		if got := g.Read(p[0], p[1]); got != CellBlank {
			t.Errorf("Read(%d,%d) = %q, want blank", p[0], p[1], got)
		}
	}
}

func TestIncrementMarkerSaturates(t *testing.T) {
	g := mustBlank(t, 1, 1)
	for i := 0; i < 10; i++ {
		g.Apply(0, 0, IncrementMarker)
	}
	if got := g.Read(0, 0); got != '9' {
		t.Errorf("after 10 increments cell = %q, want '9'", got)
	}
}

func TestDecrementMarkerFloor(t *testing.T) {
	g, _ := New(2, 1, []string{"1 "})
	for i := 0; i < 5; i++ {
		g.Apply(0, 0, DecrementMarker)
		g.Apply(1, 0, DecrementMarker)
	}
	if got := g.Read(0, 0); got != '1' {
		t.Errorf("decremented '1' = %q, want '1'", got)
	}
	if got := g.Read(1, 0); got != CellBlank {
		t.Errorf("decremented blank = %q, want blank", got)
	}
}

func TestRotateCycle(t *testing.T) {
	g := mustBlank(t, 1, 1)
	want := []Cell{AgentEast, AgentNorth, AgentWest, AgentSouth, AgentEast}
	for i, w := range want {
		got, ok := g.Apply(0, 0, RotateOrAddAgent)
		if !ok {
			t.Fatalf("Apply step %d reported out of bounds", i)
		}
		if got != w {
			t.Errorf("step %d: cell = %q, want %q", i, got, w)
		}
	}
}

func TestApplyOutOfBounds(t *testing.T) {
	g := mustBlank(t, 2, 2)
	if _, ok := g.Apply(5, 5, SetWall); ok {
		t.Error("Apply outside the grid should report false")
	}
	if g.Count() != (Census{}) {
		t.Errorf("grid changed after out-of-bounds apply: %+v", g.Count())
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	g := mustBlank(t, 3, 5)
	g.Apply(1, 2, SetWall)

	if err := g.Resize(5, 5); err != nil {
		t.Fatalf("Resize(5,5) failed: %v", err)
	}
	if got := g.Read(1, 2); got != CellWall {
		t.Errorf("after grow Read(1,2) = %q, want wall", got)
	}

	if err := g.Resize(2, 2); err != nil {
		t.Fatalf("Resize(2,2) failed: %v", err)
	}
	if err := g.Resize(5, 5); err != nil {
		t.Fatalf("Resize(5,5) failed: %v", err)
	}
	if got := g.Read(1, 2); got != CellBlank {
		t.Errorf("after shrink and regrow Read(1,2) = %q, want blank", got)
	}
	if g.Width() != 5 || g.Length() != 5 {
		t.Errorf("dimensions = %dx%d, want 5x5", g.Width(), g.Length())
	}
}

func TestResizeInvalidLeavesGrid(t *testing.T) {
	g, _ := New(2, 1, []string{"x>"})
	err := g.Resize(0, 3)
	if !errors.Is(err, ErrDimension) {
		t.Fatalf("Resize(0,3) error = %v, want ErrDimension", err)
	}
	if g.Width() != 2 || g.Length() != 1 || g.Read(1, 0) != AgentEast {
		t.Error("grid modified by failed resize")
	}
}

func TestExportRowsOrder(t *testing.T) {
	rows := []string{" x ", " > ", "2 x"}
	g, err := New(3, 3, rows)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := g.Read(1, 0); got != CellWall {
		t.Errorf("Read(1,0) = %q, want wall from bottom row", got)
	}
	if got := g.Read(0, 2); got != '2' {
		t.Errorf("Read(0,2) = %q, want '2'", got)
	}

	exported := g.ExportRows()
	for i := range rows {
		if exported[i] != rows[i] {
			t.Errorf("ExportRows()[%d] = %q, want %q", i, exported[i], rows[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustBlank(t, 2, 2)
	c := g.Clone()
	c.Apply(0, 0, SetWall)

	if g.Read(0, 0) != CellBlank {
		t.Error("mutating clone changed the original")
	}
	if g.Equal(c) {
		t.Error("Equal should report the grids differ")
	}
}

func TestCount(t *testing.T) {
	g, _ := New(4, 2, []string{"x>9 ", "1xv "})
	got := g.Count()
	want := Census{Walls: 2, Markers: 10, Stacks: 2, Agents: 2}
	if got != want {
		t.Errorf("Count() = %+v, want %+v", got, want)
	}
}
