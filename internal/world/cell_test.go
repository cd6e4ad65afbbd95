package world

import "testing"

func TestGestureTransform(t *testing.T) {
	tests := []struct {
		gesture Gesture
		in      Cell
		want    Cell
	}{
		{SetWall, CellBlank, CellWall},
		{SetWall, '5', CellWall},
		{SetWall, AgentWest, CellWall},
		{ClearCell, CellWall, CellBlank},
		{ClearCell, '9', CellBlank},
		{RotateOrAddAgent, CellWall, AgentEast},
		{RotateOrAddAgent, '3', AgentEast},
		{RotateOrAddAgent, AgentSouth, AgentEast},
		{IncrementMarker, CellBlank, '1'},
		{IncrementMarker, CellWall, '1'},
		{IncrementMarker, AgentNorth, '1'},
		{IncrementMarker, '8', '9'},
		{IncrementMarker, '9', '9'},
		{DecrementMarker, '9', '8'},
		{DecrementMarker, '2', '1'},
		{DecrementMarker, '1', '1'},
		{DecrementMarker, CellBlank, CellBlank},
		{DecrementMarker, CellWall, CellWall},
		{DecrementMarker, AgentEast, AgentEast},
	}

	for _, tt := range tests {
		got := tt.gesture.Transform(tt.in)
		if got != tt.want {
			t.Errorf("%s.Transform(%q) = %q, want %q", tt.gesture, tt.in, got, tt.want)
		}
	}
}

func TestCellPredicates(t *testing.T) {
	tests := []struct {
		cell    Cell
		known   bool
		agent   bool
		markers int
	}{
		{CellBlank, true, false, 0},
		{CellWall, true, false, 0},
		{'1', true, false, 1},
		{'9', true, false, 9},
		{'0', false, false, 0},
		{AgentSouth, true, true, 0},
		{'#', false, false, 0},
	}

	for _, tt := range tests {
		if got := tt.cell.IsKnown(); got != tt.known {
			t.Errorf("Cell(%q).IsKnown() = %v, want %v", tt.cell, got, tt.known)
		}
		if got := tt.cell.IsAgent(); got != tt.agent {
			t.Errorf("Cell(%q).IsAgent() = %v, want %v", tt.cell, got, tt.agent)
		}
		if got := tt.cell.Markers(); got != tt.markers {
			t.Errorf("Cell(%q).Markers() = %d, want %d", tt.cell, got, tt.markers)
		}
	}
}

func TestGestureNames(t *testing.T) {
	for _, g := range []Gesture{SetWall, ClearCell, RotateOrAddAgent, IncrementMarker, DecrementMarker} {
		parsed, err := ParseGesture(g.String())
		if err != nil {
			t.Errorf("ParseGesture(%q) failed: %v", g.String(), err)
			continue
		}
		if parsed != g {
			t.Errorf("ParseGesture(%q) = %v, want %v", g.String(), parsed, g)
		}
	}

	if _, err := ParseGesture("explode"); err == nil {
		t.Error("ParseGesture(\"explode\") should fail")
	}
	if got := Gesture(42).String(); got != "unknown" {
		t.Errorf("Gesture(42).String() = %q, want \"unknown\"", got)
	}
}

func TestBoundsIntersect(t *testing.T) {
	a := Bounds{Width: 3, Length: 5}
	b := Bounds{Width: 5, Length: 2}
	if got := a.Intersect(b); got != (Bounds{Width: 3, Length: 2}) {
		t.Errorf("Intersect = %+v, want 3x2", got)
	}
	if a.Contains(3, 0) {
		t.Error("Contains(3,0) should be false for width 3")
	}
	if !a.Contains(2, 4) {
		t.Error("Contains(2,4) should be true for 3x5")
	}
}
