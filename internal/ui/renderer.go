package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/worldedit/internal/scene"
	"github.com/samdwyer/worldedit/internal/world"
)

// HelpLines describes the editor bindings.
var HelpLines = []string{
	"left click: add beeper   right click: remove beeper   shift+click: wall",
	"ctrl+click (or alt+click): add/rotate agent   double click: clear cell",
	"arrows: move   + -: beepers   w: wall   a: agent   space: clear",
	"[ ]: width   { }: length   A: actions   B: beepers",
	"^S save   S save as   ^O open   ^R revert   q quit",
}

// View is everything the renderer needs for one frame.
type View struct {
	Grid     *world.Grid
	Settings scene.Settings
	Path     string
	Dirty    bool

	CursorX, CursorY int

	Message string
	IsError bool

	// Prompt is the label of an active line prompt; Input is its text.
	Prompt string
	Input  string

	ShowHelp bool
}

// Renderer handles drawing the editor to the screen.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the status lines, the framed grid and the help text.
func (r *Renderer) Render(v View, layout *Layout) {
	r.screen.Clear()
	r.screen.HideCursor()

	r.renderStatus(v)
	r.renderGrid(v, layout)
	if v.ShowHelp {
		r.renderHelp(layout)
	} else {
		r.screen.SetString(0, layout.ScreenHeight-1, "? for help", r.theme.Text.Dim(true))
	}

	r.screen.Show()
}

func (r *Renderer) renderStatus(v View) {
	name := v.Path
	if name == "" {
		name = "[untitled]"
	}
	if v.Dirty {
		name += " *"
	}
	census := v.Grid.Count()
	status := fmt.Sprintf("%s  %dx%d  actions %s  beepers %s  walls %d  markers %d  agents %d  (%d,%d)",
		name, v.Grid.Width(), v.Grid.Length(),
		v.Settings.ActionsLimit, v.Settings.InitialBeepersCount,
		census.Walls, census.Markers, census.Agents,
		v.CursorX, v.CursorY)
	r.screen.SetString(0, 0, status, r.theme.Text.Bold(true))

	switch {
	case v.Prompt != "":
		end := r.screen.SetString(0, 1, v.Prompt+": "+v.Input, r.theme.Text)
		r.screen.ShowCursor(end, 1)
	case v.IsError:
		r.screen.SetString(0, 1, v.Message, r.theme.Error)
	default:
		r.screen.SetString(0, 1, v.Message, r.theme.Text)
	}
}

func (r *Renderer) renderGrid(v View, layout *Layout) {
	cols, rows := layout.VisibleCols(), layout.VisibleRows()
	if cols == 0 || rows == 0 {
		return
	}

	r.drawFrame(cols*CellWidth, rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := layout.OffsetX + col
			y := layout.GridLength - 1 - (layout.OffsetY + row)
			cell := v.Grid.Read(x, y)

			style := r.theme.CellStyle(cell)
			if x == v.CursorX && y == v.CursorY {
				style = style.Reverse(true)
			}

			sx := gridLeft + col*CellWidth
			sy := gridTop + row
			r.screen.SetContent(sx, sy, ' ', style)
			r.screen.SetContent(sx+1, sy, cell.Rune(), style)
			r.screen.SetContent(sx+2, sy, ' ', style)
		}
	}
}

// drawFrame draws a box around an inner area of the given size.
func (r *Renderer) drawFrame(innerWidth, innerHeight int) {
	left, top := gridLeft-1, gridTop-1
	right, bottom := gridLeft+innerWidth, gridTop+innerHeight
	style := r.theme.Border

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, style)
}

// renderHelp draws the binding summary at the bottom of the screen.
func (r *Renderer) renderHelp(layout *Layout) {
	y := layout.ScreenHeight - len(HelpLines)
	for i, line := range HelpLines {
		r.screen.SetString(0, y+i, line, r.theme.Text.Dim(true))
	}
}
