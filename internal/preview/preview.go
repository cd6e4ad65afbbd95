// Package preview renders scenes as styled text for terminal output.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/worldedit/internal/scene"
	"github.com/samdwyer/worldedit/internal/world"
)

// BlankGlyph stands in for empty cells so the grid shape stays visible.
const BlankGlyph = '·'

// Theme holds the styles used for each kind of cell.
type Theme struct {
	Blank  lipgloss.Style
	Wall   lipgloss.Style
	Marker lipgloss.Style
	Agent  lipgloss.Style
	Frame  lipgloss.Style
	Label  lipgloss.Style
}

// DefaultTheme returns the colored theme used by show.
func DefaultTheme() Theme {
	return Theme{
		Blank:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Wall:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Bold(true),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Agent:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")),
	}
}

// PlainTheme renders without colors, for pipes and tests.
func PlainTheme() Theme {
	return Theme{
		Frame: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

func (t Theme) cell(c world.Cell) string {
	switch {
	case c.IsWall():
		return t.Wall.Render(string(c.Rune()))
	case c.IsAgent():
		return t.Agent.Render(string(c.Rune()))
	case c.Markers() > 0:
		return t.Marker.Render(string(c.Rune()))
	default:
		return t.Blank.Render(string(BlankGlyph))
	}
}

// rows returns the grid lines, top row first.
func rows(g *world.Grid, theme Theme) []string {
	out := make([]string, 0, g.Length())
	cells := make([]string, g.Width())
	for y := g.Length() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			cells[x] = theme.cell(g.Read(x, y))
		}
		out = append(out, strings.Join(cells, " "))
	}
	return out
}

// Render draws the grid in a frame with a settings summary underneath.
func Render(g *world.Grid, s scene.Settings, theme Theme) string {
	body := theme.Frame.Render(strings.Join(rows(g, theme), "\n"))

	census := g.Count()
	summary := theme.Label.Render(fmt.Sprintf(
		"%dx%d  actions %s  beepers %s  walls %d  markers %d  agents %d",
		g.Width(), g.Length(), s.ActionsLimit, s.InitialBeepersCount,
		census.Walls, census.Markers, census.Agents))

	return lipgloss.JoinVertical(lipgloss.Left, body, summary)
}
