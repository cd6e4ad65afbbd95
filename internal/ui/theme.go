package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/worldedit/internal/config"
	"github.com/samdwyer/worldedit/internal/world"
)

// Theme holds the styles used to draw the editor.
type Theme struct {
	Blank  tcell.Style
	Wall   tcell.Style
	Marker tcell.Style
	Agent  tcell.Style
	Cursor tcell.Style
	Border tcell.Style
	Text   tcell.Style
	Error  tcell.Style
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	cellBg := tcell.ColorGray
	return Theme{
		Blank:  tcell.StyleDefault.Background(cellBg).Foreground(tcell.ColorBlack),
		Wall:   tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true),
		Marker: tcell.StyleDefault.Background(cellBg).Foreground(tcell.ColorYellow).Bold(true),
		Agent:  tcell.StyleDefault.Background(cellBg).Foreground(tcell.ColorAqua).Bold(true),
		Cursor: tcell.StyleDefault.Reverse(true),
		Border: tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		Text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Error:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

// NewTheme applies configured colors on top of DefaultTheme.
func NewTheme(cfg config.ThemeConfig) (Theme, error) {
	t := DefaultTheme()
	overrides := []struct {
		hex   string
		style *tcell.Style
		bg    bool
	}{
		{cfg.Wall, &t.Wall, true},
		{cfg.Marker, &t.Marker, false},
		{cfg.Agent, &t.Agent, false},
		{cfg.Cursor, &t.Cursor, true},
		{cfg.Border, &t.Border, false},
	}
	for _, o := range overrides {
		if o.hex == "" {
			continue
		}
		color, err := ParseHexColor(o.hex)
		if err != nil {
			return t, err
		}
		if o.bg {
			*o.style = o.style.Background(color)
		} else {
			*o.style = o.style.Foreground(color)
		}
	}
	return t, nil
}

// CellStyle returns the style for a cell kind.
func (t Theme) CellStyle(c world.Cell) tcell.Style {
	switch {
	case c.IsWall():
		return t.Wall
	case c.IsAgent():
		return t.Agent
	case c.Markers() > 0:
		return t.Marker
	default:
		return t.Blank
	}
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
