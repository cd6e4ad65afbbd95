package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/worldedit/internal/world"
)

// command is a grid-mode keyboard action.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
	cmdIncrement
	cmdDecrement
	cmdWall
	cmdAgent
	cmdClear
	cmdWidthDec
	cmdWidthInc
	cmdLengthDec
	cmdLengthInc
	cmdEditActions
	cmdEditBeepers
	cmdSave
	cmdSaveAs
	cmdOpen
	cmdRevert
	cmdHelp
)

// gestureCommands are the commands that edit the cell under the cursor.
var gestureCommands = map[command]world.Gesture{
	cmdIncrement: world.IncrementMarker,
	cmdDecrement: world.DecrementMarker,
	cmdWall:      world.SetWall,
	cmdAgent:     world.RotateOrAddAgent,
	cmdClear:     world.ClearCell,
}

var runeCommands = map[rune]command{
	'q': cmdQuit,
	'Q': cmdQuit,
	'+': cmdIncrement,
	'=': cmdIncrement,
	'-': cmdDecrement,
	'w': cmdWall,
	'x': cmdWall,
	'a': cmdAgent,
	' ': cmdClear,
	'[': cmdWidthDec,
	']': cmdWidthInc,
	'{': cmdLengthDec,
	'}': cmdLengthInc,
	'A': cmdEditActions,
	'B': cmdEditBeepers,
	'S': cmdSaveAs,
	'?': cmdHelp,
	'h': cmdLeft,
	'j': cmdDown,
	'k': cmdUp,
	'l': cmdRight,
}

// commandFor maps a key press in grid mode to a command.
func commandFor(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		return cmdClear
	case tcell.KeyCtrlS:
		return cmdSave
	case tcell.KeyCtrlO:
		return cmdOpen
	case tcell.KeyCtrlR:
		return cmdRevert
	case tcell.KeyRune:
		return runeCommands[r]
	}
	return cmdNone
}
