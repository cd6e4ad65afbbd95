package editor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/worldedit/internal/telemetry"
	"github.com/samdwyer/worldedit/internal/ui"
	"github.com/samdwyer/worldedit/internal/world"
)

// Editor is the interactive terminal front end over a Session.
type Editor struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	opts     Options

	cursor  Cursor
	layout  ui.Layout
	mode    Mode
	prompt  *prompt
	clicks  clickTracker
	buttons tcell.ButtonMask // buttons held at the last mouse event

	message     string
	isError     bool
	showHelp    bool
	confirmQuit bool
	running     bool
}

// New creates an editor on the terminal.
func New(session *Session, opts Options) (*Editor, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newEditor(screen, session, opts), nil
}

func newEditor(screen *ui.Screen, session *Session, opts Options) *Editor {
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	return &Editor{
		screen:   screen,
		renderer: ui.NewRenderer(screen, opts.Theme),
		session:  session,
		opts:     opts,
		clicks:   clickTracker{interval: opts.DoubleClick},
		mode:     ModeGrid,
		running:  true,
		message:  "? for help",
	}
}

// Run executes the main editor loop until the user quits.
func (e *Editor) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("editor").Start(ctx, "editor.init")
	g := e.session.Grid()
	span.SetAttributes(
		attribute.String("scene.path", e.session.Path()),
		attribute.Int("scene.width", g.Width()),
		attribute.Int("scene.length", g.Length()),
	)
	span.End()
	e.opts.Logger.Printf("editing %q (%dx%d)", e.session.Path(), g.Width(), g.Length())

	for e.running {
		e.render()

		ev := e.screen.PollEvent()
		if ev == nil {
			break
		}
		e.handleEvent(ctx, ev)
	}

	e.screen.Close()
	return nil
}

// Close cleans up editor resources.
func (e *Editor) Close() {
	if e.screen != nil {
		e.screen.Close()
	}
}

func (e *Editor) render() {
	g := e.session.Grid()
	e.layout.ScreenWidth, e.layout.ScreenHeight = e.screen.Size()
	e.layout.GridWidth, e.layout.GridLength = g.Width(), g.Length()
	cx, cy := e.cursor.Position()
	e.layout.Follow(cx, cy)

	v := ui.View{
		Grid:     g,
		Settings: e.session.Settings(),
		Path:     e.session.Path(),
		Dirty:    e.session.Dirty(),
		CursorX:  cx,
		CursorY:  cy,
		Message:  e.message,
		IsError:  e.isError,
		ShowHelp: e.showHelp,
	}
	if e.mode == ModePrompt {
		v.Prompt, v.Input = e.prompt.Label(), e.prompt.Text()
	}
	e.renderer.Render(v, &e.layout)
}

// handleEvent processes a single input event.
func (e *Editor) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		e.handleMouse(ev)
	case *tcell.EventResize:
		e.screen.Sync()
	}
}

// handleMouse applies a gesture on each button press over a cell.
// Drags and releases are ignored.
func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	pressed := buttons &^ e.buttons
	e.buttons = buttons
	if pressed == tcell.ButtonNone || e.mode != ModeGrid {
		return
	}

	sx, sy := ev.Position()
	x, y, ok := e.layout.CellAt(sx, sy)
	if !ok {
		return
	}
	gesture, ok := gestureForClick(pressed, ev.Modifiers())
	if !ok {
		return
	}

	e.cursor = Cursor{X: x, Y: y}
	if gesture == world.IncrementMarker {
		if e.clicks.press(x, y, ev.When()) {
			gesture = world.ClearCell
		}
	} else {
		e.clicks.reset()
	}
	e.apply(x, y, gesture)
}

// handleKey routes a key press to the prompt or to a grid command.
func (e *Editor) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if e.mode == ModePrompt {
		e.handlePromptKey(ctx, key, r)
		return
	}

	cmd := commandFor(key, r)
	if cmd != cmdQuit {
		e.confirmQuit = false
	}
	e.execute(ctx, cmd)
}

func (e *Editor) execute(ctx context.Context, cmd command) {
	bounds := e.session.Grid().Bounds()

	if gesture, ok := gestureCommands[cmd]; ok {
		e.clicks.reset()
		x, y := e.cursor.Position()
		e.apply(x, y, gesture)
		return
	}

	switch cmd {
	case cmdQuit:
		if e.session.Dirty() && !e.confirmQuit {
			e.confirmQuit = true
			e.setMessage("unsaved changes: press q again to quit, ctrl+s to save")
			return
		}
		e.running = false

	case cmdUp:
		e.cursor.Move(0, 1, bounds)
	case cmdDown:
		e.cursor.Move(0, -1, bounds)
	case cmdLeft:
		e.cursor.Move(-1, 0, bounds)
	case cmdRight:
		e.cursor.Move(1, 0, bounds)

	case cmdWidthDec:
		e.resize(ctx, bounds.Width-1, bounds.Length)
	case cmdWidthInc:
		e.resize(ctx, bounds.Width+1, bounds.Length)
	case cmdLengthDec:
		e.resize(ctx, bounds.Width, bounds.Length-1)
	case cmdLengthInc:
		e.resize(ctx, bounds.Width, bounds.Length+1)

	case cmdEditActions:
		e.openPrompt(promptActions, e.session.Settings().ActionsLimit)
	case cmdEditBeepers:
		e.openPrompt(promptBeepers, e.session.Settings().InitialBeepersCount)

	case cmdSave:
		if e.session.Path() == "" {
			e.openPrompt(promptSave, "")
			return
		}
		e.save(ctx, "")
	case cmdSaveAs:
		e.openPrompt(promptSave, e.session.Path())
	case cmdOpen:
		e.openPrompt(promptOpen, e.session.Path())
	case cmdRevert:
		if !e.session.Revert() {
			e.setMessage("nothing to revert")
			return
		}
		e.cursor.Clamp(e.session.Grid().Bounds())
		e.clicks.reset()
		e.setMessage("reverted to last saved state")
		e.opts.Logger.Printf("reverted %s", e.session.Path())

	case cmdHelp:
		e.showHelp = !e.showHelp
	}
}

func (e *Editor) apply(x, y int, g world.Gesture) {
	if cell, ok := e.session.Apply(x, y, g); ok {
		e.setMessage(fmt.Sprintf("%s at (%d,%d): %q", g, x, y, cell.Rune()))
		e.opts.Logger.Printf("%s at (%d,%d)", g, x, y)
	}
}

func (e *Editor) resize(ctx context.Context, width, length int) {
	if err := e.session.Resize(ctx, width, length); err != nil {
		e.setError(err)
		return
	}
	e.cursor.Clamp(e.session.Grid().Bounds())
	e.clicks.reset()
	e.setMessage(fmt.Sprintf("resized to %dx%d", width, length))
	e.opts.Logger.Printf("resized to %dx%d", width, length)
}

func (e *Editor) openPrompt(kind promptKind, initial string) {
	e.prompt = newPrompt(kind, initial)
	e.mode = ModePrompt
}

func (e *Editor) closePrompt() {
	e.prompt = nil
	e.mode = ModeGrid
}

// handlePromptKey edits the prompt line; Enter submits and Esc cancels.
func (e *Editor) handlePromptKey(ctx context.Context, key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		e.closePrompt()
		e.setMessage("cancelled")
	case tcell.KeyEnter:
		p := e.prompt
		e.closePrompt()
		e.submit(ctx, p.kind, p.Text())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.prompt.Backspace()
	case tcell.KeyRune:
		e.prompt.Insert(r)
	}
}

func (e *Editor) submit(ctx context.Context, kind promptKind, value string) {
	switch kind {
	case promptOpen:
		e.load(ctx, value)
	case promptSave:
		e.save(ctx, value)
	case promptActions:
		e.session.SetActionsLimit(value)
		e.setMessage("actions limit set to " + value)
	case promptBeepers:
		e.session.SetInitialBeepersCount(value)
		e.setMessage("initial beepers set to " + value)
	}
}

func (e *Editor) load(ctx context.Context, path string) {
	if path == "" {
		e.setError(errors.New("no file name given"))
		return
	}
	if err := e.session.Load(ctx, path); err != nil {
		e.opts.Logger.Printf("load %s: %v", path, err)
		e.setError(err)
		return
	}
	g := e.session.Grid()
	e.cursor.Clamp(g.Bounds())
	e.layout.OffsetX, e.layout.OffsetY = 0, 0
	e.clicks.reset()
	e.setMessage(fmt.Sprintf("loaded %s (%dx%d)", filepath.Base(path), g.Width(), g.Length()))
	e.opts.Logger.Printf("loaded %s", path)
}

func (e *Editor) save(ctx context.Context, path string) {
	if err := e.session.Save(ctx, path); err != nil {
		e.opts.Logger.Printf("save %s: %v", path, err)
		e.setError(err)
		return
	}
	e.setMessage("saved " + e.session.Path())
	e.opts.Logger.Printf("saved %s", e.session.Path())
}

func (e *Editor) setMessage(msg string) {
	e.message, e.isError = msg, false
}

func (e *Editor) setError(err error) {
	e.message, e.isError = err.Error(), true
}
