// Package editor holds the editing session and the interactive terminal loop.
package editor

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/worldedit/internal/scene"
	"github.com/samdwyer/worldedit/internal/telemetry"
	"github.com/samdwyer/worldedit/internal/world"
)

// ErrNoPath is returned by Save when no path was given and none is known.
var ErrNoPath = errors.New("editor: no file name")

// Session is the editor's state: the one grid being edited, its settings
// and the file it belongs to. It has no UI dependency.
type Session struct {
	grid     *world.Grid
	settings scene.Settings
	path     string
	dirty    bool

	// State as of the last load or save, restored by Revert.
	savedGrid     *world.Grid
	savedSettings scene.Settings
}

// NewSession starts a session over g.
func NewSession(g *world.Grid, s scene.Settings) *Session {
	sess := &Session{grid: g, settings: s}
	sess.snapshot()
	return sess
}

// NewBlankSession starts a session over an empty grid.
func NewBlankSession(width, length int, s scene.Settings) (*Session, error) {
	g, err := world.Blank(width, length)
	if err != nil {
		return nil, err
	}
	return NewSession(g, s), nil
}

// Grid returns the grid being edited.
func (s *Session) Grid() *world.Grid { return s.grid }

// Settings returns the current scene settings.
func (s *Session) Settings() scene.Settings { return s.settings }

// Path returns the file the session saves to, or "" if none is known.
func (s *Session) Path() string { return s.path }

// Dirty reports whether there are changes since the last load or save.
func (s *Session) Dirty() bool { return s.dirty }

// SetPath names the file the session saves to without touching the disk.
func (s *Session) SetPath(path string) {
	s.path = path
}

// Apply runs a gesture on one cell.
func (s *Session) Apply(x, y int, g world.Gesture) (world.Cell, bool) {
	before := s.grid.Read(x, y)
	after, ok := s.grid.Apply(x, y, g)
	if ok && after != before {
		s.dirty = true
	}
	return after, ok
}

// Resize changes the grid dimensions, dropping cells outside the new bounds.
func (s *Session) Resize(ctx context.Context, width, length int) error {
	_, span := telemetry.Tracer("editor").Start(ctx, "grid.resize")
	defer span.End()
	span.SetAttributes(
		attribute.Int("grid.from_width", s.grid.Width()),
		attribute.Int("grid.from_length", s.grid.Length()),
		attribute.Int("grid.width", width),
		attribute.Int("grid.length", length),
	)

	if width == s.grid.Width() && length == s.grid.Length() {
		return nil
	}
	if err := s.grid.Resize(width, length); err != nil {
		span.RecordError(err)
		return err
	}
	s.dirty = true
	return nil
}

// SetActionsLimit stores the action budget text.
func (s *Session) SetActionsLimit(v string) {
	if v != s.settings.ActionsLimit {
		s.settings.ActionsLimit = v
		s.dirty = true
	}
}

// SetInitialBeepersCount stores the initial beeper count text.
func (s *Session) SetInitialBeepersCount(v string) {
	if v != s.settings.InitialBeepersCount {
		s.settings.InitialBeepersCount = v
		s.dirty = true
	}
}

// Load replaces the grid and settings with the contents of path.
// On error the session is left as it was.
func (s *Session) Load(ctx context.Context, path string) error {
	g, settings, err := scene.Load(ctx, path)
	if err != nil {
		return err
	}
	s.grid, s.settings, s.path, s.dirty = g, settings, path, false
	s.snapshot()
	return nil
}

// Save writes the session to path, or to the current path when path is
// empty. A successful save makes path the current path.
func (s *Session) Save(ctx context.Context, path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return ErrNoPath
	}
	if err := scene.Save(ctx, path, s.grid, s.settings); err != nil {
		return err
	}
	s.path, s.dirty = path, false
	s.snapshot()
	return nil
}

// Revert drops every change since the last load or save. It reports
// whether anything changed.
func (s *Session) Revert() bool {
	if s.grid.Equal(s.savedGrid) && s.settings == s.savedSettings {
		s.dirty = false
		return false
	}
	s.grid = s.savedGrid.Clone()
	s.settings = s.savedSettings
	s.dirty = false
	return true
}

func (s *Session) snapshot() {
	s.savedGrid = s.grid.Clone()
	s.savedSettings = s.settings
}

// Document returns the session as a scene document.
func (s *Session) Document() scene.Document {
	return scene.FromGrid(s.grid, s.settings)
}
