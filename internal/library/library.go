// Package library keeps named scene snapshots in a SQLite database.
package library

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"

	"github.com/samdwyer/worldedit/internal/scene"
	"github.com/samdwyer/worldedit/internal/telemetry"
)

// ErrNotFound is returned when no scene has the requested name.
var ErrNotFound = errors.New("library: scene not found")

// Entry describes one stored scene.
type Entry struct {
	ID        string
	Name      string
	Width     int
	Length    int
	UpdatedAt time.Time
}

// Library is a SQLite-backed scene catalog.
type Library struct {
	db *sql.DB
}

// Open opens or creates the library at path.
func Open(path string) (*Library, error) {
	if path == "" {
		return nil, fmt.Errorf("empty library path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Library{db: db}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS scenes (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			width      INTEGER NOT NULL,
			length     INTEGER NOT NULL,
			document   TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("library schema: %w", err)
		}
	}
	return nil
}

// Close releases the database handle.
func (l *Library) Close() error {
	return l.db.Close()
}

// Put stores doc under name, replacing any scene already stored there.
// The entry keeps its ID across replacements.
func (l *Library) Put(ctx context.Context, name string, doc scene.Document) (Entry, error) {
	ctx, span := telemetry.Tracer("library").Start(ctx, "library.put")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, fmt.Errorf("library: empty scene name")
	}
	if _, _, err := scene.ToGridAndSettings(doc); err != nil {
		return Entry{}, err
	}

	var buf bytes.Buffer
	if err := scene.Encode(&buf, doc); err != nil {
		return Entry{}, err
	}

	width, length := doc.Dimensions()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO scenes (id, name, width, length, document, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			width = excluded.width,
			length = excluded.length,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		uuid.NewString(), name, width, length, buf.String(), now)
	if err != nil {
		span.RecordError(err)
		return Entry{}, fmt.Errorf("library put %q: %w", name, err)
	}

	span.SetAttributes(
		attribute.String("library.name", name),
		attribute.Int("scene.width", width),
		attribute.Int("scene.length", length),
	)
	return l.entry(ctx, name)
}

// Get returns the document stored under name.
func (l *Library) Get(ctx context.Context, name string) (scene.Document, error) {
	var raw string
	err := l.db.QueryRowContext(ctx, `SELECT document FROM scenes WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return scene.Document{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return scene.Document{}, err
	}
	return scene.Decode(strings.NewReader(raw))
}

// List returns all entries, most recently updated first.
func (l *Library) List(ctx context.Context) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, name, width, length, updated_at FROM scenes ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete removes the scene stored under name.
func (l *Library) Delete(ctx context.Context, name string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM scenes WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

func (l *Library) entry(ctx context.Context, name string) (Entry, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT id, name, width, length, updated_at FROM scenes WHERE name = ?`, name)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e       Entry
		updated string
	)
	if err := s.Scan(&e.ID, &e.Name, &e.Width, &e.Length, &updated); err != nil {
		return Entry{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, updated)
	if err != nil {
		return Entry{}, fmt.Errorf("library: bad timestamp %q: %w", updated, err)
	}
	e.UpdatedAt = t
	return e, nil
}
