package library

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/samdwyer/worldedit/internal/scene"
	"github.com/samdwyer/worldedit/internal/world"
)

func openTemp(t *testing.T) *Library {
	t.Helper()
	lib, err := Open(filepath.Join(t.TempDir(), "nested", "library.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func sampleDoc(t *testing.T, rows ...string) scene.Document {
	t.Helper()
	g, err := world.New(len(rows[0]), len(rows), rows)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return scene.FromGrid(g, scene.Settings{ActionsLimit: "10", InitialBeepersCount: "2"})
}

func TestPutGet(t *testing.T) {
	lib := openTemp(t)
	ctx := context.Background()

	doc := sampleDoc(t, "x> ", "1 v")
	e, err := lib.Put(ctx, "first", doc)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if e.ID == "" || e.Name != "first" || e.Width != 3 || e.Length != 2 {
		t.Errorf("unexpected entry %+v", e)
	}

	got, err := lib.Get(ctx, "first")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Scene) != 2 || got.Scene[0] != "x> " || got.Scene[1] != "1 v" {
		t.Errorf("scene = %q", got.Scene)
	}
	s, ok := got.Settings()
	if !ok || s.ActionsLimit != "10" || s.InitialBeepersCount != "2" {
		t.Errorf("settings = %+v (ok=%v)", s, ok)
	}
}

func TestPutReplacesKeepingID(t *testing.T) {
	lib := openTemp(t)
	ctx := context.Background()

	first, err := lib.Put(ctx, "level", sampleDoc(t, "x"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	second, err := lib.Put(ctx, "level", sampleDoc(t, "xx", "  "))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("ID changed on replace: %s -> %s", first.ID, second.ID)
	}
	if second.Width != 2 || second.Length != 2 {
		t.Errorf("dimensions not updated: %+v", second)
	}

	entries, err := lib.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
}

func TestListAndDelete(t *testing.T) {
	lib := openTemp(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if _, err := lib.Put(ctx, name, sampleDoc(t, ">")); err != nil {
			t.Fatalf("Put %s: %v", name, err)
		}
	}
	if err := lib.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries, err := lib.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Name == "b" {
			t.Error("deleted entry still listed")
		}
		if e.UpdatedAt.IsZero() {
			t.Errorf("entry %s has zero timestamp", e.Name)
		}
	}
}

func TestNotFound(t *testing.T) {
	lib := openTemp(t)
	ctx := context.Background()

	if _, err := lib.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	if err := lib.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestPutRejectsBadInput(t *testing.T) {
	lib := openTemp(t)
	ctx := context.Background()

	if _, err := lib.Put(ctx, "  ", sampleDoc(t, "x")); err == nil {
		t.Error("Put with blank name should fail")
	}
	if _, err := lib.Put(ctx, "bad", scene.Document{Scene: []string{"x"}}); !errors.Is(err, scene.ErrMalformed) {
		t.Errorf("Put without profile error = %v, want ErrMalformed", err)
	}
}
