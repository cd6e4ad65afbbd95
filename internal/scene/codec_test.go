package scene

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/samdwyer/worldedit/internal/world"
)

func TestSaveLoadFiles(t *testing.T) {
	Convey("Given a grid with every kind of cell", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		g, err := world.New(4, 2, []string{"x>9 ", "1 v<"})
		So(err, ShouldBeNil)
		settings := Settings{ActionsLimit: "42", InitialBeepersCount: "3"}

		for _, name := range []string{"scene.json", "scene.json.zst"} {
			path := filepath.Join(dir, name)

			Convey("Saving and loading "+name+" restores it", func() {
				So(Save(ctx, path, g, settings), ShouldBeNil)

				back, s, err := Load(ctx, path)
				So(err, ShouldBeNil)
				So(back.Equal(g), ShouldBeTrue)
				So(s, ShouldResemble, settings)
			})
		}

		Convey("Compressed files are detected without the extension", func() {
			zpath := filepath.Join(dir, "packed.zst")
			So(Save(ctx, zpath, g, settings), ShouldBeNil)

			plain := filepath.Join(dir, "packed.bin")
			So(os.Rename(zpath, plain), ShouldBeNil)

			back, _, err := Load(ctx, plain)
			So(err, ShouldBeNil)
			So(back.Equal(g), ShouldBeTrue)
		})

		Convey("Saving into a missing directory is an IO error", func() {
			err := Save(ctx, filepath.Join(dir, "missing", "scene.json"), g, settings)
			So(errors.Is(err, ErrIO), ShouldBeTrue)
		})

		Convey("Overwriting keeps the existing file mode", func() {
			path := filepath.Join(dir, "private.json")
			So(Save(ctx, path, g, settings), ShouldBeNil)
			So(os.Chmod(path, 0600), ShouldBeNil)

			So(Save(ctx, path, g, settings), ShouldBeNil)
			fi, err := os.Stat(path)
			So(err, ShouldBeNil)
			So(fi.Mode().Perm(), ShouldEqual, os.FileMode(0600))
		})

		Convey("New files are created 0644", func() {
			path := filepath.Join(dir, "fresh.json")
			So(Save(ctx, path, g, settings), ShouldBeNil)
			fi, err := os.Stat(path)
			So(err, ShouldBeNil)
			So(fi.Mode().Perm(), ShouldEqual, os.FileMode(0644))
		})

		Convey("Overwriting an existing file replaces its contents", func() {
			path := filepath.Join(dir, "overwrite.json")
			So(Save(ctx, path, g, settings), ShouldBeNil)

			g.Apply(0, 0, world.ClearCell)
			So(Save(ctx, path, g, settings), ShouldBeNil)

			back, _, err := Load(ctx, path)
			So(err, ShouldBeNil)
			So(back.Read(0, 0), ShouldEqual, world.CellBlank)
		})
	})
}

func TestLoadFailures(t *testing.T) {
	Convey("Loading reports the right error kind", t, func() {
		ctx := context.Background()
		dir := t.TempDir()

		Convey("A missing file is an IO error", func() {
			_, _, err := Load(ctx, filepath.Join(dir, "nope.json"))
			So(errors.Is(err, ErrIO), ShouldBeTrue)

			var ioErr *IOError
			So(errors.As(err, &ioErr), ShouldBeTrue)
			So(ioErr.Op, ShouldEqual, "open")
			So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
		})

		Convey("A file without the default profile is malformed and names the file", func() {
			path := filepath.Join(dir, "bad.json")
			So(os.WriteFile(path, []byte(`{"scene":["x"],"configurations":{}}`), 0644), ShouldBeNil)

			_, _, err := Load(ctx, path)
			So(errors.Is(err, ErrMalformed), ShouldBeTrue)

			var mde *MalformedDocumentError
			So(errors.As(err, &mde), ShouldBeTrue)
			So(mde.Path, ShouldEqual, path)
		})

		Convey("A corrupt compressed file is an IO error", func() {
			path := filepath.Join(dir, "broken.json.zst")
			So(os.WriteFile(path, []byte("not zstd at all"), 0644), ShouldBeNil)

			_, _, err := Load(ctx, path)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrIO), ShouldBeTrue)
		})
	})
}
