package scene

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/worldedit/internal/telemetry"
	"github.com/samdwyer/worldedit/internal/world"
)

// Load reads a scene file and rebuilds its grid and settings.
// Nothing is returned unless the whole file parsed cleanly.
func Load(ctx context.Context, path string) (*world.Grid, Settings, error) {
	_, span := telemetry.Tracer("scene").Start(ctx, "scene.load")
	defer span.End()
	span.SetAttributes(attribute.String("scene.path", path))

	d, err := ReadFile(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return nil, Settings{}, err
	}

	g, s, err := ToGridAndSettings(d)
	if err != nil {
		err = withPath(err, path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed document")
		return nil, Settings{}, err
	}

	span.SetAttributes(
		attribute.Int("scene.width", g.Width()),
		attribute.Int("scene.length", g.Length()),
	)
	return g, s, nil
}

// Save writes the grid and settings to path.
func Save(ctx context.Context, path string, g *world.Grid, s Settings) error {
	_, span := telemetry.Tracer("scene").Start(ctx, "scene.save")
	defer span.End()
	span.SetAttributes(
		attribute.String("scene.path", path),
		attribute.Int("scene.width", g.Width()),
		attribute.Int("scene.length", g.Length()),
	)

	if err := WriteFile(path, FromGrid(g, s)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return err
	}
	return nil
}
