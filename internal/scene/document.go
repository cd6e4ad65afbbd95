// Package scene converts grids to and from persisted scene documents.
package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/worldedit/internal/world"
)

// DefaultProfile is the only configuration profile the editor reads or writes.
const DefaultProfile = "default"

// Default settings for a new scene.
const (
	DefaultActionsLimit        = "1000"
	DefaultInitialBeepersCount = "1000"
)

// Settings holds the scalar values stored alongside a scene.
// Both are free text; the simulator reads them as integers.
type Settings struct {
	ActionsLimit        string
	InitialBeepersCount string
}

// DefaultSettings returns the settings used for a new scene.
func DefaultSettings() Settings {
	return Settings{
		ActionsLimit:        DefaultActionsLimit,
		InitialBeepersCount: DefaultInitialBeepersCount,
	}
}

// Document is the persisted form of a scene.
// Only the default profile is decoded; other profiles are carried through
// verbatim so that re-encoding a document does not lose them.
type Document struct {
	Scene          []string
	Configurations map[string]Profile

	extraProfiles map[string]json.RawMessage
}

type documentJSON struct {
	Scene          []string                   `json:"scene"`
	Configurations map[string]json.RawMessage `json:"configurations"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = Document{Scene: raw.Scene}
	for name, msg := range raw.Configurations {
		if name != DefaultProfile {
			if d.extraProfiles == nil {
				d.extraProfiles = make(map[string]json.RawMessage)
			}
			d.extraProfiles[name] = msg
			continue
		}
		var p Profile
		if err := json.Unmarshal(msg, &p); err != nil {
			return fmt.Errorf("configurations.%s: %w", name, err)
		}
		d.Configurations = map[string]Profile{DefaultProfile: p}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Agent glyphs are not HTML-escaped.
func (d Document) MarshalJSON() ([]byte, error) {
	out := documentJSON{
		Scene:          d.Scene,
		Configurations: make(map[string]json.RawMessage, len(d.Configurations)+len(d.extraProfiles)),
	}
	for name, msg := range d.extraProfiles {
		out.Configurations[name] = msg
	}
	for name, p := range d.Configurations {
		b, err := marshalRaw(p)
		if err != nil {
			return nil, err
		}
		out.Configurations[name] = b
	}
	return marshalRaw(out)
}

func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Profile is a named configuration bundle inside a document.
type Profile struct {
	InitialBeepersCount Text `json:"initial_beepers_count"`
	ActionsLimit        Text `json:"actions_limit"`
}

// Text is a string that also accepts a bare JSON number when decoding.
// Numbers keep their literal decimal text.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("expected a string or a number")
	}
	*t = Text(n.String())
	return nil
}

// FromGrid builds the document for a grid and its settings.
func FromGrid(g *world.Grid, s Settings) Document {
	return Document{
		Scene: g.ExportRows(),
		Configurations: map[string]Profile{
			DefaultProfile: {
				InitialBeepersCount: Text(s.InitialBeepersCount),
				ActionsLimit:        Text(s.ActionsLimit),
			},
		},
	}
}

// ToGridAndSettings rebuilds the grid and settings stored in a document.
// The grid is as wide as the first row and as long as the row count;
// shorter rows are padded with blank cells and longer rows are cut.
func ToGridAndSettings(d Document) (*world.Grid, Settings, error) {
	if len(d.Scene) == 0 {
		return nil, Settings{}, &MalformedDocumentError{Reason: "scene has no rows"}
	}
	profile, ok := d.Configurations[DefaultProfile]
	if !ok {
		return nil, Settings{}, &MalformedDocumentError{Reason: "missing configurations." + DefaultProfile}
	}

	g, err := world.New(len(d.Scene[0]), len(d.Scene), d.Scene)
	if err != nil {
		return nil, Settings{}, &MalformedDocumentError{Reason: "bad scene dimensions", Err: err}
	}

	return g, Settings{
		ActionsLimit:        string(profile.ActionsLimit),
		InitialBeepersCount: string(profile.InitialBeepersCount),
	}, nil
}

// Settings returns the default profile's settings, or false if it is absent.
func (d Document) Settings() (Settings, bool) {
	p, ok := d.Configurations[DefaultProfile]
	if !ok {
		return Settings{}, false
	}
	return Settings{
		ActionsLimit:        string(p.ActionsLimit),
		InitialBeepersCount: string(p.InitialBeepersCount),
	}, true
}

// Dimensions reports the width and length the document describes.
func (d Document) Dimensions() (width, length int) {
	if len(d.Scene) == 0 {
		return 0, 0
	}
	return len(d.Scene[0]), len(d.Scene)
}

// String returns the scene rows top row first, one per line.
func (d Document) String() string {
	rows := make([]string, len(d.Scene))
	for i, row := range d.Scene {
		rows[len(d.Scene)-1-i] = row
	}
	return strings.Join(rows, "\n")
}
