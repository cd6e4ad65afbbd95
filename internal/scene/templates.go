package scene

import (
	"github.com/samdwyer/worldedit/data"
	"github.com/samdwyer/worldedit/internal/world"
)

// TemplateDef is a built-in starting scene loaded from JSON.
type TemplateDef struct {
	ID                  string   `json:"id"`          // Unique identifier (e.g., "corridor")
	Name                string   `json:"name"`        // Display name
	Description         string   `json:"description"` // One-line summary for listings
	Scene               []string `json:"scene"`       // Rows, bottom row first
	ActionsLimit        Text     `json:"actions_limit"`
	InitialBeepersCount Text     `json:"initial_beepers_count"`
}

// Document returns the template as a scene document.
// Empty settings fall back to the defaults.
func (t *TemplateDef) Document() Document {
	p := Profile{
		InitialBeepersCount: t.InitialBeepersCount,
		ActionsLimit:        t.ActionsLimit,
	}
	if p.InitialBeepersCount == "" {
		p.InitialBeepersCount = DefaultInitialBeepersCount
	}
	if p.ActionsLimit == "" {
		p.ActionsLimit = DefaultActionsLimit
	}
	return Document{
		Scene:          append([]string(nil), t.Scene...),
		Configurations: map[string]Profile{DefaultProfile: p},
	}
}

// Grid builds the template's grid.
func (t *TemplateDef) Grid() (*world.Grid, Settings, error) {
	return ToGridAndSettings(t.Document())
}

// TemplatesFile represents the structure of templates.json.
type TemplatesFile struct {
	Templates []TemplateDef `json:"templates"`
}

// LoadTemplates loads template definitions from the embedded templates.json file.
func LoadTemplates() ([]TemplateDef, error) {
	file, err := loadJSON[TemplatesFile](data.FS(), "templates.json")
	if err != nil {
		return nil, err
	}
	return file.Templates, nil
}
