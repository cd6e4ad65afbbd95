package scene

import "testing"

func TestLoadTemplates(t *testing.T) {
	templates, err := LoadTemplates()
	if err != nil {
		t.Fatalf("Failed to load templates: %v", err)
	}

	expectedIDs := map[string]bool{"empty": false, "corridor": false, "room": false, "beeper-field": false}
	for _, tpl := range templates {
		if _, ok := expectedIDs[tpl.ID]; ok {
			expectedIDs[tpl.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected template %q not found", id)
		}
	}
}

func TestTemplateRegistry(t *testing.T) {
	registry, err := LoadTemplateRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != len(registry.IDs()) {
		t.Errorf("Count() = %d, IDs() has %d entries", registry.Count(), len(registry.IDs()))
	}

	corridor := registry.GetByID("corridor")
	if corridor == nil {
		t.Fatal("Corridor not found by ID")
	}
	if corridor.Name != "Corridor" {
		t.Errorf("Expected name 'Corridor', got %q", corridor.Name)
	}

	if registry.GetByID("nonexistent") != nil {
		t.Error("GetByID should return nil for unknown templates")
	}
}

func TestTemplatesBuildGrids(t *testing.T) {
	registry, err := LoadTemplateRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	for _, tpl := range registry.All() {
		g, s, err := tpl.Grid()
		if err != nil {
			t.Errorf("template %q: Grid() failed: %v", tpl.ID, err)
			continue
		}
		for i, row := range tpl.Scene {
			if len(row) != g.Width() {
				t.Errorf("template %q row %d has %d cells, want %d", tpl.ID, i, len(row), g.Width())
			}
		}
		if s.ActionsLimit == "" || s.InitialBeepersCount == "" {
			t.Errorf("template %q has empty settings: %+v", tpl.ID, s)
		}
	}
}

func TestTemplateDocumentDefaults(t *testing.T) {
	tpl := TemplateDef{ID: "bare", Scene: []string{"x"}}
	s, ok := tpl.Document().Settings()
	if !ok {
		t.Fatal("template document has no default profile")
	}
	if s != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults %+v", s, DefaultSettings())
	}
}
