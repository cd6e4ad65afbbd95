package scene

import (
	"errors"
	"sort"
)

// TemplateRegistry holds the built-in templates and provides lookup.
type TemplateRegistry struct {
	byID map[string]*TemplateDef
	all  []TemplateDef
}

// NewTemplateRegistry creates a registry from loaded template definitions.
func NewTemplateRegistry(templates []TemplateDef) *TemplateRegistry {
	r := &TemplateRegistry{
		byID: make(map[string]*TemplateDef),
		all:  templates,
	}
	for i := range templates {
		r.byID[templates[i].ID] = &templates[i]
	}
	return r
}

// LoadTemplateRegistry loads and creates a registry from the embedded templates.json.
func LoadTemplateRegistry() (*TemplateRegistry, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, errors.New("no templates loaded from templates.json")
	}
	return NewTemplateRegistry(templates), nil
}

// GetByID returns the template with the given ID, or nil if not found.
func (r *TemplateRegistry) GetByID(id string) *TemplateDef {
	return r.byID[id]
}

// IDs returns the template identifiers in sorted order.
func (r *TemplateRegistry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all template definitions.
func (r *TemplateRegistry) All() []TemplateDef {
	return r.all
}

// Count returns the number of templates in the registry.
func (r *TemplateRegistry) Count() int {
	return len(r.all)
}
