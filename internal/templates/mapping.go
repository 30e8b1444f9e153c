package templates

// TemplateView is the wire representation of a template.
type TemplateView struct {
	Category      string        `json:"category"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Kind          Kind          `json:"kind"`
	ConfigFields  []FieldView   `json:"config_fields"`
	DefaultModels []ModelPreset `json:"default_models"`
}

// FieldView is the wire representation of a field declaration.
type FieldView struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldKind `json:"type"`
	Required bool      `json:"required"`
	Default  any       `json:"default,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// ListView groups templates by kind for the catalog listing endpoint.
type ListView struct {
	CloudProviders []TemplateView `json:"cloud_providers"`
	LocalProviders []TemplateView `json:"local_providers"`
}

// ToView maps a template to its wire representation.
func ToView(t *Template) TemplateView {
	fields := make([]FieldView, 0, len(t.ConfigFields))
	for _, f := range t.ConfigFields {
		spec := f.Spec()
		view := FieldView{
			Name:     spec.Name,
			Label:    spec.Label,
			Type:     f.Kind(),
			Required: spec.Required,
		}
		if d, ok := f.DefaultValue(); ok {
			view.Default = d
		}
		if enum, ok := f.(EnumField); ok {
			view.Options = enum.Options
		}
		fields = append(fields, view)
	}

	models := t.DefaultModels
	if models == nil {
		models = []ModelPreset{}
	}

	return TemplateView{
		Category:      t.Category,
		Name:          t.Name,
		Description:   t.Description,
		Kind:          t.Kind,
		ConfigFields:  fields,
		DefaultModels: models,
	}
}

func toViews(templates []*Template) []TemplateView {
	views := make([]TemplateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, ToView(t))
	}
	return views
}
