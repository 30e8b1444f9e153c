package templates_test

import (
	"errors"
	"testing"

	"github.com/techlens/provider-lab/internal/templates"
)

func TestNewCatalog_RegistersBuiltins(t *testing.T) {
	catalog := templates.NewCatalog()

	categories := []string{
		templates.CategoryOpenAI,
		templates.CategoryAnthropic,
		templates.CategoryDeepSeek,
		templates.CategoryAzureOpenAI,
		templates.CategoryOllama,
	}

	for _, category := range categories {
		t.Run(category, func(t *testing.T) {
			tmpl, err := catalog.Get(category)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", category, err)
			}

			if tmpl.Category != category {
				t.Errorf("Category = %q, want %q", tmpl.Category, category)
			}

			if len(tmpl.ConfigFields) == 0 {
				t.Error("template has no config fields")
			}
		})
	}
}

func TestCatalog_Get_Unknown(t *testing.T) {
	catalog := templates.NewCatalog()

	_, err := catalog.Get("mystery-backend")
	if !errors.Is(err, templates.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestCatalog_ListByKind(t *testing.T) {
	catalog := templates.NewCatalog()

	cloud := catalog.ListByKind(templates.KindCloud)
	local := catalog.ListByKind(templates.KindLocal)

	if len(cloud) != 4 {
		t.Errorf("len(cloud) = %d, want 4", len(cloud))
	}

	if len(local) != 1 {
		t.Errorf("len(local) = %d, want 1", len(local))
	}

	if local[0].Category != templates.CategoryOllama {
		t.Errorf("local[0].Category = %q, want %q", local[0].Category, templates.CategoryOllama)
	}
}

func TestCatalog_CloudTemplatesRequireAPIKey(t *testing.T) {
	catalog := templates.NewCatalog()

	for _, tmpl := range catalog.ListByKind(templates.KindCloud) {
		t.Run(tmpl.Category, func(t *testing.T) {
			f, ok := tmpl.Field("api_key")
			if !ok {
				t.Fatal("cloud template missing api_key field")
			}

			if f.Kind() != templates.FieldSecret {
				t.Errorf("api_key kind = %q, want secret", f.Kind())
			}

			if !f.Spec().Required {
				t.Error("api_key should be required")
			}
		})
	}
}

func TestCatalog_OllamaEndpointDefault(t *testing.T) {
	catalog := templates.NewCatalog()

	tmpl, err := catalog.Get(templates.CategoryOllama)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	config, errs := templates.Validate(tmpl, map[string]any{})
	if errs != nil {
		t.Fatalf("Validate() errors = %v", errs)
	}

	if config["endpoint"] != "http://localhost:11434" {
		t.Errorf("endpoint = %v, want default local endpoint", config["endpoint"])
	}
}

func TestCatalog_DefaultModelPresets(t *testing.T) {
	catalog := templates.NewCatalog()

	for _, tmpl := range catalog.List() {
		t.Run(tmpl.Category, func(t *testing.T) {
			// Azure model identity is the deployment name, so it ships
			// without presets.
			if len(tmpl.DefaultModels) == 0 && tmpl.Category != templates.CategoryAzureOpenAI {
				t.Error("template has no default model presets")
			}

			for _, preset := range tmpl.DefaultModels {
				if preset.ModelName == "" {
					t.Error("preset missing model name")
				}
			}
		})
	}
}

func TestTemplate_SecretFields(t *testing.T) {
	tmpl := testTemplate()

	secrets := tmpl.SecretFields()
	if len(secrets) != 1 || secrets[0] != "api_key" {
		t.Errorf("SecretFields() = %v, want [api_key]", secrets)
	}
}
