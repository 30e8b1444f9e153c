package providers_test

import (
	"net/url"
	"testing"

	"github.com/techlens/provider-lab/internal/providers"
)

func TestFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantCategory *string
		wantKind     *string
		wantEnabled  *bool
	}{
		{
			name:  "empty query",
			query: "",
		},
		{
			name:         "category only",
			query:        "category=openai",
			wantCategory: strPtr("openai"),
		},
		{
			name:     "kind only",
			query:    "kind=local",
			wantKind: strPtr("local"),
		},
		{
			name:        "enabled true",
			query:       "enabled=true",
			wantEnabled: boolPtr(true),
		},
		{
			name:        "enabled false",
			query:       "enabled=false",
			wantEnabled: boolPtr(false),
		},
		{
			name:  "invalid enabled ignored",
			query: "enabled=maybe",
		},
		{
			name:         "combined",
			query:        "category=ollama&kind=local&enabled=true",
			wantCategory: strPtr("ollama"),
			wantKind:     strPtr("local"),
			wantEnabled:  boolPtr(true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.query, err)
			}

			f := providers.FiltersFromQuery(values)

			assertPtr(t, "Category", f.Category, tt.wantCategory)
			assertPtr(t, "Kind", f.Kind, tt.wantKind)
			assertPtr(t, "Enabled", f.Enabled, tt.wantEnabled)
		})
	}
}

func assertPtr[T comparable](t *testing.T, field string, got, want *T) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %v", field, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
