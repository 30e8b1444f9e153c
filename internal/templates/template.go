// Package templates implements the static backend template catalog and the
// configuration validator. A template describes one backend category's
// configuration shape; validation normalizes a submitted config against it.
package templates

// Kind classifies a backend category by where it runs.
type Kind string

// Kind constants. Cloud kinds require egress credentials; local kinds assume
// a reachable endpoint with no credential.
const (
	KindCloud Kind = "cloud"
	KindLocal Kind = "local"
)

// ModelPreset is a suggested model definition usable as a one-click seed
// when creating models under a provider.
type ModelPreset struct {
	ModelName     string `json:"model_name"`
	DisplayName   string `json:"display_name"`
	MaxTokens     int    `json:"max_tokens"`
	ContextWindow int    `json:"context_window"`
}

// Template is an immutable descriptor of a backend category. Templates are
// registered at process start and never mutated afterward, so they are safe
// for concurrent reads without synchronization.
type Template struct {
	Category      string
	Name          string
	Description   string
	Kind          Kind
	ConfigFields  []Field
	DefaultModels []ModelPreset
}

// Field returns the declared field with the given name.
func (t *Template) Field(name string) (Field, bool) {
	for _, f := range t.ConfigFields {
		if f.Spec().Name == name {
			return f, true
		}
	}
	return nil, false
}

// IsSecret reports whether the named field is secret-typed.
func (t *Template) IsSecret(name string) bool {
	f, ok := t.Field(name)
	return ok && f.Kind() == FieldSecret
}

// SecretFields returns the names of all secret-typed fields in declaration order.
func (t *Template) SecretFields() []string {
	var names []string
	for _, f := range t.ConfigFields {
		if f.Kind() == FieldSecret {
			names = append(names, f.Spec().Name)
		}
	}
	return names
}
