package providers

import (
	"time"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/internal/templates"
)

// ValidationStatus records the outcome of the last explicit test-then-persist
// action against a provider. Plain test calls never change it.
type ValidationStatus string

// Validation status constants.
const (
	StatusUnknown ValidationStatus = "unknown"
	StatusSuccess ValidationStatus = "success"
	StatusFailed  ValidationStatus = "failed"
)

// Provider is a configured instance of a backend template. Config holds the
// normalized field values; secret-typed values are masked on every read path.
type Provider struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"provider_name"`
	Category         string           `json:"provider_category"`
	Kind             templates.Kind   `json:"kind"`
	Config           map[string]any   `json:"config"`
	IsEnabled        bool             `json:"is_enabled"`
	IsDefault        bool             `json:"is_default"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// CreateCommand contains the data required to create a provider. Config must
// already be validated and normalized against the category's template.
type CreateCommand struct {
	Name      string
	Category  string
	Kind      templates.Kind
	Config    map[string]any
	IsEnabled bool
	IsDefault bool
}

// UpdateCommand contains the mutable provider fields. Nil pointers leave the
// stored value unchanged; a non-nil Config replaces the stored config and
// must already be validated against the provider's template.
type UpdateCommand struct {
	Name      *string
	Config    map[string]any
	IsEnabled *bool
	IsDefault *bool
}
