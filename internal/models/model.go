package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/internal/templates"
)

// Model is a named backend model exposed by a provider.
type Model struct {
	ID            uuid.UUID `json:"id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	ModelName     string    `json:"model_name"`
	DisplayName   string    `json:"display_name"`
	MaxTokens     int       `json:"max_tokens"`
	ContextWindow int       `json:"context_window"`
	IsEnabled     bool      `json:"is_enabled"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create a model under a provider.
type CreateCommand struct {
	ModelName     string  `json:"model_name"`
	DisplayName   *string `json:"display_name,omitempty"`
	MaxTokens     int     `json:"max_tokens"`
	ContextWindow int     `json:"context_window"`
	IsEnabled     *bool   `json:"is_enabled,omitempty"`
	IsDefault     bool    `json:"is_default"`
}

// Validate checks the command's field constraints.
func (c CreateCommand) Validate() templates.FieldErrors {
	errs := make(templates.FieldErrors)
	if c.ModelName == "" {
		errs["model_name"] = "required"
	}
	if c.MaxTokens <= 0 {
		errs["max_tokens"] = "must be a positive integer"
	}
	if c.ContextWindow <= 0 {
		errs["context_window"] = "must be a positive integer"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResolvedDisplayName returns the display name, defaulting to the model name.
func (c CreateCommand) ResolvedDisplayName() string {
	if c.DisplayName != nil && *c.DisplayName != "" {
		return *c.DisplayName
	}
	return c.ModelName
}

// UpdateCommand contains the mutable model fields. Nil pointers leave the
// stored value unchanged. ProviderID and id are immutable.
type UpdateCommand struct {
	ModelName     *string `json:"model_name,omitempty"`
	DisplayName   *string `json:"display_name,omitempty"`
	MaxTokens     *int    `json:"max_tokens,omitempty"`
	ContextWindow *int    `json:"context_window,omitempty"`
	IsEnabled     *bool   `json:"is_enabled,omitempty"`
	IsDefault     *bool   `json:"is_default,omitempty"`
}

// Validate checks the command's field constraints.
func (c UpdateCommand) Validate() templates.FieldErrors {
	errs := make(templates.FieldErrors)
	if c.ModelName != nil && *c.ModelName == "" {
		errs["model_name"] = "required"
	}
	if c.MaxTokens != nil && *c.MaxTokens <= 0 {
		errs["max_tokens"] = "must be a positive integer"
	}
	if c.ContextWindow != nil && *c.ContextWindow <= 0 {
		errs["context_window"] = "must be a positive integer"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
