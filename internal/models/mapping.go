package models

import (
	"github.com/techlens/provider-lab/pkg/query"
	"github.com/techlens/provider-lab/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "models", "m").
	Project("id", "ID").
	Project("provider_id", "ProviderID").
	Project("model_name", "ModelName").
	Project("display_name", "DisplayName").
	Project("max_tokens", "MaxTokens").
	Project("context_window", "ContextWindow").
	Project("is_enabled", "IsEnabled").
	Project("is_default", "IsDefault").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanModel(s repository.Scanner) (Model, error) {
	var m Model
	err := s.Scan(
		&m.ID, &m.ProviderID, &m.ModelName, &m.DisplayName,
		&m.MaxTokens, &m.ContextWindow, &m.IsEnabled, &m.IsDefault,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
