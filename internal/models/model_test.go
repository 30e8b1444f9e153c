package models_test

import (
	"testing"

	"github.com/techlens/provider-lab/internal/models"
)

func TestCreateCommand_Validate(t *testing.T) {
	tests := []struct {
		name       string
		cmd        models.CreateCommand
		wantFields []string
	}{
		{
			name: "valid command",
			cmd: models.CreateCommand{
				ModelName:     "gpt-4o",
				MaxTokens:     16384,
				ContextWindow: 128000,
			},
		},
		{
			name: "missing model name",
			cmd: models.CreateCommand{
				MaxTokens:     16384,
				ContextWindow: 128000,
			},
			wantFields: []string{"model_name"},
		},
		{
			name: "non-positive limits",
			cmd: models.CreateCommand{
				ModelName:     "gpt-4o",
				MaxTokens:     0,
				ContextWindow: -1,
			},
			wantFields: []string{"max_tokens", "context_window"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.cmd.Validate()

			if len(tt.wantFields) == 0 {
				if errs != nil {
					t.Errorf("Validate() = %v, want nil", errs)
				}
				return
			}

			if errs == nil {
				t.Fatal("Validate() = nil, want errors")
			}

			for _, field := range tt.wantFields {
				if errs[field] == "" {
					t.Errorf("Validate() missing error for %q, got %v", field, errs)
				}
			}
		})
	}
}

func TestCreateCommand_ResolvedDisplayName(t *testing.T) {
	display := "GPT-4o"
	empty := ""

	tests := []struct {
		name string
		cmd  models.CreateCommand
		want string
	}{
		{"explicit display name", models.CreateCommand{ModelName: "gpt-4o", DisplayName: &display}, "GPT-4o"},
		{"nil falls back to model name", models.CreateCommand{ModelName: "gpt-4o"}, "gpt-4o"},
		{"empty falls back to model name", models.CreateCommand{ModelName: "gpt-4o", DisplayName: &empty}, "gpt-4o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.ResolvedDisplayName(); got != tt.want {
				t.Errorf("ResolvedDisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdateCommand_Validate(t *testing.T) {
	name := "gpt-4o"
	emptyName := ""
	zero := 0
	positive := 1024

	tests := []struct {
		name       string
		cmd        models.UpdateCommand
		wantFields []string
	}{
		{"empty patch is valid", models.UpdateCommand{}, nil},
		{"valid partial patch", models.UpdateCommand{ModelName: &name, MaxTokens: &positive}, nil},
		{"empty name rejected", models.UpdateCommand{ModelName: &emptyName}, []string{"model_name"}},
		{"zero max tokens rejected", models.UpdateCommand{MaxTokens: &zero}, []string{"max_tokens"}},
		{"zero context window rejected", models.UpdateCommand{ContextWindow: &zero}, []string{"context_window"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.cmd.Validate()

			if len(tt.wantFields) == 0 {
				if errs != nil {
					t.Errorf("Validate() = %v, want nil", errs)
				}
				return
			}

			if errs == nil {
				t.Fatal("Validate() = nil, want errors")
			}

			for _, field := range tt.wantFields {
				if errs[field] == "" {
					t.Errorf("Validate() missing error for %q, got %v", field, errs)
				}
			}
		})
	}
}
