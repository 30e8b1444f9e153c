package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/internal/models"
	"github.com/techlens/provider-lab/internal/templates"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&ProviderSeeder{catalog: templates.NewCatalog()})
}

// ProviderSeedData represents the JSON structure for provider seed files.
type ProviderSeedData struct {
	Providers []ProviderSeed `json:"providers"`
}

// ProviderSeed is a provider entry plus the models to register under it.
type ProviderSeed struct {
	Name      string                 `json:"provider_name"`
	Category  string                 `json:"provider_category"`
	Config    map[string]any         `json:"config"`
	IsEnabled bool                   `json:"is_enabled"`
	IsDefault bool                   `json:"is_default"`
	Models    []models.CreateCommand `json:"models"`
}

// ProviderSeeder implements Seeder for providers and their models.
// It loads seed data from an embedded file or an external file path.
type ProviderSeeder struct {
	catalog *templates.Catalog
	file    string
}

// Name returns "providers" as the seeder identifier.
func (s *ProviderSeeder) Name() string {
	return "providers"
}

// Description returns a human-readable description of this seeder.
func (s *ProviderSeeder) Description() string {
	return "Seeds providers and their model registrations"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *ProviderSeeder) SetFile(path string) {
	s.file = path
}

// Seed validates each provider config against its backend template and
// saves providers and models to the database. Uses save semantics
// (insert or update) for idempotent execution.
func (s *ProviderSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, p := range data.Providers {
		tmpl, err := s.catalog.Get(p.Category)
		if err != nil {
			return fmt.Errorf("provider %s: %w", p.Name, err)
		}

		config, fieldErrs := templates.Validate(tmpl, p.Config)
		if fieldErrs != nil {
			return fmt.Errorf("provider %s: %w", p.Name, fieldErrs)
		}

		providerID, err := s.saveProvider(ctx, tx, tmpl, p, config)
		if err != nil {
			return fmt.Errorf("save provider %s: %w", p.Name, err)
		}

		for _, m := range p.Models {
			if err := s.saveModel(ctx, tx, providerID, m); err != nil {
				return fmt.Errorf("save model %s for provider %s: %w", m.ModelName, p.Name, err)
			}
		}
	}

	return nil
}

func (s *ProviderSeeder) loadSeedData() (*ProviderSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/providers.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data ProviderSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

func (s *ProviderSeeder) saveProvider(
	ctx context.Context,
	tx *sql.Tx,
	tmpl *templates.Template,
	p ProviderSeed,
	config map[string]any,
) (uuid.UUID, error) {
	configJSON, err := json.Marshal(config)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM providers WHERE name = $1 AND category = $2`,
		p.Name, p.Category,
	).Scan(&id)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = tx.QueryRowContext(ctx, `
			INSERT INTO providers (name, category, kind, config, is_enabled, is_default)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			p.Name, p.Category, string(tmpl.Kind), configJSON, p.IsEnabled, p.IsDefault,
		).Scan(&id)
		return id, err

	case err != nil:
		return uuid.Nil, err

	default:
		_, err = tx.ExecContext(ctx, `
			UPDATE providers
			SET config = $2, is_enabled = $3, is_default = $4, updated_at = NOW()
			WHERE id = $1`,
			id, configJSON, p.IsEnabled, p.IsDefault,
		)
		return id, err
	}
}

func (s *ProviderSeeder) saveModel(ctx context.Context, tx *sql.Tx, providerID uuid.UUID, cmd models.CreateCommand) error {
	if fieldErrs := cmd.Validate(); fieldErrs != nil {
		return fieldErrs
	}

	enabled := true
	if cmd.IsEnabled != nil {
		enabled = *cmd.IsEnabled
	}

	displayName := cmd.ResolvedDisplayName()

	var id uuid.UUID
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM models WHERE provider_id = $1 AND model_name = $2`,
		providerID, cmd.ModelName,
	).Scan(&id)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx, `
			INSERT INTO models (provider_id, model_name, display_name, max_tokens,
			                    context_window, is_enabled, is_default)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			providerID, cmd.ModelName, displayName, cmd.MaxTokens,
			cmd.ContextWindow, enabled, cmd.IsDefault,
		)
		return err

	case err != nil:
		return err

	default:
		_, err = tx.ExecContext(ctx, `
			UPDATE models
			SET display_name = $2, max_tokens = $3, context_window = $4,
			    is_enabled = $5, is_default = $6, updated_at = NOW()
			WHERE id = $1`,
			id, displayName, cmd.MaxTokens, cmd.ContextWindow, enabled, cmd.IsDefault,
		)
		return err
	}
}
