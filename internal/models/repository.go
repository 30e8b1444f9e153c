package models

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/pkg/query"
	"github.com/techlens/provider-lab/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a model registry backed by the given database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "models"),
	}
}

func (r *repo) List(ctx context.Context, providerID uuid.UUID) ([]Model, error) {
	if err := providerExists(ctx, r.db, providerID); err != nil {
		return nil, err
	}

	q, args := query.NewBuilder(projection, "ModelName").
		WhereEquals("ProviderID", providerID).
		Build()

	results, err := repository.QueryMany(ctx, r.db, q, args, scanModel)
	if err != nil {
		return nil, fmt.Errorf("query models: %w", err)
	}
	return results, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Model, error) {
	q, args := query.NewBuilder(projection, "ModelName").BuildSingle("ID", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanModel)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}
	return &m, nil
}

func (r *repo) Create(ctx context.Context, providerID uuid.UUID, cmd CreateCommand) (*Model, error) {
	q := `
		INSERT INTO models (provider_id, model_name, display_name, max_tokens,
		                    context_window, is_enabled, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, provider_id, model_name, display_name, max_tokens,
		          context_window, is_enabled, is_default, created_at, updated_at`

	enabled := true
	if cmd.IsEnabled != nil {
		enabled = *cmd.IsEnabled
	}

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Model, error) {
		if err := providerExists(ctx, tx, providerID); err != nil {
			return Model{}, err
		}
		if cmd.IsDefault {
			if err := clearDefault(ctx, tx, providerID, uuid.Nil); err != nil {
				return Model{}, err
			}
		}
		return repository.QueryOne(ctx, tx, q, []any{
			providerID, cmd.ModelName, cmd.ResolvedDisplayName(),
			cmd.MaxTokens, cmd.ContextWindow, enabled, cmd.IsDefault,
		}, scanModel)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}

	r.logger.Info("model created",
		"id", m.ID, "provider_id", m.ProviderID, "name", m.ModelName, "default", m.IsDefault)
	return &m, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Model, error) {
	q := `
		UPDATE models
		SET model_name = $2, display_name = $3, max_tokens = $4,
		    context_window = $5, is_enabled = $6, is_default = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, provider_id, model_name, display_name, max_tokens,
		          context_window, is_enabled, is_default, created_at, updated_at`

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Model, error) {
		existing, err := lockModel(ctx, tx, id)
		if err != nil {
			return Model{}, err
		}

		name := existing.ModelName
		if cmd.ModelName != nil {
			name = *cmd.ModelName
		}
		displayName := existing.DisplayName
		if cmd.DisplayName != nil {
			displayName = *cmd.DisplayName
		}
		maxTokens := existing.MaxTokens
		if cmd.MaxTokens != nil {
			maxTokens = *cmd.MaxTokens
		}
		contextWindow := existing.ContextWindow
		if cmd.ContextWindow != nil {
			contextWindow = *cmd.ContextWindow
		}
		enabled := existing.IsEnabled
		if cmd.IsEnabled != nil {
			enabled = *cmd.IsEnabled
		}

		isDefault := existing.IsDefault
		if cmd.IsDefault != nil {
			isDefault = *cmd.IsDefault
		}
		if isDefault && !existing.IsDefault {
			if err := clearDefault(ctx, tx, existing.ProviderID, id); err != nil {
				return Model{}, err
			}
		}

		return repository.QueryOne(ctx, tx, q, []any{
			id, name, displayName, maxTokens, contextWindow, enabled, isDefault,
		}, scanModel)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}

	r.logger.Info("model updated", "id", m.ID, "name", m.ModelName)
	return &m, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(ctx, r.db, "DELETE FROM models WHERE id = $1", id)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}

	r.logger.Info("model deleted", "id", id)
	return nil
}

// clearDefault demotes the provider's current default model, excluding the
// given model id. The partial unique index on (provider_id) WHERE is_default
// backstops concurrent swaps.
func clearDefault(ctx context.Context, tx *sql.Tx, providerID, exclude uuid.UUID) error {
	q := `
		UPDATE models SET is_default = FALSE, updated_at = NOW()
		WHERE provider_id = $1 AND is_default AND id <> $2`

	if _, err := tx.ExecContext(ctx, q, providerID, exclude); err != nil {
		return fmt.Errorf("clear default model: %w", err)
	}
	return nil
}

func providerExists(ctx context.Context, q repository.Querier, providerID uuid.UUID) error {
	var exists bool
	err := q.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM providers WHERE id = $1)", providerID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check provider: %w", err)
	}
	if !exists {
		return ErrProviderNotFound
	}
	return nil
}

func lockModel(ctx context.Context, tx *sql.Tx, id uuid.UUID) (Model, error) {
	q := `
		SELECT id, provider_id, model_name, display_name, max_tokens,
		       context_window, is_enabled, is_default, created_at, updated_at
		FROM models WHERE id = $1 FOR UPDATE`

	return repository.QueryOne(ctx, tx, q, []any{id}, scanModel)
}
