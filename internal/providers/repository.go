package providers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/internal/templates"
	"github.com/techlens/provider-lab/pkg/pagination"
	"github.com/techlens/provider-lab/pkg/query"
	"github.com/techlens/provider-lab/pkg/repository"
)

type repo struct {
	db         *sql.DB
	catalog    *templates.Catalog
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a provider registry backed by the given database. The catalog
// supplies the secrecy declarations used to mask config values on read.
func New(db *sql.DB, catalog *templates.Catalog, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		catalog:    catalog,
		logger:     logger.With("system", "providers"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Provider], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, "Name").
		WhereSearch(page.Search, "Name", "Category").
		OrderBy(sortField(page.SortBy), page.Descending)

	filters.Apply(qb)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count providers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	results, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProvider)
	if err != nil {
		return nil, fmt.Errorf("query providers: %w", err)
	}

	for i := range results {
		r.mask(&results[i])
	}

	result := pagination.NewPageResult(results, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Provider, error) {
	p, err := r.FindWithSecrets(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mask(p)
	return p, nil
}

func (r *repo) FindWithSecrets(ctx context.Context, id uuid.UUID) (*Provider, error) {
	q, args := query.NewBuilder(projection, "Name").BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProvider)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Provider, error) {
	config, err := json.Marshal(cmd.Config)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	q := `
		INSERT INTO providers (name, category, kind, config, is_enabled, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, category, kind, config, is_enabled, is_default,
		          validation_status, created_at, updated_at`

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Provider, error) {
		if cmd.IsDefault {
			if err := r.clearDefault(ctx, tx, uuid.Nil); err != nil {
				return Provider{}, err
			}
		}
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Name, cmd.Category, cmd.Kind, config, cmd.IsEnabled, cmd.IsDefault,
		}, scanProvider)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}

	r.logger.Info("provider created",
		"id", p.ID, "name", p.Name, "category", p.Category, "default", p.IsDefault)

	r.mask(&p)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Provider, error) {
	q := `
		UPDATE providers
		SET name = $2, config = $3, is_enabled = $4, is_default = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, category, kind, config, is_enabled, is_default,
		          validation_status, created_at, updated_at`

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Provider, error) {
		existing, err := lockProvider(ctx, tx, id)
		if err != nil {
			return Provider{}, err
		}

		name := existing.Name
		if cmd.Name != nil {
			name = *cmd.Name
		}

		configMap := existing.Config
		if cmd.Config != nil {
			configMap = cmd.Config
		}
		config, err := json.Marshal(configMap)
		if err != nil {
			return Provider{}, fmt.Errorf("encode config: %w", err)
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
			if err := r.clearDefault(ctx, tx, id); err != nil {
				return Provider{}, err
			}
		}

		return repository.QueryOne(ctx, tx, q, []any{
			id, name, config, enabled, isDefault,
		}, scanProvider)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}

	r.logger.Info("provider updated", "id", p.ID, "name", p.Name)

	r.mask(&p)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	// Models are removed by the ON DELETE CASCADE constraint inside the
	// same statement, so readers never observe a partial cascade.
	err := repository.ExecExpectOne(ctx, r.db, "DELETE FROM providers WHERE id = $1", id)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}

	r.logger.Info("provider deleted", "id", id)
	return nil
}

func (r *repo) SetValidationStatus(ctx context.Context, id uuid.UUID, status ValidationStatus) error {
	q := `UPDATE providers SET validation_status = $2, updated_at = NOW() WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id, status); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDefaultConflict)
	}

	r.logger.Info("validation status recorded", "id", id, "status", status)
	return nil
}

// clearDefault demotes the current default provider, excluding the given id.
// Combined with the partial unique index on is_default, concurrent default
// swaps either serialize on the demoted row or surface as ErrDefaultConflict.
func (r *repo) clearDefault(ctx context.Context, tx *sql.Tx, exclude uuid.UUID) error {
	q := `UPDATE providers SET is_default = FALSE, updated_at = NOW() WHERE is_default AND id <> $1`
	if _, err := tx.ExecContext(ctx, q, exclude); err != nil {
		return fmt.Errorf("clear default provider: %w", err)
	}
	return nil
}

func lockProvider(ctx context.Context, tx *sql.Tx, id uuid.UUID) (Provider, error) {
	q := `
		SELECT id, name, category, kind, config, is_enabled, is_default,
		       validation_status, created_at, updated_at
		FROM providers WHERE id = $1 FOR UPDATE`

	return repository.QueryOne(ctx, tx, q, []any{id}, scanProvider)
}

// sortField restricts client sort keys to projected fields.
func sortField(s string) string {
	switch s {
	case "name":
		return "Name"
	case "category":
		return "Category"
	case "kind":
		return "Kind"
	case "created_at":
		return "CreatedAt"
	case "updated_at":
		return "UpdatedAt"
	default:
		return ""
	}
}

// mask replaces secret config values with the placeholder before a provider
// leaves the registry on a read path.
func (r *repo) mask(p *Provider) {
	t, err := r.catalog.Get(p.Category)
	if err != nil {
		// Row references a category no longer registered; without the
		// template the secrecy of each field is unknown, so expose nothing.
		p.Config = nil
		return
	}
	p.Config = templates.MaskSecrets(t, p.Config)
}
