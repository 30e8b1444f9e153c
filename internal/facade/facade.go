package facade

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/internal/models"
	"github.com/techlens/provider-lab/internal/providers"
	"github.com/techlens/provider-lab/internal/templates"
	"github.com/techlens/provider-lab/internal/tester"
	"github.com/techlens/provider-lab/pkg/pagination"
)

type facade struct {
	catalog   *templates.Catalog
	providers providers.System
	models    models.System
	tester    tester.System
	logger    *slog.Logger
}

// New creates the provider facade over the given subsystems.
func New(
	catalog *templates.Catalog,
	providerSys providers.System,
	modelSys models.System,
	testerSys tester.System,
	logger *slog.Logger,
) System {
	return &facade{
		catalog:   catalog,
		providers: providerSys,
		models:    modelSys,
		tester:    testerSys,
		logger:    logger.With("system", "facade"),
	}
}

func (f *facade) ListProviders(ctx context.Context, page pagination.PageRequest, filters providers.Filters) (*pagination.PageResult[providers.Provider], error) {
	return f.providers.List(ctx, page, filters)
}

func (f *facade) GetProvider(ctx context.Context, id uuid.UUID) (*providers.Provider, error) {
	return f.providers.Find(ctx, id)
}

func (f *facade) AddProvider(ctx context.Context, req AddProviderRequest) (*providers.Provider, error) {
	tmpl, err := f.catalog.Get(req.ProviderCategory)
	if err != nil {
		return nil, err
	}

	config, fieldErrs := templates.Validate(tmpl, req.Config)
	if fieldErrs != nil {
		return nil, fieldErrs
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}

	return f.providers.Create(ctx, providers.CreateCommand{
		Name:      req.ProviderName,
		Category:  tmpl.Category,
		Kind:      tmpl.Kind,
		Config:    config,
		IsEnabled: enabled,
		IsDefault: req.IsDefault,
	})
}

func (f *facade) EditProvider(ctx context.Context, id uuid.UUID, req EditProviderRequest) (*providers.Provider, error) {
	existing, err := f.providers.FindWithSecrets(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProviderCategory != nil && *req.ProviderCategory != existing.Category {
		return nil, providers.ErrImmutableField
	}

	cmd := providers.UpdateCommand{
		Name:      req.ProviderName,
		IsEnabled: req.IsEnabled,
		IsDefault: req.IsDefault,
	}

	if req.Config != nil {
		tmpl, err := f.catalog.Get(existing.Category)
		if err != nil {
			return nil, err
		}

		merged := templates.RestoreSecrets(tmpl, req.Config, existing.Config)
		config, fieldErrs := templates.Validate(tmpl, merged)
		if fieldErrs != nil {
			return nil, fieldErrs
		}
		cmd.Config = config
	}

	return f.providers.Update(ctx, id, cmd)
}

func (f *facade) RemoveProvider(ctx context.Context, id uuid.UUID) error {
	return f.providers.Delete(ctx, id)
}

func (f *facade) ListModels(ctx context.Context, providerID uuid.UUID) ([]models.Model, error) {
	return f.models.List(ctx, providerID)
}

func (f *facade) GetModel(ctx context.Context, id uuid.UUID) (*models.Model, error) {
	return f.models.Find(ctx, id)
}

func (f *facade) AddModel(ctx context.Context, providerID uuid.UUID, cmd models.CreateCommand) (*models.Model, error) {
	if fieldErrs := cmd.Validate(); fieldErrs != nil {
		return nil, fieldErrs
	}
	return f.models.Create(ctx, providerID, cmd)
}

func (f *facade) EditModel(ctx context.Context, id uuid.UUID, cmd models.UpdateCommand) (*models.Model, error) {
	if fieldErrs := cmd.Validate(); fieldErrs != nil {
		return nil, fieldErrs
	}
	return f.models.Update(ctx, id, cmd)
}

func (f *facade) RemoveModel(ctx context.Context, id uuid.UUID) error {
	return f.models.Delete(ctx, id)
}

func (f *facade) TestConfig(ctx context.Context, req TestRequest) (tester.Result, error) {
	tmpl, err := f.catalog.Get(req.ProviderCategory)
	if err != nil {
		return tester.Result{}, err
	}

	// Best effort: a fully valid config gets defaults applied, but a config
	// failing validation is still forwarded so the probe can report the
	// actual network or credential problem.
	config := req.Config
	if normalized, fieldErrs := templates.Validate(tmpl, req.Config); fieldErrs == nil {
		config = normalized
	}

	return f.tester.Test(ctx, tmpl, config, req.TestModel), nil
}

func (f *facade) TestProvider(ctx context.Context, id uuid.UUID) (tester.Result, error) {
	p, err := f.providers.FindWithSecrets(ctx, id)
	if err != nil {
		return tester.Result{}, err
	}

	tmpl, err := f.catalog.Get(p.Category)
	if err != nil {
		return tester.Result{}, err
	}

	result := f.tester.Test(ctx, tmpl, p.Config, "")

	// A category without a probe says nothing about the stored config, so
	// the recorded status is left as it was.
	if result.MessageCode == tester.CodeTestNotSupported {
		return result, nil
	}

	status := providers.StatusFailed
	if result.Success {
		status = providers.StatusSuccess
	}
	if err := f.providers.SetValidationStatus(ctx, id, status); err != nil {
		return tester.Result{}, err
	}

	return result, nil
}
