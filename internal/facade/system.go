// Package facade orchestrates the template catalog, config validator,
// provider and model registries, and connection tester into the operations
// exposed to callers. Structured errors from the underlying systems pass
// through unchanged.
package facade

import (
	"context"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/internal/models"
	"github.com/techlens/provider-lab/internal/providers"
	"github.com/techlens/provider-lab/internal/tester"
	"github.com/techlens/provider-lab/pkg/pagination"
)

// System defines the caller-facing provider management operations.
type System interface {
	// ListProviders returns a paginated provider listing with secrets masked.
	ListProviders(ctx context.Context, page pagination.PageRequest, filters providers.Filters) (*pagination.PageResult[providers.Provider], error)

	// GetProvider returns a single provider with secrets masked.
	GetProvider(ctx context.Context, id uuid.UUID) (*providers.Provider, error)

	// AddProvider resolves the category template, validates the submitted
	// config, and persists the provider. Nothing is persisted when the
	// category is unknown or validation fails.
	AddProvider(ctx context.Context, req AddProviderRequest) (*providers.Provider, error)

	// EditProvider revalidates any submitted config against the provider's
	// own template and applies the patch. Changing the category fails with
	// ErrImmutableField. Secret values echoing the mask placeholder retain
	// the stored plaintext.
	EditProvider(ctx context.Context, id uuid.UUID, req EditProviderRequest) (*providers.Provider, error)

	// RemoveProvider deletes a provider and cascades to its models.
	RemoveProvider(ctx context.Context, id uuid.UUID) error

	// ListModels returns all models under a live provider.
	ListModels(ctx context.Context, providerID uuid.UUID) ([]models.Model, error)

	// GetModel returns a single model.
	GetModel(ctx context.Context, id uuid.UUID) (*models.Model, error)

	// AddModel creates a model under a live provider.
	AddModel(ctx context.Context, providerID uuid.UUID, cmd models.CreateCommand) (*models.Model, error)

	// EditModel applies a patch to a model.
	EditModel(ctx context.Context, id uuid.UUID, cmd models.UpdateCommand) (*models.Model, error)

	// RemoveModel deletes a model.
	RemoveModel(ctx context.Context, id uuid.UUID) error

	// TestConfig probes a category with a caller-supplied config without
	// touching persisted state.
	TestConfig(ctx context.Context, req TestRequest) (tester.Result, error)

	// TestProvider probes a persisted provider with its stored config and
	// records the outcome in the provider's validation status. A category
	// without a probe leaves the recorded status unchanged.
	TestProvider(ctx context.Context, id uuid.UUID) (tester.Result, error)
}
