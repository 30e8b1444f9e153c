// Package providers implements the provider registry: persistence and
// lifecycle for configured backend instances, including the single-default
// invariant and secret masking on read.
package providers

import (
	"context"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/pkg/pagination"
)

// System defines the interface for provider registry operations. All
// mutation of the provider store goes through this interface.
type System interface {
	// List returns a paginated list of providers matching the filter
	// criteria, with secret config fields masked.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Provider], error)

	// Find retrieves a provider by ID with secret config fields masked.
	// Returns ErrNotFound if the provider does not exist.
	Find(ctx context.Context, id uuid.UUID) (*Provider, error)

	// FindWithSecrets retrieves a provider with plaintext secret values.
	// For internal use by the connection tester and update merging only;
	// the result must never be written to a response or a log.
	FindWithSecrets(ctx context.Context, id uuid.UUID) (*Provider, error)

	// Create stores a new provider. If the command marks it default, the
	// previous default is cleared in the same transaction.
	Create(ctx context.Context, cmd CreateCommand) (*Provider, error)

	// Update modifies an existing provider. Setting IsDefault true clears
	// the previous default in the same transaction. Category and id are
	// immutable and not part of the command.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Provider, error)

	// Delete removes a provider and, via cascade, all of its models.
	// Deleting the current default leaves the registry without a default.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetValidationStatus records the outcome of an explicit
	// test-then-persist action.
	SetValidationStatus(ctx context.Context, id uuid.UUID, status ValidationStatus) error
}
