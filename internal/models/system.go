// Package models implements the model registry: persistence and lifecycle
// for the models exposed by a provider, including default exclusivity
// scoped to the owning provider.
package models

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for model registry operations.
type System interface {
	// List returns all models belonging to a provider in name order.
	// Returns ErrProviderNotFound if the provider does not exist.
	List(ctx context.Context, providerID uuid.UUID) ([]Model, error)

	// Find retrieves a model by ID.
	// Returns ErrNotFound if the model does not exist.
	Find(ctx context.Context, id uuid.UUID) (*Model, error)

	// Create stores a new model under a live provider. If the command
	// marks it default, the provider's previous default model is cleared
	// in the same transaction.
	Create(ctx context.Context, providerID uuid.UUID, cmd CreateCommand) (*Model, error)

	// Update modifies an existing model. Setting IsDefault true clears the
	// provider's previous default in the same transaction.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Model, error)

	// Delete removes a model.
	Delete(ctx context.Context, id uuid.UUID) error
}
