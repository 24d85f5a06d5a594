// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
// All methods execute within the transaction of the unit of work that
// produced the repository instance.
type CourierRepository interface {
	// AddAll persists a batch of courier aggregates in one all-or-nothing
	// operation. Large batches may be written in several statements, but the
	// surrounding transaction keeps the batch atomic. Fails with an
	// already-exists error if any id collides with a stored courier or with
	// another courier in the same batch; nothing is inserted in that case.
	AddAll(ctx context.Context, couriers []*courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Fails with a not-found error if the id is unknown.
	Get(ctx context.Context, id courier.ID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier like Get while taking an exclusive
	// row lock on it. The lock serializes every update path touching the
	// same courier id and is released automatically when the surrounding
	// transaction commits or rolls back.
	GetForUpdate(ctx context.Context, id courier.ID) (*courier.Courier, error)

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// GetAll retrieves every stored courier. Used by the assignment job to
	// match pooled orders against the whole fleet.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
