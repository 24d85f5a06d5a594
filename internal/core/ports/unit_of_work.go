package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or dispatch pass.
// Sharing one instance between concurrent operations would share its
// transaction state, so callers always go through the factory.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a business operation: a profile
// update, its evictions, and the courier write either all commit or all roll
// back. Repositories obtained from it run inside the transaction once Begin
// has been called.
type UnitOfWork interface {
	// Begin starts the database transaction.
	Begin(ctx context.Context) error

	// Commit makes every change of the transaction permanent and releases
	// any row locks taken inside it (e.g. by CourierRepository.GetForUpdate).
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every change of the transaction and releases its row
	// locks. Handlers defer it so a failed or abandoned operation never
	// leaves a courier locked or half-updated.
	Rollback(ctx context.Context) error

	// CourierRepository returns a CourierRepository bound to the active
	// transaction, or to the plain connection if Begin has not been called.
	CourierRepository() CourierRepository

	// OrderRepository returns an OrderRepository bound to the active
	// transaction, or to the plain connection if Begin has not been called.
	OrderRepository() OrderRepository
}
