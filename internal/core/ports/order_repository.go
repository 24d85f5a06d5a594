package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders and their
// assignment relation. An order is assigned when a relation row links it to a
// courier, and unassigned (pooled) otherwise. All methods execute within the
// transaction of the unit of work that produced the repository instance.
type OrderRepository interface {
	// AddAll persists a batch of orders into the unassigned pool in one
	// all-or-nothing operation, chunked like CourierRepository.AddAll.
	AddAll(ctx context.Context, orders []*order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetAssignedToCourier retrieves all orders currently assigned to the
	// courier, joined with their physical attributes. The result is the
	// consistent snapshot the reconciliation engine evaluates evictions from.
	GetAssignedToCourier(ctx context.Context, courierID courier.ID) ([]*order.Order, error)

	// Unassign atomically removes the given orders from the assignment
	// relation, returning them to the pool. No-op when ids is empty.
	Unassign(ctx context.Context, ids []order.ID) error

	// Assign links an order to a courier with the given assignment time.
	// Fails with an already-exists error if the order is already assigned.
	Assign(ctx context.Context, orderID order.ID, courierID courier.ID, assignTime time.Time) error

	// GetUnassigned retrieves up to limit pooled orders, oldest ids first.
	GetUnassigned(ctx context.Context, limit int) ([]*order.Order, error)
}
