package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
)

// UpdateCourierCommandHandler handles courier profile updates and the
// reconciliation of assigned orders they trigger. The whole flow runs inside
// one transaction under an exclusive row lock on the courier:
//
//  1. Lock and load the courier
//  2. Merge the patch into the prospective profile
//  3. Load the orders currently assigned to the courier
//  4. Evict the orders the new profile disqualifies
//  5. Persist the new profile and commit
//
// A concurrent update of the same courier blocks on the row lock and then
// reconciles against the committed state, so evictions are never computed
// from a stale snapshot.
type UpdateCourierCommandHandler struct {
	uowFactory UoWFactory
	policy     services.ReconciliationPolicy
}

// NewUpdateCourierCommandHandler creates a handler for courier profile updates.
// Requires a UoWFactory because the command touches both the courier and its
// assignment relation.
func NewUpdateCourierCommandHandler(
	uowFactory UoWFactory,
	policy services.ReconciliationPolicy,
) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the profile update command and returns the updated courier.
// Returns a not-found error for unknown couriers. Transient locking failures
// surface unchanged so the transport layer can map them to a retry-later
// status.
func (h *UpdateCourierCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCourierCommand,
) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	aggregate, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyPatch(cmd.Patch()); err != nil {
		return nil, err
	}

	assigned, err := orderRepo.GetAssignedToCourier(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	evicted, err := h.policy.OrdersToEvict(aggregate, assigned)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Unassign(ctx, evicted); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
