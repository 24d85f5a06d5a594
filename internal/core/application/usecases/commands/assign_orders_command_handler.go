package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
)

// assignBatchLimit bounds how many pooled orders one dispatch pass considers.
const assignBatchLimit = 100

// AssignOrdersCommandHandler runs a dispatch pass over the unassigned pool.
// The dispatcher uses the inverse of the eviction rule, so every assignment it
// makes would survive an immediate reconciliation of the chosen courier.
//
// Before linking an order the handler re-reads the chosen courier under an
// exclusive row lock and re-checks compatibility against that locked profile,
// not the fleet snapshot the candidate was picked from. A profile update that
// committed between the two reads is therefore respected (the order stays
// pooled), and an update arriving later waits for this transaction and
// reconciles against the fresh assignment.
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
}

// NewAssignOrdersCommandHandler creates a handler for dispatch passes.
// Requires a UoWFactory because assignments touch both couriers and the
// assignment relation.
func NewAssignOrdersCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.OrderDispatcher,
) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes one dispatch pass.
// Orders without a compatible courier are skipped, not failed: the pass
// assigns what it can and leaves the rest pooled. All assignments of the pass
// commit atomically.
func (h *AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	pooled, err := orderRepo.GetUnassigned(ctx, assignBatchLimit)
	if err != nil {
		return err
	}
	if len(pooled) == 0 {
		return uow.Commit(ctx)
	}

	couriers, err := courierRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	assignTime := time.Now().UTC()
	for _, o := range pooled {
		chosen, dispatchErr := h.dispatcher.Dispatch(o, couriers)
		if errors.Is(dispatchErr, services.ErrNoCompatibleCourier) {
			continue
		}
		if dispatchErr != nil {
			return dispatchErr
		}

		// Lock the chosen courier so a concurrent profile update cannot
		// evaluate evictions while this assignment is in flight
		locked, lockErr := courierRepo.GetForUpdate(ctx, chosen.ID())
		if lockErr != nil {
			return lockErr
		}

		// The fleet snapshot may predate a committed profile update; the
		// assignment must hold against the profile the lock read back
		if _, recheckErr := h.dispatcher.Dispatch(o, []*courier.Courier{locked}); recheckErr != nil {
			if errors.Is(recheckErr, services.ErrNoCompatibleCourier) {
				continue
			}
			return recheckErr
		}

		if assignErr := orderRepo.Assign(ctx, o.ID(), locked.ID(), assignTime); assignErr != nil {
			return assignErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
