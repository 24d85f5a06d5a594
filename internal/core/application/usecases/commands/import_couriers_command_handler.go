package commands

import (
	"context"
)

// ImportCouriersCommandHandler handles the business logic for courier registration.
// Persists the whole batch within one transaction so a partial import can
// never be observed.
type ImportCouriersCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewImportCouriersCommandHandler creates a handler for courier batch imports.
// Requires a CourierUoWFactory for transactional persistence operations.
func NewImportCouriersCommandHandler(uowFactory CourierUoWFactory) ImportCouriersCommandHandler {
	return ImportCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier import command.
// Persists the batch within a transaction and rolls back on any error,
// including an id collision with an already stored courier.
func (h *ImportCouriersCommandHandler) Handle(ctx context.Context, cmd ImportCouriersCommand) error {
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

	if err := uow.CourierRepository().AddAll(ctx, cmd.Couriers()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
