package commands

import (
	"context"
)

// ImportOrdersCommandHandler handles the business logic for order intake.
// New orders land in the unassigned pool and stay there until the dispatch
// job finds a compatible courier.
type ImportOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewImportOrdersCommandHandler creates a handler for order batch imports.
// Requires an OrderUoWFactory for transactional persistence operations.
func NewImportOrdersCommandHandler(uowFactory OrderUoWFactory) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order import command.
// Persists the batch within a transaction and rolls back on any error.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) error {
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

	if err := uow.OrderRepository().AddAll(ctx, cmd.Orders()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
