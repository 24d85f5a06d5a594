package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrOrdersAreRequired    = errors.New("at least one order is required")
	ErrOrderIDsAreNotUnique = errors.New("order ids must be unique within a batch")
)

// ImportOrdersCommand represents a request to add a batch of orders to the
// unassigned pool. The whole batch is validated up front and persisted
// atomically.
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	orders []*order.Order

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command to import a batch of orders.
// Validates that the batch is non-empty, every order is fully constructed,
// and no id appears twice.
func NewImportOrdersCommand(orders []*order.Order) (ImportOrdersCommand, error) {
	command := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrders(orders); err != nil {
		return ImportOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrImportOrdersCommandIsNotConstructed if validation fails.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

// Orders returns the order batch from the command.
func (c ImportOrdersCommand) Orders() []*order.Order {
	result := make([]*order.Order, len(c.orders))
	copy(result, c.orders)
	return result
}

func (c *ImportOrdersCommand) setOrders(orders []*order.Order) error {
	if len(orders) == 0 {
		return ErrOrdersAreRequired
	}

	seen := make(map[order.ID]struct{}, len(orders))
	for _, o := range orders {
		if o == nil {
			return errs.NewValueIsRequiredError("order")
		}
		if err := o.Validate(); err != nil {
			return err
		}
		if _, ok := seen[o.ID()]; ok {
			return ErrOrderIDsAreNotUnique
		}
		seen[o.ID()] = struct{}{}
	}

	c.orders = make([]*order.Order, len(orders))
	copy(c.orders, orders)
	return nil
}
