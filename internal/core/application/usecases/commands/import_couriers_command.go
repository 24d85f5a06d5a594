package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrImportCouriersCommandIsNotConstructed = errors.New(
		"ImportCouriersCommand must be created via NewImportCouriersCommand constructor",
	)
	ErrCouriersAreRequired    = errors.New("at least one courier is required")
	ErrCourierIDsAreNotUnique = errors.New("courier ids must be unique within a batch")
)

// ImportCouriersCommand represents a request to register a batch of couriers.
// The whole batch is validated up front and persisted atomically: one bad
// courier rejects the entire request.
//
// Example:
//
//	cmd, err := NewImportCouriersCommand(couriers)
//	if err != nil {
//	    return fmt.Errorf("invalid courier batch: %w", err)
//	}
//
//	handler := NewImportCouriersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to import couriers: %w", err)
//	}
type ImportCouriersCommand struct { //nolint:recvcheck //using for validation
	couriers []*courier.Courier

	guard guard.ConstructorGuard
}

// NewImportCouriersCommand creates a command to register a batch of couriers.
// Validates that the batch is non-empty, every courier is fully constructed,
// and no id appears twice.
func NewImportCouriersCommand(couriers []*courier.Courier) (ImportCouriersCommand, error) {
	command := ImportCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCouriers(couriers); err != nil {
		return ImportCouriersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrImportCouriersCommandIsNotConstructed if validation fails.
func (c ImportCouriersCommand) Validate() error {
	return c.guard.Validate(ErrImportCouriersCommandIsNotConstructed)
}

// Couriers returns the courier batch from the command.
func (c ImportCouriersCommand) Couriers() []*courier.Courier {
	result := make([]*courier.Courier, len(c.couriers))
	copy(result, c.couriers)
	return result
}

func (c *ImportCouriersCommand) setCouriers(couriers []*courier.Courier) error {
	if len(couriers) == 0 {
		return ErrCouriersAreRequired
	}

	seen := make(map[courier.ID]struct{}, len(couriers))
	for _, aggregate := range couriers {
		if aggregate == nil {
			return errs.NewValueIsRequiredError("courier")
		}
		if err := aggregate.Validate(); err != nil {
			return err
		}
		if _, ok := seen[aggregate.ID()]; ok {
			return ErrCourierIDsAreNotUnique
		}
		seen[aggregate.ID()] = struct{}{}
	}

	c.couriers = make([]*courier.Courier, len(couriers))
	copy(c.couriers, couriers)
	return nil
}
