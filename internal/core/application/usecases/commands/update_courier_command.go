package commands

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateCourierCommandIsNotConstructed = errors.New(
		"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
	)
)

// UpdateCourierCommand represents a partial update of a courier profile.
// Fields absent from the patch keep their stored values. An empty patch is
// legal: the handler still runs the full reconciliation pass, which is a
// no-op against an unchanged profile.
//
// Example:
//
//	transport := courier.TransportFoot
//	cmd, err := NewUpdateCourierCommand(courierID, courier.Patch{TransportType: &transport})
//	if err != nil {
//	    return fmt.Errorf("invalid update: %w", err)
//	}
//
//	handler := NewUpdateCourierCommandHandler(uowFactory, policy)
//	updated, err := handler.Handle(ctx, cmd)
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID courier.ID
	patch     courier.Patch

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a command to patch a courier profile.
// Validates that the courier id is non-negative; the patch values themselves
// are validated by the aggregate when they are merged.
func NewUpdateCourierCommand(courierID courier.ID, patch courier.Patch) (UpdateCourierCommand, error) {
	command := UpdateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return UpdateCourierCommand{}, err
	}
	command.patch = patch

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCourierCommandIsNotConstructed if validation fails.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the id of the courier being updated.
func (c UpdateCourierCommand) CourierID() courier.ID {
	return c.courierID
}

// Patch returns the partial update carried by the command.
func (c UpdateCourierCommand) Patch() courier.Patch {
	return c.patch
}

func (c *UpdateCourierCommand) setCourierID(id courier.ID) error {
	if id < 0 {
		return errs.NewValueIsOutOfRangeError("courierId", id, 0, int64(math.MaxInt64))
	}

	c.courierID = id
	return nil
}
