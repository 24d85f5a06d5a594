package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrAssignOrdersCommandIsNotConstructed = errors.New(
		"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
	)
)

// AssignOrdersCommand triggers one dispatch pass over the unassigned order pool.
// Each pooled order is matched against the fleet and linked to the first
// compatible courier; orders with no match stay pooled for a later pass.
//
// Example:
//
//	cmd := NewAssignOrdersCommand()
//	handler := NewAssignOrdersCommandHandler(uowFactory, dispatcher)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("dispatch pass failed: %v", err)
//	}
type AssignOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a command to trigger a dispatch pass.
// This is a parameterless command that processes the whole unassigned pool.
func NewAssignOrdersCommand() AssignOrdersCommand {
	command := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrdersCommandIsNotConstructed if validation fails.
func (c *AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}
