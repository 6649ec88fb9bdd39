package commands

import (
	"errors"

	"waterinfra/internal/pkg/guard"
)

var ErrReconcileCurrentAssignmentsCommandIsNotConstructed = errors.New(
	"ReconcileCurrentAssignmentsCommand must be created via NewReconcileCurrentAssignmentsCommand constructor",
)

// ReconcileCurrentAssignmentsCommand triggers a sweep over active boxes that
// clears current assignment pointers left stale by partial failures: pointers
// at assignments that no longer exist, are inactive, or belong to another box.
type ReconcileCurrentAssignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileCurrentAssignmentsCommand creates a new command to trigger reconciliation.
// This is a parameterless command that sweeps all active boxes.
func NewReconcileCurrentAssignmentsCommand() ReconcileCurrentAssignmentsCommand {
	return ReconcileCurrentAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileCurrentAssignmentsCommandIsNotConstructed if validation fails.
func (c *ReconcileCurrentAssignmentsCommand) Validate() error {
	return c.guard.Validate(
		ErrReconcileCurrentAssignmentsCommandIsNotConstructed,
	)
}
