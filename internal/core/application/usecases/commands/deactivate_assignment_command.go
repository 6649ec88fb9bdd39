package commands

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrDeactivateAssignmentCommandIsNotConstructed = errors.New(
	"DeactivateAssignmentCommand must be created via NewDeactivateAssignmentCommand constructor",
)

// DeactivateAssignmentCommand represents a request to retire an assignment
// outside of a transfer. If the assignment is its box's current assignment,
// the box pointer is cleared in the same transaction.
type DeactivateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateAssignmentCommand creates a command to deactivate an assignment.
func NewDeactivateAssignmentCommand(assignmentID kernel.UUID) (DeactivateAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return DeactivateAssignmentCommand{}, err
	}

	return DeactivateAssignmentCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeactivateAssignmentCommandIsNotConstructed if validation fails.
func (c DeactivateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to deactivate.
func (c DeactivateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
