package commands

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrRestoreAssignmentCommandIsNotConstructed = errors.New(
	"RestoreAssignmentCommand must be created via NewRestoreAssignmentCommand constructor",
)

// RestoreAssignmentCommand represents a request to reactivate a retired assignment.
// The restored assignment re-claims the box's current pointer only when the
// box has none; an existing pointer to another assignment is left untouched.
type RestoreAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreAssignmentCommand creates a command to restore an assignment.
func NewRestoreAssignmentCommand(assignmentID kernel.UUID) (RestoreAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return RestoreAssignmentCommand{}, err
	}

	return RestoreAssignmentCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestoreAssignmentCommandIsNotConstructed if validation fails.
func (c RestoreAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRestoreAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to restore.
func (c RestoreAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
