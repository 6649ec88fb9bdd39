package commands

import (
	"context"

	"waterinfra/internal/core/domain/model/assignment"
)

// CreateAssignmentCommandHandler handles linking a subscriber to a water box.
// The referenced box must exist and be active. Saving the assignment and
// re-pointing the box happen inside one transaction, so a failure of either
// write leaves no partial state behind.
type CreateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for assignment creation operations.
// Requires an AssignmentUoWFactory for coordinating assignment and box writes.
func NewCreateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment creation command.
// Persists the new assignment and marks it as the box's current assignment.
func (h *CreateAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateAssignmentCommand) error {
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

	boxRepo := uow.WaterBoxRepository()
	box, err := boxRepo.Get(ctx, cmd.WaterBoxID())
	if err != nil {
		return err
	}

	newAssignment, err := assignment.NewAssignment(
		cmd.AssignmentID(),
		cmd.WaterBoxID(),
		cmd.SubscriberID(),
		cmd.StartDate(),
		cmd.MonthlyFee(),
	)
	if err != nil {
		return err
	}

	// AssignCurrent rejects inactive boxes, so the active-box precondition
	// is checked before anything is written.
	if err = box.AssignCurrent(newAssignment.ID()); err != nil {
		return err
	}

	assignmentRepo := uow.AssignmentRepository()
	if err = assignmentRepo.Add(ctx, newAssignment); err != nil {
		return err
	}

	if err = boxRepo.Update(ctx, box); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
