package commands

import (
	"context"
	"errors"

	"waterinfra/internal/pkg/errs"
)

// DeactivateAssignmentCommandHandler handles assignment retirement.
// Clearing the box pointer and retiring the assignment are two writes inside
// one transaction, so the box is never left pointing at an inactive assignment.
type DeactivateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewDeactivateAssignmentCommandHandler creates a handler for assignment deactivation operations.
func NewDeactivateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) DeactivateAssignmentCommandHandler {
	return DeactivateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment deactivation command.
// If some box recognizes the assignment as current, that box's pointer is
// cleared before the assignment itself is retired.
func (h *DeactivateAssignmentCommandHandler) Handle(ctx context.Context, cmd DeactivateAssignmentCommand) error {
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

	assignmentRepo := uow.AssignmentRepository()
	boxRepo := uow.WaterBoxRepository()

	target, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	owner, err := boxRepo.GetByCurrentAssignment(ctx, target.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if owner != nil {
		owner.ClearCurrent()
		if err = boxRepo.Update(ctx, owner); err != nil {
			return err
		}
	}

	if err = target.Deactivate(); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
