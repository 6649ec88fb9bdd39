package commands

import (
	"context"
	"errors"

	"waterinfra/internal/pkg/errs"
)

// RestoreAssignmentCommandHandler handles assignment reactivation.
// The assignment becomes active again with its end date cleared. Its box
// pointer is re-claimed only when the owning box is active and currently has
// no current assignment; otherwise the pointer is left as found, which means
// several active assignments can exist for one box with only one current.
// A missing owning box does not block the restore.
type RestoreAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRestoreAssignmentCommandHandler creates a handler for assignment restore operations.
func NewRestoreAssignmentCommandHandler(uowFactory AssignmentUoWFactory) RestoreAssignmentCommandHandler {
	return RestoreAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment restore command.
func (h *RestoreAssignmentCommandHandler) Handle(ctx context.Context, cmd RestoreAssignmentCommand) error {
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

	if err = target.Restore(); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, target); err != nil {
		return err
	}

	box, err := boxRepo.Get(ctx, target.WaterBoxID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if box != nil && !box.HasCurrentAssignment() && box.Status().IsActive() {
		if err = box.AssignCurrent(target.ID()); err != nil {
			return err
		}
		if err = boxRepo.Update(ctx, box); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
