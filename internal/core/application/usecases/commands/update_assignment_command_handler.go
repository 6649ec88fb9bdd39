package commands

import (
	"context"
	"errors"

	"waterinfra/internal/pkg/errs"
)

// ErrAssignmentIsCurrent is returned when an update tries to move a current
// assignment to a different water box. Allowing that would leave the old box
// pointing at an assignment that no longer belongs to it.
var ErrAssignmentIsCurrent = errs.NewConflictError(
	"assignment is the current assignment of its water box, retire it before moving it",
)

// UpdateAssignmentCommandHandler handles rewriting an assignment's terms.
// The referenced box must exist. Moving the assignment to another box is
// refused while the assignment is some box's current assignment.
type UpdateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewUpdateAssignmentCommandHandler creates a handler for assignment update operations.
func NewUpdateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) UpdateAssignmentCommandHandler {
	return UpdateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment update command.
func (h *UpdateAssignmentCommandHandler) Handle(ctx context.Context, cmd UpdateAssignmentCommand) error {
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

	if _, err = boxRepo.Get(ctx, cmd.WaterBoxID()); err != nil {
		return err
	}

	if !target.BelongsTo(cmd.WaterBoxID()) {
		owner, ownerErr := boxRepo.GetByCurrentAssignment(ctx, target.ID())
		if ownerErr != nil && !errors.Is(ownerErr, errs.ErrObjectNotFound) {
			return ownerErr
		}
		if owner != nil {
			return ErrAssignmentIsCurrent
		}
	}

	if err = target.ChangeTerms(
		cmd.WaterBoxID(),
		cmd.SubscriberID(),
		cmd.StartDate(),
		cmd.MonthlyFee(),
	); err != nil {
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
