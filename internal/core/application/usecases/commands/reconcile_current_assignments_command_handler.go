package commands

import (
	"context"
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/errs"
)

// ReconcileCurrentAssignmentsCommandHandler repairs stale current assignment
// pointers. A pointer is stale when the referenced assignment cannot be
// loaded, is inactive, or belongs to a different box. Stale pointers are
// cleared so that the boxes can be deactivated or re-assigned normally.
type ReconcileCurrentAssignmentsCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewReconcileCurrentAssignmentsCommandHandler creates a handler for reconciliation sweeps.
func NewReconcileCurrentAssignmentsCommandHandler(
	uowFactory AssignmentUoWFactory,
) ReconcileCurrentAssignmentsCommandHandler {
	return ReconcileCurrentAssignmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Sweeps all active boxes with a current assignment pointer and clears the
// pointers that no longer satisfy the current-assignment invariant. All
// repairs commit as one transaction.
func (h *ReconcileCurrentAssignmentsCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileCurrentAssignmentsCommand,
) error {
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
	assignmentRepo := uow.AssignmentRepository()

	boxes, err := boxRepo.GetAllInStatus(ctx, kernel.StatusActive)
	if err != nil {
		return err
	}

	for _, box := range boxes {
		if !box.HasCurrentAssignment() {
			continue
		}

		current, getErr := assignmentRepo.Get(ctx, *box.CurrentAssignmentID())
		if getErr != nil && !errors.Is(getErr, errs.ErrObjectNotFound) {
			return getErr
		}

		if current != nil && current.Status().IsActive() && current.BelongsTo(box.ID()) {
			continue
		}

		box.ClearCurrent()
		if err = boxRepo.Update(ctx, box); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
