package commands

import (
	"context"

	"waterinfra/internal/core/domain/model/transfer"
	"waterinfra/internal/pkg/errs"
)

var (
	// ErrWaterBoxIsInactive is returned when the transfer target box is not active.
	ErrWaterBoxIsInactive = errs.NewInvalidStateError("cannot transfer an inactive water box")
	// ErrOldAssignmentMismatch is returned when the old assignment belongs to a different box.
	ErrOldAssignmentMismatch = errs.NewValueIsInvalidError("old assignment does not belong to the water box")
	// ErrOldAssignmentInactive is returned when the old assignment is already retired.
	ErrOldAssignmentInactive = errs.NewInvalidStateError("old assignment is already inactive")
	// ErrOldAssignmentNotCurrent is returned when the old assignment is not the one
	// the box currently recognizes as active. A transfer may only retire the
	// box's current assignment.
	ErrOldAssignmentNotCurrent = errs.NewValueIsInvalidError("old assignment is not the current active assignment")
	// ErrNewAssignmentMismatch is returned when the new assignment belongs to a different box.
	ErrNewAssignmentMismatch = errs.NewValueIsInvalidError("new assignment does not belong to the water box")
	// ErrNewAssignmentInactive is returned when the new assignment is not active.
	ErrNewAssignmentInactive = errs.NewInvalidStateError("new assignment is inactive")
)

// TransferWaterBoxCommandHandler orchestrates the handover of a water box
// from its current assignment to another assignment of the same box.
//
// The preconditions are checked in strict order: box exists and is active,
// old assignment exists, belongs to the box, is active and is the box's
// current assignment, new assignment exists, belongs to the box, is active
// and differs from the old one. On success three writes happen atomically:
// the transfer record is saved, the old assignment is retired with a
// reference to the transfer, and the box is re-pointed to the new assignment.
type TransferWaterBoxCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransferWaterBoxCommandHandler creates a handler for transfer operations.
// Requires a UoWFactory spanning the box, assignment and transfer repositories.
func NewTransferWaterBoxCommandHandler(uowFactory UoWFactory) TransferWaterBoxCommandHandler {
	return TransferWaterBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer command.
// All three writes execute inside a single transaction: either the transfer
// record, the retired old assignment and the re-pointed box are all
// persisted, or none of them are.
func (h *TransferWaterBoxCommandHandler) Handle(ctx context.Context, cmd TransferWaterBoxCommand) error {
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
	transferRepo := uow.TransferRepository()

	box, err := boxRepo.Get(ctx, cmd.WaterBoxID())
	if err != nil {
		return err
	}
	if !box.Status().IsActive() {
		return ErrWaterBoxIsInactive
	}

	oldAssignment, err := assignmentRepo.Get(ctx, cmd.OldAssignmentID())
	if err != nil {
		return err
	}
	if !oldAssignment.BelongsTo(box.ID()) {
		return ErrOldAssignmentMismatch
	}
	if !oldAssignment.Status().IsActive() {
		return ErrOldAssignmentInactive
	}
	if !box.IsCurrentAssignment(oldAssignment.ID()) {
		return ErrOldAssignmentNotCurrent
	}

	newAssignment, err := assignmentRepo.Get(ctx, cmd.NewAssignmentID())
	if err != nil {
		return err
	}
	if !newAssignment.BelongsTo(box.ID()) {
		return ErrNewAssignmentMismatch
	}
	if !newAssignment.Status().IsActive() {
		return ErrNewAssignmentInactive
	}

	record, err := transfer.NewTransfer(
		cmd.TransferID(),
		box.ID(),
		oldAssignment.ID(),
		newAssignment.ID(),
		cmd.Reason(),
		cmd.Documents(),
	)
	if err != nil {
		return err
	}

	if err = transferRepo.Add(ctx, record); err != nil {
		return err
	}

	if err = oldAssignment.RetireForTransfer(record.ID()); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, oldAssignment); err != nil {
		return err
	}

	if err = box.AssignCurrent(newAssignment.ID()); err != nil {
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
