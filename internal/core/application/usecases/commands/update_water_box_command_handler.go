package commands

import (
	"context"
)

// UpdateWaterBoxCommandHandler handles rewriting a box's identity details.
// The box's status and current assignment pointer are left untouched.
type UpdateWaterBoxCommandHandler struct {
	uowFactory WaterBoxUoWFactory
}

// NewUpdateWaterBoxCommandHandler creates a handler for box update operations.
func NewUpdateWaterBoxCommandHandler(uowFactory WaterBoxUoWFactory) UpdateWaterBoxCommandHandler {
	return UpdateWaterBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box update command.
// Loads the box, rewrites its mutable fields and persists the change.
func (h *UpdateWaterBoxCommandHandler) Handle(ctx context.Context, cmd UpdateWaterBoxCommand) error {
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

	if err = box.UpdateDetails(
		cmd.OrganizationID(),
		cmd.BoxCode(),
		cmd.BoxType(),
		cmd.InstallationDate(),
	); err != nil {
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
