package commands

import (
	"context"
)

// RestoreWaterBoxCommandHandler handles box reactivation.
// Restored boxes come back with no current assignment: deactivation required
// the pointer to be cleared, and restore leaves it as found.
type RestoreWaterBoxCommandHandler struct {
	uowFactory WaterBoxUoWFactory
}

// NewRestoreWaterBoxCommandHandler creates a handler for box restore operations.
func NewRestoreWaterBoxCommandHandler(uowFactory WaterBoxUoWFactory) RestoreWaterBoxCommandHandler {
	return RestoreWaterBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box restore command.
func (h *RestoreWaterBoxCommandHandler) Handle(ctx context.Context, cmd RestoreWaterBoxCommand) error {
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

	if err = box.Restore(); err != nil {
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
