package commands

import (
	"context"
)

// DeactivateWaterBoxCommandHandler handles box deactivation.
// The aggregate refuses to deactivate a box that is already inactive or that
// still has a current assignment, so the handler only loads, mutates and saves.
type DeactivateWaterBoxCommandHandler struct {
	uowFactory WaterBoxUoWFactory
}

// NewDeactivateWaterBoxCommandHandler creates a handler for box deactivation operations.
func NewDeactivateWaterBoxCommandHandler(uowFactory WaterBoxUoWFactory) DeactivateWaterBoxCommandHandler {
	return DeactivateWaterBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box deactivation command.
func (h *DeactivateWaterBoxCommandHandler) Handle(ctx context.Context, cmd DeactivateWaterBoxCommand) error {
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

	if err = box.Deactivate(); err != nil {
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
