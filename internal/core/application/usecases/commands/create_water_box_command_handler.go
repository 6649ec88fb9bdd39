package commands

import (
	"context"

	"waterinfra/internal/core/domain/model/waterbox"
)

// CreateWaterBoxCommandHandler handles the business logic for box registration.
// New boxes start in active status with no current assignment.
type CreateWaterBoxCommandHandler struct {
	uowFactory WaterBoxUoWFactory
}

// NewCreateWaterBoxCommandHandler creates a handler for box registration operations.
// Requires a WaterBoxUoWFactory for transactional persistence.
func NewCreateWaterBoxCommandHandler(uowFactory WaterBoxUoWFactory) CreateWaterBoxCommandHandler {
	return CreateWaterBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the box registration command.
// Uses a transaction to ensure the box is properly persisted or rolled back on error.
func (h *CreateWaterBoxCommandHandler) Handle(ctx context.Context, cmd CreateWaterBoxCommand) error {
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
	box, err := waterbox.NewWaterBox(
		cmd.WaterBoxID(),
		cmd.OrganizationID(),
		cmd.BoxCode(),
		cmd.BoxType(),
		cmd.InstallationDate(),
	)
	if err != nil {
		return err
	}

	if err = boxRepo.Add(ctx, box); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
