package commands

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrDeactivateWaterBoxCommandIsNotConstructed = errors.New(
	"DeactivateWaterBoxCommand must be created via NewDeactivateWaterBoxCommand constructor",
)

// DeactivateWaterBoxCommand represents a request to soft-delete a water box.
// Deactivation is refused while the box still points at a current assignment.
type DeactivateWaterBoxCommand struct { //nolint:recvcheck //using for validation
	waterBoxID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateWaterBoxCommand creates a command to deactivate a water box.
func NewDeactivateWaterBoxCommand(waterBoxID kernel.UUID) (DeactivateWaterBoxCommand, error) {
	if err := waterBoxID.Validate(); err != nil {
		return DeactivateWaterBoxCommand{}, err
	}

	return DeactivateWaterBoxCommand{
		waterBoxID: waterBoxID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeactivateWaterBoxCommandIsNotConstructed if validation fails.
func (c DeactivateWaterBoxCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateWaterBoxCommandIsNotConstructed)
}

// WaterBoxID returns the identifier of the box to deactivate.
func (c DeactivateWaterBoxCommand) WaterBoxID() kernel.UUID {
	return c.waterBoxID
}
