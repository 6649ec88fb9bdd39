package commands

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrRestoreWaterBoxCommandIsNotConstructed = errors.New(
	"RestoreWaterBoxCommand must be created via NewRestoreWaterBoxCommand constructor",
)

// RestoreWaterBoxCommand represents a request to reactivate a deactivated water box.
type RestoreWaterBoxCommand struct { //nolint:recvcheck //using for validation
	waterBoxID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreWaterBoxCommand creates a command to restore a water box.
func NewRestoreWaterBoxCommand(waterBoxID kernel.UUID) (RestoreWaterBoxCommand, error) {
	if err := waterBoxID.Validate(); err != nil {
		return RestoreWaterBoxCommand{}, err
	}

	return RestoreWaterBoxCommand{
		waterBoxID: waterBoxID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestoreWaterBoxCommandIsNotConstructed if validation fails.
func (c RestoreWaterBoxCommand) Validate() error {
	return c.guard.Validate(ErrRestoreWaterBoxCommandIsNotConstructed)
}

// WaterBoxID returns the identifier of the box to restore.
func (c RestoreWaterBoxCommand) WaterBoxID() kernel.UUID {
	return c.waterBoxID
}
