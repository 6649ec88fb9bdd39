package commands

import (
	"errors"
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"
	"waterinfra/internal/pkg/guard"
)

var ErrUpdateWaterBoxCommandIsNotConstructed = errors.New(
	"UpdateWaterBoxCommand must be created via NewUpdateWaterBoxCommand constructor",
)

// UpdateWaterBoxCommand represents a request to rewrite a box's identity details.
// Status and the current assignment pointer are never touched by this command.
type UpdateWaterBoxCommand struct { //nolint:recvcheck //using for validation
	waterBoxID       kernel.UUID
	organizationID   string
	boxCode          string
	boxType          waterbox.BoxType
	installationDate time.Time

	guard guard.ConstructorGuard
}

// NewUpdateWaterBoxCommand creates a command to update an existing water box.
// Applies the same field validation rules as box creation.
func NewUpdateWaterBoxCommand(
	waterBoxID kernel.UUID,
	organizationID string,
	boxCode string,
	boxType waterbox.BoxType,
	installationDate time.Time,
) (UpdateWaterBoxCommand, error) {
	boxCommand := UpdateWaterBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		boxCommand.setWaterBoxID(waterBoxID),
		boxCommand.setOrganizationID(organizationID),
		boxCommand.setBoxCode(boxCode),
		boxCommand.setBoxType(boxType),
		boxCommand.setInstallationDate(installationDate),
	); err != nil {
		return UpdateWaterBoxCommand{}, err
	}

	return boxCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateWaterBoxCommandIsNotConstructed if validation fails.
func (c UpdateWaterBoxCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWaterBoxCommandIsNotConstructed)
}

// WaterBoxID returns the identifier of the box to update.
func (c UpdateWaterBoxCommand) WaterBoxID() kernel.UUID {
	return c.waterBoxID
}

// OrganizationID returns the new owning organization identifier.
func (c UpdateWaterBoxCommand) OrganizationID() string {
	return c.organizationID
}

// BoxCode returns the new external code of the box.
func (c UpdateWaterBoxCommand) BoxCode() string {
	return c.boxCode
}

// BoxType returns the new type of the box.
func (c UpdateWaterBoxCommand) BoxType() waterbox.BoxType {
	return c.boxType
}

// InstallationDate returns the new installation date.
func (c UpdateWaterBoxCommand) InstallationDate() time.Time {
	return c.installationDate
}

func (c *UpdateWaterBoxCommand) setWaterBoxID(waterBoxID kernel.UUID) error {
	if err := waterBoxID.Validate(); err != nil {
		return err
	}

	c.waterBoxID = waterBoxID
	return nil
}

func (c *UpdateWaterBoxCommand) setOrganizationID(organizationID string) error {
	if organizationID == "" {
		return ErrOrganizationIsRequired
	}

	c.organizationID = organizationID
	return nil
}

func (c *UpdateWaterBoxCommand) setBoxCode(boxCode string) error {
	if boxCode == "" {
		return ErrBoxCodeIsRequired
	}

	c.boxCode = boxCode
	return nil
}

func (c *UpdateWaterBoxCommand) setBoxType(boxType waterbox.BoxType) error {
	if err := boxType.Validate(); err != nil {
		return err
	}

	c.boxType = boxType
	return nil
}

func (c *UpdateWaterBoxCommand) setInstallationDate(installationDate time.Time) error {
	if installationDate.IsZero() {
		return ErrInstallationDateIsRequired
	}

	c.installationDate = installationDate
	return nil
}
