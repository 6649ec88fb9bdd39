package commands

import (
	"errors"
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"
	"waterinfra/internal/pkg/guard"
)

var (
	ErrCreateWaterBoxCommandIsNotConstructed = errors.New(
		"CreateWaterBoxCommand must be created via NewCreateWaterBoxCommand constructor",
	)
	ErrOrganizationIsRequired     = errors.New("organization is required")
	ErrBoxCodeIsRequired          = errors.New("box code is required")
	ErrInstallationDateIsRequired = errors.New("installation date is required")
)

// CreateWaterBoxCommand represents a request to register a new water connection box.
// Encapsulates box identity details: owning organization, external code, box type
// and installation date.
//
// Example:
//
//	boxID := kernel.NewUUID()
//	cmd, err := NewCreateWaterBoxCommand(boxID, "org-1", "WB-001", waterbox.BoxTypeDomestic, installDate)
//	if err != nil {
//	    return fmt.Errorf("invalid box data: %w", err)
//	}
//
//	handler := NewCreateWaterBoxCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create water box: %w", err)
//	}
type CreateWaterBoxCommand struct { //nolint:recvcheck //using for validation
	waterBoxID       kernel.UUID
	organizationID   string
	boxCode          string
	boxType          waterbox.BoxType
	installationDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateWaterBoxCommand creates a command to register a new water box.
// Validates that the box ID is valid, organization and code are not empty,
// the box type is known, and the installation date is set.
func NewCreateWaterBoxCommand(
	waterBoxID kernel.UUID,
	organizationID string,
	boxCode string,
	boxType waterbox.BoxType,
	installationDate time.Time,
) (CreateWaterBoxCommand, error) {
	boxCommand := CreateWaterBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		boxCommand.setWaterBoxID(waterBoxID),
		boxCommand.setOrganizationID(organizationID),
		boxCommand.setBoxCode(boxCode),
		boxCommand.setBoxType(boxType),
		boxCommand.setInstallationDate(installationDate),
	); err != nil {
		return CreateWaterBoxCommand{}, err
	}

	return boxCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWaterBoxCommandIsNotConstructed if validation fails.
func (c CreateWaterBoxCommand) Validate() error {
	return c.guard.Validate(ErrCreateWaterBoxCommandIsNotConstructed)
}

// WaterBoxID returns the unique identifier for the new box.
func (c CreateWaterBoxCommand) WaterBoxID() kernel.UUID {
	return c.waterBoxID
}

// OrganizationID returns the owning organization identifier.
func (c CreateWaterBoxCommand) OrganizationID() string {
	return c.organizationID
}

// BoxCode returns the external code of the box.
func (c CreateWaterBoxCommand) BoxCode() string {
	return c.boxCode
}

// BoxType returns the type of the box.
func (c CreateWaterBoxCommand) BoxType() waterbox.BoxType {
	return c.boxType
}

// InstallationDate returns the date the box was physically installed.
func (c CreateWaterBoxCommand) InstallationDate() time.Time {
	return c.installationDate
}

func (c *CreateWaterBoxCommand) setWaterBoxID(waterBoxID kernel.UUID) error {
	if err := waterBoxID.Validate(); err != nil {
		return err
	}

	c.waterBoxID = waterBoxID
	return nil
}

func (c *CreateWaterBoxCommand) setOrganizationID(organizationID string) error {
	if organizationID == "" {
		return ErrOrganizationIsRequired
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateWaterBoxCommand) setBoxCode(boxCode string) error {
	if boxCode == "" {
		return ErrBoxCodeIsRequired
	}

	c.boxCode = boxCode
	return nil
}

func (c *CreateWaterBoxCommand) setBoxType(boxType waterbox.BoxType) error {
	if err := boxType.Validate(); err != nil {
		return err
	}

	c.boxType = boxType
	return nil
}

func (c *CreateWaterBoxCommand) setInstallationDate(installationDate time.Time) error {
	if installationDate.IsZero() {
		return ErrInstallationDateIsRequired
	}

	c.installationDate = installationDate
	return nil
}
