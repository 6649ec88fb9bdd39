package commands

import (
	"errors"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var (
	ErrTransferWaterBoxCommandIsNotConstructed = errors.New(
		"TransferWaterBoxCommand must be created via NewTransferWaterBoxCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// TransferWaterBoxCommand represents a request to hand a water box over from
// its current assignment to another assignment of the same box.
//
// Example:
//
//	transferID := kernel.NewUUID()
//	cmd, err := NewTransferWaterBoxCommand(transferID, boxID, oldID, newID, "owner moved out", docs)
//	if err != nil {
//	    return fmt.Errorf("invalid transfer data: %w", err)
//	}
//
//	handler := NewTransferWaterBoxCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transfer failed: %w", err)
//	}
type TransferWaterBoxCommand struct { //nolint:recvcheck //using for validation
	transferID      kernel.UUID
	waterBoxID      kernel.UUID
	oldAssignmentID kernel.UUID
	newAssignmentID kernel.UUID
	reason          string
	documents       []string

	guard guard.ConstructorGuard
}

// NewTransferWaterBoxCommand creates a command to transfer a water box.
// Validates that all IDs are valid and the reason is not empty. The state
// checks against the box and both assignments happen in the handler.
func NewTransferWaterBoxCommand(
	transferID kernel.UUID,
	waterBoxID kernel.UUID,
	oldAssignmentID kernel.UUID,
	newAssignmentID kernel.UUID,
	reason string,
	documents []string,
) (TransferWaterBoxCommand, error) {
	transferCommand := TransferWaterBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transferCommand.setTransferID(transferID),
		transferCommand.setWaterBoxID(waterBoxID),
		transferCommand.setOldAssignmentID(oldAssignmentID),
		transferCommand.setNewAssignmentID(newAssignmentID),
		transferCommand.setReason(reason),
	); err != nil {
		return TransferWaterBoxCommand{}, err
	}

	transferCommand.documents = make([]string, len(documents))
	copy(transferCommand.documents, documents)

	return transferCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransferWaterBoxCommandIsNotConstructed if validation fails.
func (c TransferWaterBoxCommand) Validate() error {
	return c.guard.Validate(ErrTransferWaterBoxCommandIsNotConstructed)
}

// TransferID returns the unique identifier for the new transfer record.
func (c TransferWaterBoxCommand) TransferID() kernel.UUID {
	return c.transferID
}

// WaterBoxID returns the identifier of the box being transferred.
func (c TransferWaterBoxCommand) WaterBoxID() kernel.UUID {
	return c.waterBoxID
}

// OldAssignmentID returns the assignment to retire.
func (c TransferWaterBoxCommand) OldAssignmentID() kernel.UUID {
	return c.oldAssignmentID
}

// NewAssignmentID returns the assignment the box should be re-pointed to.
func (c TransferWaterBoxCommand) NewAssignmentID() kernel.UUID {
	return c.newAssignmentID
}

// Reason returns the stated reason for the transfer.
func (c TransferWaterBoxCommand) Reason() string {
	return c.reason
}

// Documents returns a copy of the supporting document identifiers.
func (c TransferWaterBoxCommand) Documents() []string {
	docs := make([]string, len(c.documents))
	copy(docs, c.documents)
	return docs
}

func (c *TransferWaterBoxCommand) setTransferID(transferID kernel.UUID) error {
	if err := transferID.Validate(); err != nil {
		return err
	}

	c.transferID = transferID
	return nil
}

func (c *TransferWaterBoxCommand) setWaterBoxID(waterBoxID kernel.UUID) error {
	if err := waterBoxID.Validate(); err != nil {
		return err
	}

	c.waterBoxID = waterBoxID
	return nil
}

func (c *TransferWaterBoxCommand) setOldAssignmentID(oldAssignmentID kernel.UUID) error {
	if err := oldAssignmentID.Validate(); err != nil {
		return err
	}

	c.oldAssignmentID = oldAssignmentID
	return nil
}

func (c *TransferWaterBoxCommand) setNewAssignmentID(newAssignmentID kernel.UUID) error {
	if err := newAssignmentID.Validate(); err != nil {
		return err
	}

	c.newAssignmentID = newAssignmentID
	return nil
}

func (c *TransferWaterBoxCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
