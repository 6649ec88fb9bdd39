package commands

import (
	"errors"
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var (
	ErrCreateAssignmentCommandIsNotConstructed = errors.New(
		"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
	)
	ErrSubscriberIsRequired = errors.New("subscriber is required")
	ErrStartDateIsRequired  = errors.New("start date is required")
	ErrMonthlyFeeIsInvalid  = errors.New("monthly fee must not be negative")
)

// CreateAssignmentCommand represents a request to link a subscriber to a water box.
// The new assignment becomes the box's current assignment on success.
//
// Example:
//
//	assignmentID := kernel.NewUUID()
//	cmd, err := NewCreateAssignmentCommand(assignmentID, boxID, "user-42", startDate, 25.50)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewCreateAssignmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create assignment: %w", err)
//	}
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	waterBoxID   kernel.UUID
	subscriberID string
	startDate    time.Time
	monthlyFee   float64

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to register a new assignment.
// Validates that both IDs are valid, the subscriber is not empty, the start
// date is set, and the fee is not negative.
func NewCreateAssignmentCommand(
	assignmentID kernel.UUID,
	waterBoxID kernel.UUID,
	subscriberID string,
	startDate time.Time,
	monthlyFee float64,
) (CreateAssignmentCommand, error) {
	assignmentCommand := CreateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentCommand.setAssignmentID(assignmentID),
		assignmentCommand.setWaterBoxID(waterBoxID),
		assignmentCommand.setSubscriberID(subscriberID),
		assignmentCommand.setStartDate(startDate),
		assignmentCommand.setMonthlyFee(monthlyFee),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return assignmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAssignmentCommandIsNotConstructed if validation fails.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the new assignment.
func (c CreateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// WaterBoxID returns the identifier of the box being assigned.
func (c CreateAssignmentCommand) WaterBoxID() kernel.UUID {
	return c.waterBoxID
}

// SubscriberID returns the external identity of the subscriber.
func (c CreateAssignmentCommand) SubscriberID() string {
	return c.subscriberID
}

// StartDate returns the date the assignment takes effect.
func (c CreateAssignmentCommand) StartDate() time.Time {
	return c.startDate
}

// MonthlyFee returns the agreed monthly fee.
func (c CreateAssignmentCommand) MonthlyFee() float64 {
	return c.monthlyFee
}

func (c *CreateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *CreateAssignmentCommand) setWaterBoxID(waterBoxID kernel.UUID) error {
	if err := waterBoxID.Validate(); err != nil {
		return err
	}

	c.waterBoxID = waterBoxID
	return nil
}

func (c *CreateAssignmentCommand) setSubscriberID(subscriberID string) error {
	if subscriberID == "" {
		return ErrSubscriberIsRequired
	}

	c.subscriberID = subscriberID
	return nil
}

func (c *CreateAssignmentCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return ErrStartDateIsRequired
	}

	c.startDate = startDate
	return nil
}

func (c *CreateAssignmentCommand) setMonthlyFee(monthlyFee float64) error {
	if monthlyFee < 0 {
		return ErrMonthlyFeeIsInvalid
	}

	c.monthlyFee = monthlyFee
	return nil
}
