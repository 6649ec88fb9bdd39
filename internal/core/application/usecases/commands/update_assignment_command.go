package commands

import (
	"errors"
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/guard"
)

var ErrUpdateAssignmentCommandIsNotConstructed = errors.New(
	"UpdateAssignmentCommand must be created via NewUpdateAssignmentCommand constructor",
)

// UpdateAssignmentCommand represents a request to rewrite an assignment's terms:
// box reference, subscriber, start date and fee. Status, end date and the
// transfer reference are never touched by this command.
type UpdateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	waterBoxID   kernel.UUID
	subscriberID string
	startDate    time.Time
	monthlyFee   float64

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentCommand creates a command to update an existing assignment.
// Applies the same field validation rules as assignment creation.
func NewUpdateAssignmentCommand(
	assignmentID kernel.UUID,
	waterBoxID kernel.UUID,
	subscriberID string,
	startDate time.Time,
	monthlyFee float64,
) (UpdateAssignmentCommand, error) {
	assignmentCommand := UpdateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentCommand.setAssignmentID(assignmentID),
		assignmentCommand.setWaterBoxID(waterBoxID),
		assignmentCommand.setSubscriberID(subscriberID),
		assignmentCommand.setStartDate(startDate),
		assignmentCommand.setMonthlyFee(monthlyFee),
	); err != nil {
		return UpdateAssignmentCommand{}, err
	}

	return assignmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAssignmentCommandIsNotConstructed if validation fails.
func (c UpdateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to update.
func (c UpdateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// WaterBoxID returns the (possibly new) box reference.
func (c UpdateAssignmentCommand) WaterBoxID() kernel.UUID {
	return c.waterBoxID
}

// SubscriberID returns the new subscriber identity.
func (c UpdateAssignmentCommand) SubscriberID() string {
	return c.subscriberID
}

// StartDate returns the new start date.
func (c UpdateAssignmentCommand) StartDate() time.Time {
	return c.startDate
}

// MonthlyFee returns the new monthly fee.
func (c UpdateAssignmentCommand) MonthlyFee() float64 {
	return c.monthlyFee
}

func (c *UpdateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateAssignmentCommand) setWaterBoxID(waterBoxID kernel.UUID) error {
	if err := waterBoxID.Validate(); err != nil {
		return err
	}

	c.waterBoxID = waterBoxID
	return nil
}

func (c *UpdateAssignmentCommand) setSubscriberID(subscriberID string) error {
	if subscriberID == "" {
		return ErrSubscriberIsRequired
	}

	c.subscriberID = subscriberID
	return nil
}

func (c *UpdateAssignmentCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return ErrStartDateIsRequired
	}

	c.startDate = startDate
	return nil
}

func (c *UpdateAssignmentCommand) setMonthlyFee(monthlyFee float64) error {
	if monthlyFee < 0 {
		return ErrMonthlyFeeIsInvalid
	}

	c.monthlyFee = monthlyFee
	return nil
}
