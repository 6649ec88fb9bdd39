package assignment

import (
	"errors"
	"fmt"
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was not
	// created through the NewAssignment or RestoreAssignment factory methods.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

	// ErrSubscriberIsRequired is returned when attempting to create an assignment without a subscriber.
	ErrSubscriberIsRequired = errs.NewValueIsRequiredError("subscriberID")
	// ErrStartDateIsRequired is returned when the start date is the zero time.
	ErrStartDateIsRequired = errs.NewValueIsRequiredError("startDate")
)

// Assignment links a water box to a subscriber for a period of time.
//
// The assignment lifecycle is independent of the box: the box only holds a
// weak pointer to the assignment it currently recognizes as active. When an
// assignment is retired because of a transfer, it records the transfer id;
// a plain deactivation leaves the transfer reference empty.
type Assignment struct {
	id           kernel.UUID
	waterBoxID   kernel.UUID
	subscriberID string
	startDate    time.Time
	endDate      *time.Time
	monthlyFee   float64
	status       kernel.Status
	transferID   *kernel.UUID
	createdAt    time.Time

	isConstructed bool
}

// NewAssignment creates a new Assignment with validation.
// The assignment starts Active with the creation timestamp set to now,
// no end date, and no transfer reference.
func NewAssignment(
	id kernel.UUID,
	waterBoxID kernel.UUID,
	subscriberID string,
	startDate time.Time,
	monthlyFee float64,
) (*Assignment, error) {
	a := &Assignment{
		status:        kernel.StatusActive,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := a.setID(id); err != nil {
		return nil, err
	}
	if err := a.setTerms(waterBoxID, subscriberID, startDate, monthlyFee); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
func RestoreAssignment(
	id kernel.UUID,
	waterBoxID kernel.UUID,
	subscriberID string,
	startDate time.Time,
	endDate *time.Time,
	monthlyFee float64,
	status kernel.Status,
	transferID *kernel.UUID,
	createdAt time.Time,
) (*Assignment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if transferID != nil {
		if err := transferID.Validate(); err != nil {
			return nil, err
		}
	}

	a := &Assignment{
		endDate:       endDate,
		status:        status,
		transferID:    transferID,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := a.setID(id); err != nil {
		return nil, err
	}
	if err := a.setTerms(waterBoxID, subscriberID, startDate, monthlyFee); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Assignment instance was properly constructed through a factory method.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// WaterBoxID returns the identifier of the box this assignment belongs to.
func (a *Assignment) WaterBoxID() kernel.UUID {
	return a.waterBoxID
}

// SubscriberID returns the external identity of the assigned end user.
func (a *Assignment) SubscriberID() string {
	return a.subscriberID
}

// StartDate returns the date the assignment took effect.
func (a *Assignment) StartDate() time.Time {
	return a.startDate
}

// EndDate returns the date the assignment was retired, or nil while active.
func (a *Assignment) EndDate() *time.Time {
	return a.endDate
}

// MonthlyFee returns the monthly fee charged for the assignment.
func (a *Assignment) MonthlyFee() float64 {
	return a.monthlyFee
}

// Status returns the current lifecycle status of the assignment.
func (a *Assignment) Status() kernel.Status {
	return a.status
}

// TransferID returns the transfer that retired this assignment, or nil if the
// assignment was never retired by a transfer.
func (a *Assignment) TransferID() *kernel.UUID {
	return a.transferID
}

// CreatedAt returns the creation timestamp of the assignment.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// BelongsTo reports whether the assignment references the given box.
func (a *Assignment) BelongsTo(waterBoxID kernel.UUID) bool {
	return a.waterBoxID.IsEqual(waterBoxID)
}

// ChangeTerms rewrites the box reference, subscriber, start date, and fee.
// Status, end date, and the transfer reference are never touched here.
func (a *Assignment) ChangeTerms(
	waterBoxID kernel.UUID,
	subscriberID string,
	startDate time.Time,
	monthlyFee float64,
) error {
	return a.setTerms(waterBoxID, subscriberID, startDate, monthlyFee)
}

// Deactivate retires the assignment directly, setting the end date to now.
// Fails with an InvalidState error if the assignment is already Inactive.
func (a *Assignment) Deactivate() error {
	if a.status.IsInactive() {
		return errs.NewInvalidStateError("assignment is already inactive")
	}

	newStatus, err := a.status.Deactivate()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.endDate = &now
	return nil
}

// RetireForTransfer retires the assignment because its box was transferred.
// Same transition as Deactivate plus the audit back-reference to the transfer.
func (a *Assignment) RetireForTransfer(transferID kernel.UUID) error {
	if err := transferID.Validate(); err != nil {
		return err
	}
	if err := a.Deactivate(); err != nil {
		return err
	}

	a.transferID = &transferID
	return nil
}

// Restore re-activates a retired assignment and clears the end date.
// Fails with an InvalidState error if the assignment is already Active.
// The transfer reference is preserved for audit.
func (a *Assignment) Restore() error {
	if a.status.IsActive() {
		return errs.NewInvalidStateError("assignment is already active")
	}

	newStatus, err := a.status.Activate()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.endDate = nil
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setTerms(
	waterBoxID kernel.UUID,
	subscriberID string,
	startDate time.Time,
	monthlyFee float64,
) error {
	if err := waterBoxID.Validate(); err != nil {
		return err
	}
	if subscriberID == "" {
		return ErrSubscriberIsRequired
	}
	if startDate.IsZero() {
		return ErrStartDateIsRequired
	}
	if monthlyFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("monthlyFee",
			fmt.Errorf("%f is negative", monthlyFee))
	}

	a.waterBoxID = waterBoxID
	a.subscriberID = subscriberID
	a.startDate = startDate
	a.monthlyFee = monthlyFee
	return nil
}
