package transfer

import (
	"errors"
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/errs"
)

var (
	// ErrTransferIsNotConstructed is returned when a Transfer instance was not
	// created through the NewTransfer or RestoreTransfer factory methods.
	ErrTransferIsNotConstructed = errors.New("Transfer must be created via NewTransfer constructor")

	// ErrReasonIsRequired is returned when attempting to create a transfer without a reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
	// ErrIdenticalAssignments is returned when the old and new assignments are the same record.
	ErrIdenticalAssignments = errs.NewValueIsInvalidError("old and new assignments cannot be identical")
)

// Transfer is the immutable audit record of moving a water box's active
// assignment from one subscriber to another. It references the box and both
// assignments but owns none of them.
type Transfer struct {
	id              kernel.UUID
	waterBoxID      kernel.UUID
	oldAssignmentID kernel.UUID
	newAssignmentID kernel.UUID
	reason          string
	documents       []string
	createdAt       time.Time

	isConstructed bool
}

// NewTransfer creates a new Transfer with validation. The creation timestamp
// is set to now. The documents slice is copied to keep the record immutable.
func NewTransfer(
	id kernel.UUID,
	waterBoxID kernel.UUID,
	oldAssignmentID kernel.UUID,
	newAssignmentID kernel.UUID,
	reason string,
	documents []string,
) (*Transfer, error) {
	return build(id, waterBoxID, oldAssignmentID, newAssignmentID, reason, documents, time.Now().UTC())
}

// RestoreTransfer reconstructs a Transfer from persistence.
func RestoreTransfer(
	id kernel.UUID,
	waterBoxID kernel.UUID,
	oldAssignmentID kernel.UUID,
	newAssignmentID kernel.UUID,
	reason string,
	documents []string,
	createdAt time.Time,
) (*Transfer, error) {
	return build(id, waterBoxID, oldAssignmentID, newAssignmentID, reason, documents, createdAt)
}

func build(
	id kernel.UUID,
	waterBoxID kernel.UUID,
	oldAssignmentID kernel.UUID,
	newAssignmentID kernel.UUID,
	reason string,
	documents []string,
	createdAt time.Time,
) (*Transfer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := waterBoxID.Validate(); err != nil {
		return nil, err
	}
	if err := oldAssignmentID.Validate(); err != nil {
		return nil, err
	}
	if err := newAssignmentID.Validate(); err != nil {
		return nil, err
	}
	if oldAssignmentID.IsEqual(newAssignmentID) {
		return nil, ErrIdenticalAssignments
	}
	if reason == "" {
		return nil, ErrReasonIsRequired
	}

	docs := make([]string, len(documents))
	copy(docs, documents)

	return &Transfer{
		id:              id,
		waterBoxID:      waterBoxID,
		oldAssignmentID: oldAssignmentID,
		newAssignmentID: newAssignmentID,
		reason:          reason,
		documents:       docs,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Transfer instance was properly constructed through a factory method.
func (t *Transfer) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransferIsNotConstructed
	}
	return nil
}

// IsEqual compares two transfers by their unique identifiers.
func (t *Transfer) IsEqual(other *Transfer) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transfer's unique identifier.
func (t *Transfer) ID() kernel.UUID {
	return t.id
}

// WaterBoxID returns the identifier of the transferred box.
func (t *Transfer) WaterBoxID() kernel.UUID {
	return t.waterBoxID
}

// OldAssignmentID returns the assignment retired by the transfer.
func (t *Transfer) OldAssignmentID() kernel.UUID {
	return t.oldAssignmentID
}

// NewAssignmentID returns the assignment the box was re-pointed to.
func (t *Transfer) NewAssignmentID() kernel.UUID {
	return t.newAssignmentID
}

// Reason returns the stated reason for the transfer.
func (t *Transfer) Reason() string {
	return t.reason
}

// Documents returns a copy of the supporting document identifiers.
func (t *Transfer) Documents() []string {
	docs := make([]string, len(t.documents))
	copy(docs, t.documents)
	return docs
}

// CreatedAt returns the creation timestamp of the transfer.
func (t *Transfer) CreatedAt() time.Time {
	return t.createdAt
}
