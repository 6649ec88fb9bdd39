package waterbox

import (
	"errors"
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/pkg/errs"
)

var (
	// ErrWaterBoxIsNotConstructed is returned when a WaterBox instance was not created
	// through the NewWaterBox or RestoreWaterBox factory methods.
	ErrWaterBoxIsNotConstructed = errors.New("WaterBox must be created via NewWaterBox constructor")

	// ErrOrganizationIsRequired is returned when attempting to create a box without an organization.
	ErrOrganizationIsRequired = errs.NewValueIsRequiredError("organizationID")
	// ErrBoxCodeIsRequired is returned when attempting to create a box without an external code.
	ErrBoxCodeIsRequired = errs.NewValueIsRequiredError("boxCode")
	// ErrInstallationDateIsRequired is returned when the installation date is the zero time.
	ErrInstallationDateIsRequired = errs.NewValueIsRequiredError("installationDate")
)

// WaterBox represents a physical water connection point. It is the aggregate
// root that owns the box lifecycle and the pointer to the assignment the box
// currently recognizes as its active occupant.
//
// WaterBox follows these invariants:
//   - Must have a valid unique identifier, organization, code, type, and installation date
//   - The current-assignment pointer is only set while the box is Active
//   - A box with a set pointer cannot be deactivated; the assignment must be retired first
//   - Boxes are soft-deactivated and can be restored later
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type WaterBox struct {
	id                  kernel.UUID
	organizationID      string
	boxCode             string
	boxType             BoxType
	installationDate    time.Time
	currentAssignmentID *kernel.UUID
	status              kernel.Status
	createdAt           time.Time

	// isConstructed ensures the box was created via a factory method
	isConstructed bool
}

// NewWaterBox creates a new WaterBox with validation. The box starts Active,
// with the creation timestamp set to now and no current assignment.
//
// Returns a validation error if the identifier, organization, code, type, or
// installation date is invalid.
func NewWaterBox(
	id kernel.UUID,
	organizationID string,
	boxCode string,
	boxType BoxType,
	installationDate time.Time,
) (*WaterBox, error) {
	box := &WaterBox{
		status:        kernel.StatusActive,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := box.setID(id); err != nil {
		return nil, err
	}
	if err := box.setDetails(organizationID, boxCode, boxType, installationDate); err != nil {
		return nil, err
	}

	return box, nil
}

// RestoreWaterBox reconstructs a WaterBox from persistence without applying
// creation defaults. All invariants are still validated.
func RestoreWaterBox(
	id kernel.UUID,
	organizationID string,
	boxCode string,
	boxType BoxType,
	installationDate time.Time,
	currentAssignmentID *kernel.UUID,
	status kernel.Status,
	createdAt time.Time,
) (*WaterBox, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if currentAssignmentID != nil {
		if err := currentAssignmentID.Validate(); err != nil {
			return nil, err
		}
	}

	box := &WaterBox{
		currentAssignmentID: currentAssignmentID,
		status:              status,
		createdAt:           createdAt,
		isConstructed:       true,
	}

	if err := box.setID(id); err != nil {
		return nil, err
	}
	if err := box.setDetails(organizationID, boxCode, boxType, installationDate); err != nil {
		return nil, err
	}

	return box, nil
}

// Validate ensures the WaterBox instance was properly constructed through a factory method.
func (b *WaterBox) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrWaterBoxIsNotConstructed
	}
	return nil
}

// IsEqual compares two water boxes by their unique identifiers.
func (b *WaterBox) IsEqual(other *WaterBox) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the box's unique identifier.
func (b *WaterBox) ID() kernel.UUID {
	return b.id
}

// OrganizationID returns the owning organization identifier.
func (b *WaterBox) OrganizationID() string {
	return b.organizationID
}

// BoxCode returns the external code of the box.
func (b *WaterBox) BoxCode() string {
	return b.boxCode
}

// BoxType returns the installation type of the box.
func (b *WaterBox) BoxType() BoxType {
	return b.boxType
}

// InstallationDate returns the date the box was installed.
func (b *WaterBox) InstallationDate() time.Time {
	return b.installationDate
}

// CurrentAssignmentID returns the identifier of the assignment the box
// currently recognizes as active. Returns nil if the box has no occupant.
func (b *WaterBox) CurrentAssignmentID() *kernel.UUID {
	return b.currentAssignmentID
}

// Status returns the current lifecycle status of the box.
func (b *WaterBox) Status() kernel.Status {
	return b.status
}

// CreatedAt returns the creation timestamp of the box.
func (b *WaterBox) CreatedAt() time.Time {
	return b.createdAt
}

// UpdateDetails rewrites the mutable identity fields of the box.
// Status and the current-assignment pointer are never touched here.
func (b *WaterBox) UpdateDetails(
	organizationID string,
	boxCode string,
	boxType BoxType,
	installationDate time.Time,
) error {
	return b.setDetails(organizationID, boxCode, boxType, installationDate)
}

// Deactivate soft-deactivates the box.
//
// Fails with an InvalidState error if the box is already Inactive and with a
// Conflict error if the box still points at a live assignment. The caller must
// retire the assignment before the box can be deactivated.
func (b *WaterBox) Deactivate() error {
	if b.status.IsInactive() {
		return errs.NewInvalidStateError("water box is already inactive")
	}
	if b.currentAssignmentID != nil {
		return errs.NewConflictError("water box has an active assignment, deactivate the assignment first")
	}

	newStatus, err := b.status.Deactivate()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Restore re-activates a soft-deactivated box.
// Fails with an InvalidState error if the box is already Active.
// The current-assignment pointer is left as-is; deactivation required it to be nil.
func (b *WaterBox) Restore() error {
	if b.status.IsActive() {
		return errs.NewInvalidStateError("water box is already active")
	}

	newStatus, err := b.status.Activate()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// AssignCurrent points the box at the given assignment.
//
// The box must be Active. This is the only way the current-assignment relation
// is established; callers are responsible for ensuring the assignment belongs
// to this box and is active.
func (b *WaterBox) AssignCurrent(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	if !b.status.IsActive() {
		return errs.NewInvalidStateError("cannot assign to an inactive water box")
	}

	b.currentAssignmentID = &assignmentID
	return nil
}

// ClearCurrent removes the current-assignment pointer.
// Safe to call when no assignment is set.
func (b *WaterBox) ClearCurrent() {
	b.currentAssignmentID = nil
}

// HasCurrentAssignment reports whether the box points at an assignment.
func (b *WaterBox) HasCurrentAssignment() bool {
	return b.currentAssignmentID != nil
}

// IsCurrentAssignment reports whether the given assignment is the one the box
// currently recognizes as active.
func (b *WaterBox) IsCurrentAssignment(assignmentID kernel.UUID) bool {
	return b.currentAssignmentID != nil && b.currentAssignmentID.IsEqual(assignmentID)
}

func (b *WaterBox) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *WaterBox) setDetails(
	organizationID string,
	boxCode string,
	boxType BoxType,
	installationDate time.Time,
) error {
	if organizationID == "" {
		return ErrOrganizationIsRequired
	}
	if boxCode == "" {
		return ErrBoxCodeIsRequired
	}
	if err := boxType.Validate(); err != nil {
		return err
	}
	if installationDate.IsZero() {
		return ErrInstallationDateIsRequired
	}

	b.organizationID = organizationID
	b.boxCode = boxCode
	b.boxType = boxType
	b.installationDate = installationDate
	return nil
}
