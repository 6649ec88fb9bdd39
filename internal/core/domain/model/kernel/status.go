package kernel

import (
	"fmt"

	"waterinfra/internal/pkg/errs"
)

// Status represents the lifecycle state shared by water boxes and assignments.
// Records are never hard-deleted; they move between Active and Inactive.
//
// State transitions:
//
//	Active <──> Inactive
//
// Both directions are explicit operations (deactivate/restore) and repeating
// an operation on a record already in the target state is an error, not a no-op.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusActive marks a record that participates in current operations.
	StatusActive

	// StatusInactive marks a soft-deactivated record kept for audit.
	StatusInactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusActive:   "Active",
		StatusInactive: "Inactive",
	}
}

// StatusFromString parses a status from its string representation.
// Used when reconstructing records from persistence or API input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Active and Inactive; Unknown and out-of-range values are not.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the status is Active.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// IsInactive reports whether the status is Inactive.
func (s Status) IsInactive() bool {
	return s == StatusInactive
}

// Deactivate transitions the status to Inactive.
// Returns an InvalidState error if the status is already Inactive.
func (s Status) Deactivate() (Status, error) {
	if s != StatusActive {
		return 0, errs.NewInvalidStateErrorWithCause("status",
			fmt.Errorf("%s cannot be deactivated", s.String()))
	}
	return StatusInactive, nil
}

// Activate transitions the status to Active.
// Returns an InvalidState error if the status is already Active.
func (s Status) Activate() (Status, error) {
	if s != StatusInactive {
		return 0, errs.NewInvalidStateErrorWithCause("status",
			fmt.Errorf("%s cannot be activated", s.String()))
	}
	return StatusActive, nil
}
