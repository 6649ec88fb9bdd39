// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read optimized read models straight
// from the database.
package queries

import (
	"time"

	"waterinfra/internal/core/domain/model/kernel"
)

// WaterBoxResponse represents a water box in the read model.
// Status is rendered as a plain string, timestamps as plain values.
type WaterBoxResponse struct {
	ID                  kernel.UUID
	OrganizationID      string
	BoxCode             string
	BoxType             string
	InstallationDate    time.Time
	CurrentAssignmentID *kernel.UUID
	Status              string
	CreatedAt           time.Time
}

// AssignmentResponse represents an assignment in the read model.
type AssignmentResponse struct {
	ID           kernel.UUID
	WaterBoxID   kernel.UUID
	SubscriberID string
	StartDate    time.Time
	EndDate      *time.Time
	MonthlyFee   float64
	Status       string
	TransferID   *kernel.UUID
	CreatedAt    time.Time
}

// TransferResponse represents a transfer record in the read model.
type TransferResponse struct {
	ID              kernel.UUID
	WaterBoxID      kernel.UUID
	OldAssignmentID kernel.UUID
	NewAssignmentID kernel.UUID
	Reason          string
	Documents       []string
	CreatedAt       time.Time
}
