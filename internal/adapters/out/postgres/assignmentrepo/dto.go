// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. It implements the repository pattern for the
// assignment aggregate.
package assignmentrepo

import (
	"time"

	"waterinfra/internal/core/domain/model/assignment"
	"waterinfra/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment aggregates.
type AssignmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	WaterBoxID   uuid.UUID `gorm:"type:uuid;index"`
	SubscriberID string    `gorm:"index"`
	StartDate    time.Time
	EndDate      *time.Time
	MonthlyFee   float64
	Status       int        `gorm:"index"`
	TransferID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(a *assignment.Assignment) AssignmentDTO {
	var transferID *uuid.UUID
	if id := a.TransferID(); id != nil {
		raw := id.Bytes()
		transferID = &raw
	}

	return AssignmentDTO{
		ID:           a.ID().Bytes(),
		WaterBoxID:   a.WaterBoxID().Bytes(),
		SubscriberID: a.SubscriberID(),
		StartDate:    a.StartDate(),
		EndDate:      a.EndDate(),
		MonthlyFee:   a.MonthlyFee(),
		Status:       int(a.Status()),
		TransferID:   transferID,
		CreatedAt:    a.CreatedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	waterBoxID, err := kernel.UUIDFromBytes(dto.WaterBoxID[:])
	if err != nil {
		return nil, err
	}

	var transferID *kernel.UUID
	if dto.TransferID != nil {
		trID, transferErr := kernel.UUIDFromBytes((*dto.TransferID)[:])
		if transferErr != nil {
			return nil, transferErr
		}

		transferID = &trID
	}

	return assignment.RestoreAssignment(
		id,
		waterBoxID,
		dto.SubscriberID,
		dto.StartDate,
		dto.EndDate,
		dto.MonthlyFee,
		kernel.Status(dto.Status),
		transferID,
		dto.CreatedAt,
	)
}
