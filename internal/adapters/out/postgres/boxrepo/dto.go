// Package boxrepo provides data transfer objects and mapping functions for
// water box persistence. It implements the repository pattern for the water
// box aggregate, handling the conversion between domain entities and database
// representations.
package boxrepo

import (
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/waterbox"

	"github.com/google/uuid"
)

// WaterBoxDTO represents the database structure for persisting water box aggregates.
// Indexed by status and by the current assignment reference for the lookups the
// assignment lifecycle and reconciliation sweeps depend on.
type WaterBoxDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID      string    `gorm:"index"`
	BoxCode             string    `gorm:"uniqueIndex"`
	BoxType             int
	InstallationDate    time.Time
	CurrentAssignmentID *uuid.UUID `gorm:"type:uuid;index"`
	Status              int        `gorm:"index"`
	CreatedAt           time.Time
}

// TableName specifies the database table name for water box entities.
func (WaterBoxDTO) TableName() string {
	return "water_boxes"
}

// fromDomain converts a water box domain aggregate to its database representation.
func fromDomain(box *waterbox.WaterBox) WaterBoxDTO {
	var currentAssignmentID *uuid.UUID
	if id := box.CurrentAssignmentID(); id != nil {
		raw := id.Bytes()
		currentAssignmentID = &raw
	}

	return WaterBoxDTO{
		ID:                  box.ID().Bytes(),
		OrganizationID:      box.OrganizationID(),
		BoxCode:             box.BoxCode(),
		BoxType:             int(box.BoxType()),
		InstallationDate:    box.InstallationDate(),
		CurrentAssignmentID: currentAssignmentID,
		Status:              int(box.Status()),
		CreatedAt:           box.CreatedAt(),
	}
}

// toDomain converts a database DTO to a water box domain aggregate.
func toDomain(dto WaterBoxDTO) (*waterbox.WaterBox, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentAssignmentID *kernel.UUID
	if dto.CurrentAssignmentID != nil {
		aID, assignmentErr := kernel.UUIDFromBytes((*dto.CurrentAssignmentID)[:])
		if assignmentErr != nil {
			return nil, assignmentErr
		}

		currentAssignmentID = &aID
	}

	return waterbox.RestoreWaterBox(
		id,
		dto.OrganizationID,
		dto.BoxCode,
		waterbox.BoxType(dto.BoxType),
		dto.InstallationDate,
		currentAssignmentID,
		kernel.Status(dto.Status),
		dto.CreatedAt,
	)
}
