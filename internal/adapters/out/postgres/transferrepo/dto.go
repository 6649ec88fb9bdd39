// Package transferrepo provides data transfer objects and mapping functions
// for transfer persistence. Transfer records are append-only, so the
// repository exposes no update path.
package transferrepo

import (
	"time"

	"waterinfra/internal/core/domain/model/kernel"
	"waterinfra/internal/core/domain/model/transfer"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TransferDTO represents the database structure for persisting transfer records.
// The document list is stored as a native Postgres text array.
type TransferDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	WaterBoxID      uuid.UUID `gorm:"type:uuid;index"`
	OldAssignmentID uuid.UUID `gorm:"type:uuid"`
	NewAssignmentID uuid.UUID `gorm:"type:uuid"`
	Reason          string
	Documents       pq.StringArray `gorm:"type:text[]"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for transfer entities.
func (TransferDTO) TableName() string {
	return "transfers"
}

// fromDomain converts a transfer domain record to its database representation.
func fromDomain(tr *transfer.Transfer) TransferDTO {
	return TransferDTO{
		ID:              tr.ID().Bytes(),
		WaterBoxID:      tr.WaterBoxID().Bytes(),
		OldAssignmentID: tr.OldAssignmentID().Bytes(),
		NewAssignmentID: tr.NewAssignmentID().Bytes(),
		Reason:          tr.Reason(),
		Documents:       pq.StringArray(tr.Documents()),
		CreatedAt:       tr.CreatedAt(),
	}
}

// toDomain converts a database DTO to a transfer domain record.
func toDomain(dto TransferDTO) (*transfer.Transfer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	waterBoxID, err := kernel.UUIDFromBytes(dto.WaterBoxID[:])
	if err != nil {
		return nil, err
	}

	oldAssignmentID, err := kernel.UUIDFromBytes(dto.OldAssignmentID[:])
	if err != nil {
		return nil, err
	}

	newAssignmentID, err := kernel.UUIDFromBytes(dto.NewAssignmentID[:])
	if err != nil {
		return nil, err
	}

	return transfer.RestoreTransfer(
		id,
		waterBoxID,
		oldAssignmentID,
		newAssignmentID,
		dto.Reason,
		[]string(dto.Documents),
		dto.CreatedAt,
	)
}
