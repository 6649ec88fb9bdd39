package queries

import (
	"context"
	"database/sql"

	"waterinfra/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllTransfersQueryHandler retrieves the transfer audit log from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllTransfersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTransfersQueryHandler creates a handler for transfer listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllTransfersQueryHandler(db *gorm.DB) GetAllTransfersQueryHandler {
	return GetAllTransfersQueryHandler{db: db}
}

// Handle executes the query to retrieve all transfers.
// Returns transfer read models sorted newest first.
func (h GetAllTransfersQueryHandler) Handle(
	ctx context.Context,
	query GetAllTransfersQuery,
) ([]TransferResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	transfers := make([]TransferResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			water_box_id,
			old_assignment_id,
			new_assignment_id,
			reason,
			documents,
			created_at
		FROM transfers
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		tr, scanErr := scanTransferRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		transfers = append(transfers, tr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transfers, nil
}

// scanTransferRow maps one transfers row to the read model.
// The documents column is a Postgres text array read through pq.StringArray.
func scanTransferRow(rows *sql.Rows) (TransferResponse, error) {
	var tr TransferResponse
	var id, waterBoxID, oldAssignmentID, newAssignmentID uuid.UUID
	var documents pq.StringArray

	if err := rows.Scan(
		&id,
		&waterBoxID,
		&oldAssignmentID,
		&newAssignmentID,
		&tr.Reason,
		&documents,
		&tr.CreatedAt,
	); err != nil {
		return TransferResponse{}, err
	}

	ids := []struct {
		raw  uuid.UUID
		dest *kernel.UUID
	}{
		{id, &tr.ID},
		{waterBoxID, &tr.WaterBoxID},
		{oldAssignmentID, &tr.OldAssignmentID},
		{newAssignmentID, &tr.NewAssignmentID},
	}
	for _, entry := range ids {
		converted, err := kernel.UUIDFromBytes(entry.raw[:])
		if err != nil {
			return TransferResponse{}, err
		}
		*entry.dest = converted
	}

	tr.Documents = []string(documents)

	return tr, nil
}
